// Package vaultcrypt provides password-based encryption for vault backups
// and the vault file at rest.
//
// The package turns a user-chosen password and a UTF-8 plaintext into a
// single self-contained base64 string, and back. All key material is derived
// on the fly: nothing but the password is needed to open an envelope on
// another device, which is what makes exported backups portable.
//
// # Architecture
//
// Every envelope is the base64 encoding of
//
//	version(1) ‖ salt(16) ‖ iv(12) ‖ ciphertext ‖ tag(16)
//
// produced in three steps:
//
//  1. Key derivation - PBKDF2-HMAC-SHA256 stretches the password with a
//     random per-envelope salt over 250000 iterations into a 32-byte key.
//     The cost makes offline password guessing expensive.
//  2. Sealing - AES-256-GCM encrypts the plaintext under a random 12-byte
//     IV and appends a 16-byte authentication tag. Any modification of the
//     payload, anywhere, fails authentication on open.
//  3. Framing - the version byte, salt, and IV are prepended so that the
//     envelope is self-describing; only the password travels separately.
//
// The Scheme struct carries these parameters explicitly. DefaultScheme is
// the format used across the application; tests construct variant schemes to
// exercise version handling.
//
// # Usage
//
//	envelope, err := vaultcrypt.Encrypt("seed material", password)
//	if err != nil {
//	    // handle error
//	}
//
//	plaintext, err := vaultcrypt.Decrypt(envelope, password)
//	if errors.Is(err, vaultcrypt.ErrAuthenticationFailed) {
//	    // wrong password or corrupted data - indistinguishable on purpose
//	}
//
// # Error Handling
//
// Failures wrap package sentinels for errors.Is matching: ErrEmptyPlaintext,
// ErrEmptyPassword, ErrTooShort, ErrUnsupportedVersion,
// ErrAuthenticationFailed, ErrDecryptionFailed, ErrEncryptionFailed.
//
// Error messages never contain passwords, derived keys, or plaintext, and
// the authentication-failure message never discloses whether the password
// was wrong or the data was corrupted.
package vaultcrypt
