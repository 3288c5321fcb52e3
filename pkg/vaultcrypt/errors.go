package vaultcrypt

import "errors"

var (
	// Input validation errors
	ErrEmptyPlaintext = errors.New("plaintext is empty")
	ErrEmptyPassword  = errors.New("password is empty")

	// Envelope format errors
	ErrTooShort           = errors.New("payload is too short to be a valid envelope")
	ErrUnsupportedVersion = errors.New("unsupported envelope version")

	// Encryption/decryption errors. ErrAuthenticationFailed and
	// ErrDecryptionFailed deliberately carry the same message: callers can
	// still tell them apart with errors.Is, but the text never reveals
	// whether the password was wrong or the data was corrupted.
	ErrEncryptionFailed     = errors.New("encryption failed")
	ErrAuthenticationFailed = errors.New("decryption failed: wrong password or corrupted data")
	ErrDecryptionFailed     = errors.New("decryption failed: wrong password or corrupted data")
)
