package vaultcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Scheme fixes the envelope layout and the key-derivation cost. All sizes are
// in bytes; Iterations is the PBKDF2-HMAC-SHA256 round count.
type Scheme struct {
	Version    byte
	SaltSize   int
	IVSize     int
	KeySize    int
	Iterations int
}

// DefaultScheme is the production envelope format: version byte 0x08,
// 16-byte salt, 12-byte IV, AES-256-GCM, PBKDF2 at 250000 iterations.
// Payloads written by one device decrypt on any other device that shares
// this scheme, so the values here must never change without bumping Version.
var DefaultScheme = Scheme{
	Version:    0x08,
	SaltSize:   16,
	IVSize:     12,
	KeySize:    32,
	Iterations: 250000,
}

// Encrypt seals plaintext with a key derived from the password, using
// DefaultScheme. See Scheme.Encrypt.
func Encrypt(plaintext, password string) (string, error) {
	return DefaultScheme.Encrypt(plaintext, password)
}

// Decrypt opens an envelope produced by Encrypt, using DefaultScheme.
// See Scheme.Decrypt.
func Decrypt(envelope, password string) (string, error) {
	return DefaultScheme.Decrypt(envelope, password)
}

// Encrypt derives a fresh key from the password with a random salt, seals the
// plaintext with AES-GCM under a random IV, and returns the base64-encoded
// envelope version‖salt‖iv‖ciphertext‖tag. Every call produces a distinct
// payload even for identical inputs.
func (s Scheme) Encrypt(plaintext, password string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, s.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}
	iv := make([]byte, s.IVSize)
	if _, err := rand.Read(iv); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	key := s.deriveKey(password, salt)
	defer clearBytes(key)

	aesGCM, err := s.newGCM(key)
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	sealed := aesGCM.Seal(nil, iv, []byte(plaintext), nil)

	envelope := make([]byte, 0, 1+s.SaltSize+s.IVSize+len(sealed))
	envelope = append(envelope, s.Version)
	envelope = append(envelope, salt...)
	envelope = append(envelope, iv...)
	envelope = append(envelope, sealed...)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt reverses Encrypt. The input is trimmed and re-padded before base64
// decoding, so envelopes that lost trailing '=' characters in transit still
// open. Failures never reveal whether the password was wrong or the payload
// was tampered with.
func (s Scheme) Decrypt(envelope, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	envelope = strings.TrimSpace(envelope)
	if missing := len(envelope) % 4; missing != 0 {
		envelope += strings.Repeat("=", 4-missing)
	}

	data, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	if len(data) < s.minEnvelopeSize() {
		return "", errors.Join(ErrTooShort, fmt.Errorf("%d bytes", len(data)))
	}
	if data[0] != s.Version {
		return "", errors.Join(ErrUnsupportedVersion, fmt.Errorf("version byte %#02x", data[0]))
	}

	salt := data[1 : 1+s.SaltSize]
	iv := data[1+s.SaltSize : 1+s.SaltSize+s.IVSize]
	ciphertext := data[1+s.SaltSize+s.IVSize:]

	key := s.deriveKey(password, salt)
	defer clearBytes(key)

	aesGCM, err := s.newGCM(key)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	plaintext, err := aesGCM.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

// deriveKey stretches the password into an AES key. The caller must clear
// the returned key with clearBytes once it is no longer needed.
func (s Scheme) deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, s.Iterations, s.KeySize, sha256.New)
}

func (s Scheme) newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, s.IVSize)
}

// minEnvelopeSize is the smallest decodable payload: version byte, full salt,
// full IV. Anything shorter cannot even be sliced; anything at least this
// long proceeds to authentication, which rejects truncated ciphertexts.
func (s Scheme) minEnvelopeSize() int {
	return 1 + s.SaltSize + s.IVSize
}

// clearBytes zeros a byte slice to shorten the lifetime of key material in
// memory.
func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
