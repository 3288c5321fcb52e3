package seed

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
)

// alphabet is the RFC 4648 base32 alphabet. Lookup by index yields the
// 5-bit value of each character.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// generatedSeedLength is the number of random bytes produced by Generate.
// 20 bytes matches the SHA-1 block recommendation from RFC 4226.
const generatedSeedLength = 20

// validRemainders marks the cleaned-length remainders mod 8 that decode to
// a whole number of bytes. Remainders 1, 3, and 6 would leave 5, 15, or 30
// bits, none of which fill the final byte.
var validRemainders = [8]bool{0: true, 2: true, 4: true, 5: true, 7: true}

// Normalize uppercases the seed and strips surrounding whitespace and all
// '=' padding characters. Decode and IsValid apply it before any validation,
// so callers only need it when they want the canonical form of a seed for
// storage or display.
func Normalize(input string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(input))
	return strings.ReplaceAll(cleaned, "=", "")
}

// Decode converts a base32-encoded seed into the raw key bytes used for OTP
// generation. The input is normalized first, then every character must belong
// to the RFC 4648 alphabet and the cleaned length must decode to whole bytes.
// Trailing bits that do not fill a byte are discarded, matching the handling
// of unpadded seeds issued by common provisioning flows.
func Decode(input string) ([]byte, error) {
	cleaned := Normalize(input)
	if err := validate(cleaned); err != nil {
		return nil, err
	}

	decoded := make([]byte, 0, len(cleaned)*5/8)
	var buffer, bitsLeft uint
	for i := 0; i < len(cleaned); i++ {
		value := strings.IndexByte(alphabet, cleaned[i])
		buffer = buffer<<5 | uint(value)
		bitsLeft += 5
		if bitsLeft >= 8 {
			bitsLeft -= 8
			decoded = append(decoded, byte(buffer>>bitsLeft))
		}
	}
	return decoded, nil
}

// IsValid reports whether the seed would decode successfully. It applies the
// same normalization and checks as Decode without allocating the output.
func IsValid(input string) bool {
	return validate(Normalize(input)) == nil
}

// Encode converts raw key bytes into the canonical unpadded base32 form.
func Encode(key []byte) string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(key)
}

// Generate returns a new random seed in canonical base32 form, suitable for
// provisioning a fresh authenticator entry.
func Generate() (string, error) {
	key := make([]byte, generatedSeedLength)
	if _, err := rand.Read(key); err != nil {
		return "", errors.Join(ErrGenerateFailed, err)
	}
	return Encode(key), nil
}

// validate checks a normalized seed against the alphabet and length rules.
// Character errors report the offending position rather than the character
// itself, since seeds are secret material.
func validate(cleaned string) error {
	if cleaned == "" {
		return ErrEmptyInput
	}
	for i := 0; i < len(cleaned); i++ {
		if strings.IndexByte(alphabet, cleaned[i]) < 0 {
			return errors.Join(ErrInvalidCharacter, fmt.Errorf("position %d", i))
		}
	}
	if !validRemainders[len(cleaned)%8] {
		return errors.Join(ErrInvalidLength, fmt.Errorf("%d characters", len(cleaned)))
	}
	return nil
}
