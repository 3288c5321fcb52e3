// Package seed implements the base32 codec for authenticator seed keys.
//
// Seeds are shared secrets distributed in RFC 4648 base32 form, typically
// shown to the user once during account enrollment. This package converts
// between that textual form and the raw key bytes consumed by OTP
// generation, with validation strict enough to reject mistyped seeds before
// they produce silently wrong codes.
//
// # Usage
//
//	key, err := seed.Decode("JBSWY3DPEHPK3PXP")
//	if err != nil {
//		// seed.ErrInvalidCharacter, seed.ErrInvalidLength, ...
//	}
//
// Input is normalized before validation: surrounding whitespace is trimmed,
// letters are uppercased, and '=' padding is stripped. A cleaned seed must
// consist solely of the characters A-Z and 2-7, and its length mod 8 must be
// 0, 2, 4, 5, or 7. Other remainders cannot decode to a whole number of
// bytes and always indicate a truncated or mistyped seed.
//
// # Error Handling
//
// All failures wrap one of the package sentinels, so callers can match with
// errors.Is:
//
//	ErrEmptyInput       - seed is empty after normalization
//	ErrInvalidCharacter - character outside the base32 alphabet
//	ErrInvalidLength    - length cannot decode to whole bytes
//	ErrGenerateFailed   - system randomness was unavailable
//
// Error messages never include seed characters, only positions and lengths.
package seed
