// Package totp computes time-based one-time passwords per RFC 6238.
//
// The package is the code-generation core of the authenticator: it turns a
// raw seed key and a moment in time into the short decimal code displayed to
// the user. It is deliberately small and pure, with no clock, storage, or
// encoding dependencies: callers decode seeds with pkg/seed and supply their
// own time source, which keeps every computation deterministic and testable
// against the RFC reference vectors.
//
// # Architecture
//
// The code-producing surface is time-based only. Internally the RFC 4226
// HOTP primitive does the work:
//
//   - the window counter floor(unixSeconds/period) is serialized as an
//     8-byte big-endian value and hashed with HMAC-SHA1,
//   - dynamic truncation selects a 31-bit word from the digest,
//   - the word is reduced modulo 10^digits and left-padded with zeros.
//
// Generate and Validate share that primitive. Validate additionally accepts
// the adjacent windows, one before and one after, so codes survive modest
// clock drift between devices.
//
// # Usage
//
//	key, err := seed.Decode("JBSWY3DPEHPK3PXP")
//	if err != nil {
//	    return err
//	}
//	code, err := totp.Generate(key, time.Now(), totp.Params{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(code) // e.g. "005374"
//
// Remaining and Progress report the lifetime of the current window for
// countdown displays, and FormatCode groups a code the way authenticator
// apps print them.
//
// # Error Handling
//
// Exported functions return package sentinels matched with errors.Is:
// ErrEmptyKey, ErrInvalidDigits, ErrInvalidPeriod, and ErrInvalidCode.
// Error messages never contain key material or generated codes.
//
// # See Also
//
//   - RFC 4226 - HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 - Time-Based One-Time Password (TOTP) Algorithm
package totp
