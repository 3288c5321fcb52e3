package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	DefaultDigits = 6  // Standard 6-digit codes
	DefaultPeriod = 30 // 30-second validity window (RFC 6238 standard)
)

// Params controls code generation. The zero value is usable: zero-valued
// fields fall back to the RFC 6238 defaults.
type Params struct {
	Digits int // Number of digits in generated codes (default 6)
	Period int // Code validity period in seconds (default 30)
}

// withDefaults returns a copy with standard defaults applied to zero-valued fields.
func (p Params) withDefaults() Params {
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}
	return p
}

// validate rejects parameter combinations outside the range authenticator
// apps agree on. Fewer than 6 digits weakens codes below the RFC 4226
// minimum; more than 8 cannot be filled reliably from the truncated 31-bit
// word.
func (p Params) validate() error {
	if p.Digits < 6 || p.Digits > 8 {
		return ErrInvalidDigits
	}
	if p.Period < 1 {
		return ErrInvalidPeriod
	}
	return nil
}

// Generate computes the code for the time window containing the given moment.
// The key is the raw seed bytes (see pkg/seed for decoding), and the result
// is a left-zero-padded decimal string of exactly p.Digits characters.
// Generate is deterministic: equal key, time window, and params always yield
// the same code.
func Generate(key []byte, at time.Time, p Params) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyKey
	}
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return "", err
	}

	code := hotp(key, counterAt(at, p.Period), p.Digits)
	return fmt.Sprintf("%0*d", p.Digits, code), nil
}

// Validate reports whether the supplied code matches the window containing
// the given moment. Codes from the previous and next windows are accepted as
// well, tolerating small clock drift between the prover and this machine.
func Validate(key []byte, code string, at time.Time, p Params) (bool, error) {
	if len(key) == 0 {
		return false, ErrEmptyKey
	}
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	if len(code) != p.Digits || !isDigits(code) {
		return false, ErrInvalidCode
	}

	counter := counterAt(at, p.Period)
	for i := int64(-1); i <= 1; i++ {
		candidate := hotp(key, counter+i, p.Digits)
		if fmt.Sprintf("%0*d", p.Digits, candidate) == code {
			return true, nil
		}
	}
	return false, nil
}

// Remaining returns how long the current code stays valid. At an exact window
// boundary a full period remains.
func Remaining(at time.Time, period int) time.Duration {
	if period < 1 {
		period = DefaultPeriod
	}
	elapsed := floorMod(at.Unix(), int64(period))
	return time.Duration(int64(period)-elapsed) * time.Second
}

// Progress returns the elapsed fraction of the current window in [0, 1),
// with sub-second resolution for smooth countdown rendering.
func Progress(at time.Time, period int) float64 {
	if period < 1 {
		period = DefaultPeriod
	}
	periodNanos := int64(period) * int64(time.Second)
	return float64(floorMod(at.UnixNano(), periodNanos)) / float64(periodNanos)
}

// FormatCode splits an even-length code in half for display, "123456" to
// "123 456", matching how authenticator apps print them. Codes too short or
// of odd length are returned unchanged.
func FormatCode(code string) string {
	if len(code) < 4 || len(code)%2 != 0 {
		return code
	}
	half := len(code) / 2
	return code[:half] + " " + code[half:]
}

// hotp implements the RFC 4226 HMAC-based one-time password computation.
// The counter is hashed with HMAC-SHA1 and dynamically truncated to a 31-bit
// word, then reduced to the requested number of digits.
func hotp(key []byte, counter int64, digits int) int {
	// Counter travels as a big-endian 8-byte value (RFC 4226 requirement).
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter = counter >> 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	hash := mac.Sum(nil)

	// Dynamic truncation: the low nibble of the final byte selects the offset.
	offset := hash[len(hash)-1] & 0x0f
	// Extract a 31-bit value, clearing the MSB to avoid sign ambiguity.
	code := (int(hash[offset]&0x7f) << 24) |
		(int(hash[offset+1]&0xff) << 16) |
		(int(hash[offset+2]&0xff) << 8) |
		(int(hash[offset+3] & 0xff))

	return code % int(math.Pow10(digits))
}

// counterAt maps a moment to its window counter, flooring toward negative
// infinity so pre-epoch times land in the correct window.
func counterAt(at time.Time, period int) int64 {
	unix := at.Unix()
	p := int64(period)
	counter := unix / p
	if unix < 0 && unix%p != 0 {
		counter--
	}
	return counter
}

func floorMod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
