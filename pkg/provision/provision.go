package provision

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/authvault/pkg/seed"
	"github.com/dmitrymomot/authvault/pkg/totp"
)

const (
	// DefaultAlgorithm is the HMAC algorithm advertised in generated URIs.
	DefaultAlgorithm = "SHA1"

	// defaultQRSize is the image size in pixels used when none is specified.
	defaultQRSize = 256
)

// URIParams describes one account for Key Uri Format export.
type URIParams struct {
	Seed      string // Base32-encoded seed key (required)
	Account   string // User identifier like an email address (required)
	Issuer    string // Service name displayed in authenticator apps (required)
	Algorithm string // HMAC algorithm (optional, defaults to SHA1)
	Digits    int    // Number of digits in generated codes (optional, defaults to 6)
	Period    int    // Code validity period in seconds (optional, defaults to 30)
}

// Validate ensures all required parameters are present and the seed decodes.
func (p URIParams) Validate() error {
	if p.Seed == "" {
		return ErrMissingSeed
	}
	if !seed.IsValid(p.Seed) {
		return ErrInvalidSeed
	}
	if p.Account == "" {
		return ErrMissingAccount
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// withDefaults returns a copy with standard values applied to empty fields.
func (p URIParams) withDefaults() URIParams {
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if p.Digits == 0 {
		p.Digits = totp.DefaultDigits
	}
	if p.Period == 0 {
		p.Period = totp.DefaultPeriod
	}
	return p
}

// URI renders the otpauth:// enrollment URI for an account, following the
// Key Uri Format understood by Google Authenticator and compatible apps:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func URI(params URIParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	params = params.withDefaults()

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.Account),
	)

	query := url.Values{}
	query.Set("secret", seed.Normalize(params.Seed))
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", params.Algorithm)
	query.Set("digits", fmt.Sprintf("%d", params.Digits))
	query.Set("period", fmt.Sprintf("%d", params.Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// QRPNG encodes arbitrary content as a PNG image. The otpauth URI from URI
// is the usual payload; scanning the result enrolls the account in another
// authenticator app.
func QRPNG(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultQRSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrQRFailed, err)
	}
	return png, nil
}

// QRDataURI renders content as a data:image/png;base64 URI, embeddable
// directly in an <img> tag.
func QRDataURI(content string, size int) (string, error) {
	png, err := QRPNG(content, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
