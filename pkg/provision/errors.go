package provision

import "errors"

var (
	ErrMissingSeed    = errors.New("seed is required")
	ErrInvalidSeed    = errors.New("seed is not a valid base32 key")
	ErrMissingAccount = errors.New("account name is required")
	ErrMissingIssuer  = errors.New("issuer is required")
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrQRFailed       = errors.New("failed to generate QR code")
)
