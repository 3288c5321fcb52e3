package totp

import "errors"

var (
	ErrEmptyKey      = errors.New("key is empty")
	ErrInvalidDigits = errors.New("digits must be between 6 and 8")
	ErrInvalidPeriod = errors.New("period must be a positive number of seconds")
	ErrInvalidCode   = errors.New("code has invalid format")
)
