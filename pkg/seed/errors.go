package seed

import "errors"

var (
	ErrEmptyInput       = errors.New("seed is empty")
	ErrInvalidCharacter = errors.New("seed contains a character outside the base32 alphabet")
	ErrInvalidLength    = errors.New("seed length does not decode to whole bytes")
	ErrGenerateFailed   = errors.New("failed to generate seed")
)
