package vault

import "errors"

var (
	ErrEmptyName           = errors.New("entry name is empty")
	ErrInvalidSeed         = errors.New("seed is not a valid base32 key")
	ErrDuplicateName       = errors.New("an entry with this name already exists")
	ErrEntryNotFound       = errors.New("entry not found")
	ErrInvalidDocument     = errors.New("vault document is malformed")
	ErrUnsupportedDocument = errors.New("unsupported vault document version")
)
