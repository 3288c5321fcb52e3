package vault

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authvault/pkg/seed"
	"github.com/dmitrymomot/authvault/pkg/totp"
)

// Entry is one stored authenticator account. The seed is kept in canonical
// base32 form; decoding happens on demand when a code is computed.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Issuer    string    `json:"issuer,omitempty"`
	Seed      string    `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

// Code computes the entry's one-time password for the window containing the
// given moment, using the standard 6-digit/30-second parameters.
func (e Entry) Code(at time.Time) (string, error) {
	key, err := seed.Decode(e.Seed)
	if err != nil {
		return "", errors.Join(ErrInvalidSeed, err)
	}
	return totp.Generate(key, at, totp.Params{})
}

// validate checks the invariants every stored entry must satisfy.
func (e Entry) validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if !seed.IsValid(e.Seed) {
		return ErrInvalidSeed
	}
	return nil
}
