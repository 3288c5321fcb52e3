package vault

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authvault/pkg/seed"
	"github.com/dmitrymomot/authvault/pkg/vaultcrypt"
)

// documentVersion is the current serialization format. Bump only with a
// migration path for older documents.
const documentVersion = 1

// document is the JSON form of a vault.
type document struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// Vault is an ordered collection of authenticator entries, safe for
// concurrent use. Entries keep their insertion order until moved explicitly;
// names are unique and case-sensitive.
type Vault struct {
	mu      sync.RWMutex
	entries []Entry
}

// New returns an empty vault.
func New() *Vault {
	return &Vault{}
}

// Load parses a serialized vault document.
func Load(doc []byte) (*Vault, error) {
	var parsed document
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if parsed.Version != documentVersion {
		return nil, ErrUnsupportedDocument
	}

	v := New()
	for _, entry := range parsed.Entries {
		entry.Name = strings.TrimSpace(entry.Name)
		entry.Seed = seed.Normalize(entry.Seed)
		if err := entry.validate(); err != nil {
			return nil, errors.Join(ErrInvalidDocument, err)
		}
		if v.indexOf(entry.Name) >= 0 {
			return nil, errors.Join(ErrInvalidDocument, ErrDuplicateName)
		}
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}
		v.entries = append(v.entries, entry)
	}
	return v, nil
}

// Add validates and stores a new entry, returning it with a fresh ID. The
// seed is normalized to canonical form before storage.
func (v *Vault) Add(name, issuer, seedStr string) (Entry, error) {
	entry := Entry{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Issuer:    strings.TrimSpace(issuer),
		Seed:      seed.Normalize(seedStr),
		CreatedAt: time.Now().UTC(),
	}
	if entry.Name == "" {
		return Entry{}, ErrEmptyName
	}
	if _, err := seed.Decode(entry.Seed); err != nil {
		return Entry{}, errors.Join(ErrInvalidSeed, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.indexOf(entry.Name) >= 0 {
		return Entry{}, ErrDuplicateName
	}
	v.entries = append(v.entries, entry)
	return entry, nil
}

// Get returns the entry with the given name.
func (v *Vault) Get(name string) (Entry, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	idx := v.indexOf(name)
	if idx < 0 {
		return Entry{}, ErrEntryNotFound
	}
	return v.entries[idx], nil
}

// List returns a copy of all entries in display order.
func (v *Vault) List() []Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()

	entries := make([]Entry, len(v.entries))
	copy(entries, v.entries)
	return entries
}

// Len returns the number of stored entries.
func (v *Vault) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.entries)
}

// Remove deletes the entry with the given name.
func (v *Vault) Remove(name string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	idx := v.indexOf(name)
	if idx < 0 {
		return ErrEntryNotFound
	}
	v.entries = append(v.entries[:idx], v.entries[idx+1:]...)
	return nil
}

// Rename changes an entry's name, keeping its position, ID, and seed.
func (v *Vault) Rename(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	idx := v.indexOf(oldName)
	if idx < 0 {
		return ErrEntryNotFound
	}
	if other := v.indexOf(newName); other >= 0 && other != idx {
		return ErrDuplicateName
	}
	v.entries[idx].Name = newName
	return nil
}

// Move shifts an entry to the given zero-based position. Positions outside
// the valid range are clamped to the nearest end.
func (v *Vault) Move(name string, pos int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	idx := v.indexOf(name)
	if idx < 0 {
		return ErrEntryNotFound
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(v.entries)-1 {
		pos = len(v.entries) - 1
	}
	if pos == idx {
		return nil
	}

	entry := v.entries[idx]
	v.entries = append(v.entries[:idx], v.entries[idx+1:]...)
	v.entries = append(v.entries[:pos], append([]Entry{entry}, v.entries[pos:]...)...)
	return nil
}

// Code computes the current one-time password for the named entry.
func (v *Vault) Code(name string, at time.Time) (string, error) {
	entry, err := v.Get(name)
	if err != nil {
		return "", err
	}
	return entry.Code(at)
}

// Serialize renders the vault as a versioned JSON document.
func (v *Vault) Serialize() ([]byte, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	doc := document{
		Version: documentVersion,
		Entries: v.entries,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return data, nil
}

// Export serializes the vault and seals it into a portable encrypted
// envelope. The result is safe to store or transmit; only the password
// opens it.
func (v *Vault) Export(password string) (string, error) {
	doc, err := v.Serialize()
	if err != nil {
		return "", err
	}
	return vaultcrypt.Encrypt(string(doc), password)
}

// Import opens an encrypted backup and folds its entries into the vault.
// By default entries whose names already exist are skipped; with replace set,
// the backup replaces the whole collection. Returns the number of entries
// added.
func (v *Vault) Import(envelope, password string, replace bool) (int, error) {
	doc, err := vaultcrypt.Decrypt(envelope, password)
	if err != nil {
		return 0, err
	}
	imported, err := Load([]byte(doc))
	if err != nil {
		return 0, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if replace {
		v.entries = imported.entries
		return len(v.entries), nil
	}

	added := 0
	for _, entry := range imported.entries {
		if v.indexOf(entry.Name) >= 0 {
			continue
		}
		v.entries = append(v.entries, entry)
		added++
	}
	return added, nil
}

// indexOf returns the position of the named entry, or -1. Callers must hold
// the lock.
func (v *Vault) indexOf(name string) int {
	for i, entry := range v.entries {
		if entry.Name == name {
			return i
		}
	}
	return -1
}
