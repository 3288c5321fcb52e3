// Package vault holds the in-memory collection of authenticator entries and
// its portable serialized form.
//
// A Vault is an ordered, name-keyed set of entries, each carrying a base32
// seed. Order is user-controlled (entries can be moved) and survives
// serialization, so the display order in one session is the display order in
// the next. All methods are safe for concurrent use.
//
// # Serialization
//
// Serialize renders a versioned JSON document:
//
//	{"version":1,"entries":[{"id":"…","name":"github","issuer":"GitHub","seed":"…","created_at":"…"}]}
//
// Load is the inverse and rejects unknown versions, malformed entries, and
// duplicate names. Export and Import wrap the document in a vaultcrypt
// envelope, which is how backups and the vault file at rest are produced.
//
// # Error Handling
//
// Operations return package sentinels: ErrEmptyName, ErrInvalidSeed,
// ErrDuplicateName, ErrEntryNotFound, ErrInvalidDocument, and
// ErrUnsupportedDocument. Seed validation failures wrap the underlying
// pkg/seed error, so errors.Is works against both taxonomies.
package vault
