// Package vaultfile persists the encrypted vault on disk.
//
// The file content is a vaultcrypt envelope of the serialized vault
// document, so the at-rest format is identical to an exported backup. Reads
// enforce owner-only permissions; writes go through a temp file and rename
// so a crash never leaves a half-written vault.
package vaultfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dmitrymomot/authvault/pkg/vault"
	"github.com/dmitrymomot/authvault/pkg/vaultcrypt"
)

var (
	ErrNotFound            = errors.New("vault file does not exist")
	ErrInsecurePermissions = errors.New("vault file has insecure permissions (must be 0600 or 0400)")
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// Exists reports whether a vault file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Load reads, decrypts, and parses the vault at path. The file must be
// readable only by its owner; group- or world-accessible vaults are refused
// outright rather than silently trusted.
func Load(path, passphrase string) (*vault.Vault, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Join(ErrNotFound, fmt.Errorf("path %s", path))
		}
		return nil, err
	}

	if err := checkPermissions(info.Mode()); err != nil {
		return nil, err
	}

	envelope, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := vaultcrypt.Decrypt(string(envelope), passphrase)
	if err != nil {
		return nil, err
	}
	return vault.Load([]byte(doc))
}

// Save serializes and encrypts the vault, then atomically replaces the file
// at path. The parent directory is created owner-only when missing.
func Save(path string, v *vault.Vault, passphrase string) error {
	envelope, err := v.Export(passphrase)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return err
	}

	// Write to a temp file in the same directory so the rename cannot cross
	// filesystems and the old vault survives any failure before it.
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.WriteString(envelope); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// checkPermissions enforces the 0600/0400 rule on systems that track unix
// permission bits. Windows reports synthetic modes, so the check is skipped
// there.
func checkPermissions(mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	perm := mode.Perm()
	if perm != 0o600 && perm != 0o400 {
		return errors.Join(ErrInsecurePermissions, fmt.Errorf("mode %04o", perm))
	}
	return nil
}
