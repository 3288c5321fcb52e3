// Package prompt reads passphrases from the terminal without echo.
package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/term"
)

var (
	ErrMismatch   = errors.New("passphrases do not match")
	ErrEmpty      = errors.New("passphrase is empty")
	ErrNoTerminal = errors.New("stdin is piped and no terminal is available; set AUTHVAULT_PASSPHRASE")
)

// Password returns the override when one is configured (AUTHVAULT_PASSPHRASE),
// otherwise prompts on the terminal with echo disabled. The label is written
// to stderr so stdout stays clean for command output.
func Password(label, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	passphrase, err := readPassword(label)
	if err != nil {
		return "", err
	}
	defer zeroBytes(passphrase)

	if len(passphrase) == 0 {
		return "", ErrEmpty
	}
	return string(passphrase), nil
}

// PasswordConfirmed prompts twice and requires both entries to match. Used
// whenever a new passphrase is being established, so a typo cannot seal the
// vault with a passphrase the user does not know.
func PasswordConfirmed(label, confirmLabel, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	passphrase, err := readPassword(label)
	if err != nil {
		return "", err
	}
	defer zeroBytes(passphrase)

	if len(passphrase) == 0 {
		return "", ErrEmpty
	}

	confirm, err := readPassword(confirmLabel)
	if err != nil {
		return "", err
	}
	defer zeroBytes(confirm)

	if !bytes.Equal(passphrase, confirm) {
		return "", ErrMismatch
	}
	return string(passphrase), nil
}

// readPassword reads a line with echo disabled. When stdin is piped it falls
// back to the controlling terminal, so `authvault export | …` can still
// prompt.
func readPassword(label string) ([]byte, error) {
	fmt.Fprint(os.Stderr, label)

	if term.IsTerminal(int(syscall.Stdin)) {
		passphrase, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		return passphrase, err
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		fmt.Fprintln(os.Stderr)
		return nil, ErrNoTerminal
	}
	defer tty.Close()

	passphrase, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)
	return passphrase, err
}

// zeroBytes overwrites a byte slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
