package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/authvault/pkg/vault"
)

// Run starts the live code view and blocks until the user quits. Reorder
// operations persist to path; pass an empty path to keep the session
// read-only on disk.
func Run(v *vault.Vault, path, passphrase string) error {
	p := tea.NewProgram(New(v, path, passphrase), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
