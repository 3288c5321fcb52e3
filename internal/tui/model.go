// Package tui renders the live authenticator view: every entry with its
// current code, a shared countdown, and key bindings for copying and
// reordering. Codes recompute only when the 30-second window rolls over;
// the 1-second tick otherwise just redraws the countdown.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/authvault/pkg/totp"
	"github.com/dmitrymomot/authvault/pkg/vault"
)

// row is one rendered entry with its cached code. Broken entries (a seed
// that no longer decodes) render a placeholder instead of aborting the view.
type row struct {
	entry vault.Entry
	code  string
	valid bool
}

// Model is the bubbletea model for the live view.
type Model struct {
	vault      *vault.Vault
	path       string
	passphrase string

	keys keyMap
	help help.Model

	rows   []row
	cursor int
	window int64
	now    time.Time

	status    string
	statusErr bool

	width    int
	height   int
	quitting bool
}

// New builds the model around a loaded vault. The path and passphrase are
// kept so entry reordering can persist immediately.
func New(v *vault.Vault, path, passphrase string) Model {
	m := Model{
		vault:      v,
		path:       path,
		passphrase: passphrase,
		keys:       keys,
		help:       help.New(),
		window:     -1,
		now:        time.Now(),
	}
	m.refresh(m.now, true)
	return m
}

// Init starts the per-second tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh recomputes the code cache. Unless forced, it is a no-op while the
// time window is unchanged.
func (m *Model) refresh(at time.Time, force bool) {
	window := at.Unix() / totp.DefaultPeriod
	if !force && window == m.window {
		return
	}
	m.window = window

	entries := m.vault.List()
	rows := make([]row, len(entries))
	for i, entry := range entries {
		code, err := entry.Code(at)
		rows[i] = row{entry: entry, code: code, valid: err == nil}
	}
	m.rows = rows

	if m.cursor > len(m.rows)-1 {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
