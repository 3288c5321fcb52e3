package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/authvault/internal/vaultfile"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.refresh(m.now, false)
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Copy):
			m.copyCurrent()

		case key.Matches(msg, m.keys.MoveUp):
			m.moveCurrent(-1)

		case key.Matches(msg, m.keys.MoveDown):
			m.moveCurrent(+1)

		case key.Matches(msg, m.keys.Refresh):
			m.refresh(m.now, true)
			m.setStatus("refreshed", false)

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// copyCurrent puts the selected entry's code on the system clipboard. A
// missing clipboard is reported in the status line, never fatal.
func (m *Model) copyCurrent() {
	if len(m.rows) == 0 {
		return
	}
	current := m.rows[m.cursor]
	if !current.valid {
		m.setStatus("entry has an unreadable seed", true)
		return
	}
	if err := clipboard.WriteAll(current.code); err != nil {
		m.setStatus("clipboard unavailable", true)
		return
	}
	m.setStatus("code for "+current.entry.Name+" copied", false)
}

// moveCurrent shifts the selected entry up or down and persists the new
// order right away, so the arrangement survives the session.
func (m *Model) moveCurrent(delta int) {
	if len(m.rows) < 2 {
		return
	}
	target := m.cursor + delta
	if target < 0 || target > len(m.rows)-1 {
		return
	}

	name := m.rows[m.cursor].entry.Name
	if err := m.vault.Move(name, target); err != nil {
		m.setStatus("move failed: "+err.Error(), true)
		return
	}
	m.cursor = target
	m.refresh(m.now, true)

	if m.path == "" {
		return
	}
	if err := vaultfile.Save(m.path, m.vault, m.passphrase); err != nil {
		m.setStatus("order not saved: "+err.Error(), true)
		return
	}
	m.setStatus("order saved", false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}
