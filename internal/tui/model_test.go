package tui

// White-box tests: the tick message and cursor state are internal, and
// driving Update directly is the only way to exercise them without a pty.

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authvault/internal/vaultfile"
	"github.com/dmitrymomot/authvault/pkg/vault"
)

// refSeed decodes to the RFC 6238 reference key, so codes at fixed times are
// known constants.
const refSeed = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func testVault(t *testing.T, names ...string) *vault.Vault {
	t.Helper()
	v := vault.New()
	for _, name := range names {
		_, err := v.Add(name, "", refSeed)
		require.NoError(t, err)
	}
	return v
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func advance(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	updated, _ := m.Update(tickMsg(at))
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestTickRecomputesOnWindowChange(t *testing.T) {
	t.Parallel()

	v := testVault(t, "alpha")
	m := New(v, "", "pass")

	m = advance(t, m, time.Unix(59, 0))
	require.Len(t, m.rows, 1)
	assert.Equal(t, "287082", m.rows[0].code)

	// A mutation is not picked up while the window is unchanged...
	_, err := v.Add("beta", "", refSeed)
	require.NoError(t, err)
	m = advance(t, m, time.Unix(45, 0))
	assert.Len(t, m.rows, 1)

	// ...but the next window rollover refreshes the cache.
	m = advance(t, m, time.Unix(65, 0))
	assert.Len(t, m.rows, 2)
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	m := New(testVault(t, "alpha", "bravo", "charlie"), "", "pass")

	update := func(msg tea.Msg) {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	update(keyPress('j'))
	assert.Equal(t, 1, m.cursor)
	update(keyPress('j'))
	assert.Equal(t, 2, m.cursor)
	update(keyPress('j'))
	assert.Equal(t, 2, m.cursor, "cursor stops at the last entry")

	update(keyPress('k'))
	assert.Equal(t, 1, m.cursor)
	update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
	update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stops at the first entry")
}

func TestMovePersistsOrder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vault.enc")
	v := testVault(t, "alpha", "bravo")

	m := New(v, path, "pass")
	updated, _ := m.Update(keyPress('J'))
	m = updated.(Model)

	assert.Equal(t, 1, m.cursor, "cursor follows the moved entry")
	assert.Equal(t, "order saved", m.status)

	loaded, err := vaultfile.Load(path, "pass")
	require.NoError(t, err)
	names := []string{}
	for _, entry := range loaded.List() {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"bravo", "alpha"}, names)
}

func TestMoveAtEdgeIsNoop(t *testing.T) {
	t.Parallel()

	m := New(testVault(t, "alpha", "bravo"), "", "pass")

	updated, _ := m.Update(keyPress('K'))
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
	assert.Empty(t, m.status, "no save attempted for an edge move")
}

func TestCopySetsStatus(t *testing.T) {
	t.Parallel()

	m := New(testVault(t, "alpha"), "", "pass")

	updated, _ := m.Update(keyPress('c'))
	m = updated.(Model)

	// Copy succeeds or reports an unavailable clipboard; either way the
	// status line tells the user what happened.
	ok := strings.Contains(m.status, "copied") || strings.Contains(m.status, "clipboard unavailable")
	assert.True(t, ok, "unexpected status %q", m.status)
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := New(testVault(t, "alpha"), "", "pass")

	updated, cmd := m.Update(keyPress('q'))
	m = updated.(Model)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestView(t *testing.T) {
	t.Parallel()

	t.Run("entries with codes and countdown", func(t *testing.T) {
		t.Parallel()

		m := New(testVault(t, "alpha", "bravo"), "", "pass")
		m = advance(t, m, time.Unix(59, 0))

		view := m.View()
		assert.Contains(t, view, "authvault")
		assert.Contains(t, view, "alpha")
		assert.Contains(t, view, "bravo")
		assert.Contains(t, view, "287 082")
		assert.Contains(t, view, " 1s .")
	})

	t.Run("cursor marks the selection", func(t *testing.T) {
		t.Parallel()

		m := New(testVault(t, "alpha", "bravo"), "", "pass")
		updated, _ := m.Update(keyPress('j'))
		m = updated.(Model)

		assert.Contains(t, m.View(), cursorGlyph+"bravo")
	})

	t.Run("empty vault", func(t *testing.T) {
		t.Parallel()

		m := New(vault.New(), "", "pass")
		assert.Contains(t, m.View(), "vault is empty")
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "short name unchanged", input: "github", limit: 24, want: "github"},
		{name: "at the limit unchanged", input: strings.Repeat("a", 24), limit: 24, want: strings.Repeat("a", 24)},
		{name: "long name truncated", input: strings.Repeat("a", 30), limit: 24, want: strings.Repeat("a", 23) + "…"},
		{name: "multibyte within limit unchanged", input: "日本語のアカウント", limit: 24, want: "日本語のアカウント"},
		{name: "long multibyte cut on a rune boundary", input: strings.Repeat("語", 30), limit: 24, want: strings.Repeat("語", 23) + "…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := truncate(tt.input, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
