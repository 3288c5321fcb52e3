package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/authvault/pkg/totp"
)

const (
	cursorGlyph  = "❯ "
	maxNameWidth = 24
	maxDots      = 10
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("authvault"))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(emptyStyle.Render("vault is empty - run 'authvault add' to enroll an account"))
		b.WriteString("\n")
	} else {
		nameWidth := m.nameColumnWidth()
		remaining := totp.Remaining(m.now, totp.DefaultPeriod)
		expiring := remaining.Seconds() <= 5

		for i, r := range m.rows {
			b.WriteString(m.renderRow(r, i == m.cursor, nameWidth, expiring))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(countdownStyle.Render(m.renderCountdown(remaining)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(statusErrStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderRow(r row, selected bool, nameWidth int, expiring bool) string {
	name := fmt.Sprintf("%-*s", nameWidth, truncate(r.entry.Name, maxNameWidth))

	var code string
	switch {
	case !r.valid:
		code = brokenStyle.Render("--- ---")
	case expiring:
		code = expiringStyle.Render(totp.FormatCode(r.code))
	default:
		code = codeStyle.Render(totp.FormatCode(r.code))
	}

	issuer := ""
	if r.entry.Issuer != "" {
		issuer = "  " + issuerStyle.Render(truncate(r.entry.Issuer, maxNameWidth))
	}

	if selected {
		return selectedStyle.Render(cursorGlyph+name) + "  " + code + issuer
	}
	return entryStyle.Render("  "+name) + "  " + code + issuer
}

// renderCountdown shows the seconds left in the current window with the
// shrinking dot bar, one dot per three seconds.
func (m Model) renderCountdown(remaining time.Duration) string {
	secondsLeft := int(remaining.Seconds())
	dots := strings.Repeat(".", min((secondsLeft+2)/3, maxDots))
	return fmt.Sprintf("%2ds %s", secondsLeft, dots)
}

// truncate caps s at limit runes, never splitting a multi-byte character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func (m Model) nameColumnWidth() int {
	width := 0
	for _, r := range m.rows {
		if l := len(truncate(r.entry.Name, maxNameWidth)); l > width {
			width = l
		}
	}
	return width
}
