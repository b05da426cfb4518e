package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const copyright = "© 2025 insights"

// renderFooter renders the status message (or short help) and the
// copyright line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	left := m.help.View(m.keys)
	if m.status != "" {
		style := styles.SuccessText
		if m.statusErr {
			style = styles.DangerText
		}
		left = style.Render(m.status)
	}

	right := styles.FaintText.Render(copyright)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", gap) + right
}
