package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar with feed status and freshness.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("insights", styles.Logo),
		bg.Render("Analytics Dashboard", styles.Text.Bold(true)),
	}

	switch {
	case m.snapshot.Loading():
		parts = append(parts, bg.Render("Loading...", styles.WarningText.Bold(true)))
	case m.feed != nil && m.feed.Running():
		parts = append(parts,
			bg.Render("● LIVE", styles.SuccessText)+bg.Space()+
				bg.Render("every "+m.feed.Interval().String(), styles.MutedText))
	default:
		parts = append(parts, bg.Render("❚❚ PAUSED", styles.WarningText.Bold(true)))
	}

	if updated := m.snapshot.LastUpdated; !updated.IsZero() {
		parts = append(parts,
			bg.Render("Last updated:", styles.MutedText)+bg.Space()+
				bg.Render(updated.Format("15:04:05"), styles.Text))
	}

	if m.width >= LayoutCompactWidth {
		parts = append(parts,
			bg.Render("Ticks:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.snapshot.Ticks), styles.Text))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(strings.Join(parts, sep))
}

// renderContextBar renders the second header line: what the current view is
// showing and the keys that change it.
func (m Model) renderContextBar() string {
	// Context bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewActivity:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"pgup/pgdn", "Page"},
			{"a", "Dashboard"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"1-5", "Sort"},
			{"p/n", "Page"},
			{"x", "Export"},
			{"Space", ternary(m.feed != nil && m.feed.Running(), "Pause", "Resume")},
			{"a", "Activity"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+3)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Show active table filter and sort
	if m.currentView == ViewDashboard {
		if q := m.table.Query(); q != "" {
			segments = append(segments, bg.Render("/"+truncate(q, 18), styles.AccentText))
		}
		if s := m.table.Sort(); s.Active() {
			segments = append(segments, bg.Render(s.Key+" "+s.Dir.Indicator(), styles.InfoText))
		}
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
