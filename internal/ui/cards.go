package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/insights/internal/metrics"
)

// cardCount is the number of headline cards, including skeletons.
const cardCount = 4

// renderDashboard stacks cards, charts and the data table.
func (m Model) renderDashboard() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderCards(),
		m.renderCharts(),
		m.renderTable(),
	)
}

// renderCards renders the headline metric cards, or skeletons while loading.
func (m Model) renderCards() string {
	styles := m.theme.Styles()

	perRow := cardCount
	if m.width < LayoutCompactWidth {
		perRow = 2
	}
	// Borders take two columns per card
	width := max(m.width/perRow-2, 12)
	card := styles.Card.Width(width)

	var cards []string
	if m.snapshot.Loading() {
		for i := 0; i < cardCount; i++ {
			cards = append(cards, card.Render(m.skeleton(width-2, 3)))
		}
	} else {
		for _, metric := range m.snapshot.Metrics {
			cards = append(cards, card.Render(m.renderCard(metric, styles)))
		}
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(metric metrics.Metric, styles Styles) string {
	arrow := ternary(metric.TrendUp(), "▲ ", "▼ ")
	return strings.Join([]string{
		styles.MutedText.Render(metric.Name),
		styles.Text.Bold(true).Render(metrics.FormatValue(metric)),
		styles.TrendStyle(metric.TrendUp()).Render(arrow + metric.Trend),
	}, "\n")
}

// skeleton renders a spinner followed by placeholder bars.
func (m Model) skeleton(width, lines int) string {
	styles := m.theme.Styles()
	width = max(width, 4)

	out := make([]string, 0, lines)
	out = append(out, m.spinner.View()+" "+styles.FaintText.Render("Loading..."))
	for i := 1; i < lines; i++ {
		// Alternate lengths so the placeholder reads as text
		w := width
		if i%2 == 0 {
			w = width * 2 / 3
		}
		out = append(out, styles.FaintText.Render(strings.Repeat("░", w)))
	}
	return strings.Join(out, "\n")
}
