package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"

	"github.com/five82/insights/internal/metrics"
)

// chartBodyHeight is the plot area inside a chart panel: the panel height
// minus borders, the title line and the label line.
const chartBodyHeight = chartHeight - 4

// renderCharts renders the revenue line, users bars and conversion split.
func (m Model) renderCharts() string {
	styles := m.theme.Styles()

	perRow := 3
	if m.width < LayoutCompactWidth {
		perRow = 1
	}
	width := max(m.width/perRow-2, LayoutMinChartWidth)
	inner := width - 2
	panel := styles.Panel.Width(width).Height(chartHeight - 2)

	titles := []string{"Revenue", "Users", "Conversions"}
	var bodies []string
	if m.snapshot.Loading() {
		for range titles {
			bodies = append(bodies, m.skeleton(inner, chartBodyHeight))
		}
	} else {
		bodies = []string{
			m.renderRevenueChart(m.snapshot.Series, inner),
			m.renderUsersChart(m.snapshot.Series, inner),
			m.renderProportion(m.snapshot.Proportion, inner),
		}
	}

	panels := make([]string, len(titles))
	for i, title := range titles {
		panels[i] = panel.Render(styles.Text.Bold(true).Render(title) + "\n" + bodies[i])
	}
	if perRow == 1 {
		return lipgloss.JoinVertical(lipgloss.Left, panels...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// renderRevenueChart draws the revenue series on a braille canvas with month
// labels underneath.
func (m Model) renderRevenueChart(series []metrics.Point, width int) string {
	if len(series) == 0 {
		return ""
	}
	values := make([]float64, len(series))
	flat := true
	for i, p := range series {
		values[i] = float64(p.Revenue)
		flat = flat && p.Revenue == series[0].Revenue
	}
	labels := m.theme.Styles().FaintText.Render(spreadLabels(series, width))

	// The canvas scales by max-min and cannot plot a flat series
	if flat {
		rows := make([]string, chartBodyHeight-1)
		rows[len(rows)/2] = strings.Repeat("⠤", width)
		return strings.Join(rows, "\n") + "\n" + labels
	}

	line := plot.LightGray
	if !m.theme.Dark {
		line = plot.Black
	}

	canvas := plot.NewCanvas(width, chartBodyHeight-1)
	canvas.NumDataPoints = len(values)
	canvas.ShowAxis = false
	canvas.LineColors = []plot.Color{line}
	canvas.Fill([][]float64{values})

	return canvas.String() + "\n" + labels
}

// renderUsersChart draws one horizontal bar per period, scaled to the
// largest value. Values at or below zero get an empty bar.
func (m Model) renderUsersChart(series []metrics.Point, width int) string {
	styles := m.theme.Styles()
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ChartPrimary))

	peak := 0
	labelWidth := 0
	valueWidth := 1
	for _, p := range series {
		peak = max(peak, p.Users)
		labelWidth = max(labelWidth, len([]rune(p.Label)))
		valueWidth = max(valueWidth, len(strconv.Itoa(p.Users)))
	}
	barWidth := max(width-labelWidth-valueWidth-2, 1)

	lines := make([]string, 0, len(series))
	for _, p := range series {
		n := 0
		if peak > 0 {
			n = min(max(p.Users*barWidth/peak, 0), barWidth)
		}
		lines = append(lines,
			styles.MutedText.Render(padRight(p.Label, labelWidth))+" "+
				bar.Render(strings.Repeat("█", n))+strings.Repeat(" ", barWidth-n)+" "+
				styles.Text.Render(fmt.Sprintf("%*d", valueWidth, p.Users)))
	}
	return strings.Join(lines, "\n")
}

// renderProportion draws the conversion split as a two-tone bar with a legend.
func (m Model) renderProportion(p metrics.Proportion, width int) string {
	styles := m.theme.Styles()
	primary := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ChartPrimary))
	secondary := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ChartSecondary))

	share := p.Share()
	rest := 0.0
	if p.Total() > 0 {
		rest = 1 - share
	}
	filled := int(share*float64(width) + 0.5)
	bar := primary.Render(strings.Repeat("█", filled)) + secondary.Render(strings.Repeat("█", width-filled))

	return strings.Join([]string{
		bar,
		bar,
		"",
		primary.Render("■") + " " + styles.Text.Render(fmt.Sprintf("Conversions %d (%.1f%%)", p.Conversions, share*100)),
		secondary.Render("■") + " " + styles.Text.Render(fmt.Sprintf("Non-Conversions %d (%.1f%%)", p.NonConversions, rest*100)),
	}, "\n")
}

// spreadLabels places each period label under its data point across width
// columns.
func spreadLabels(series []metrics.Point, width int) string {
	row := []rune(strings.Repeat(" ", width))
	n := len(series)
	for i, p := range series {
		label := []rune(p.Label)
		pos := 0
		if n > 1 {
			pos = i * (width - len(label)) / (n - 1)
		}
		for j, r := range label {
			if k := pos + j; k >= 0 && k < width {
				row[k] = r
			}
		}
	}
	return string(row)
}
