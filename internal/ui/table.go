package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/insights/internal/tableview"
)

// Column widths before the table is stretched to the terminal. The bubbles
// table adds one column of padding on each side of every cell.
var baseColumnWidths = map[string]int{
	tableview.KeyID:      6,
	tableview.KeyName:    12,
	tableview.KeyEmail:   22,
	tableview.KeyRevenue: 15,
	tableview.KeyDate:    12,
}

const (
	defaultColumnWidth = 12
	cellPadding        = 2
	minFlexWidth       = len(tableview.NoResults) + 1
)

// tableHeight is the bubbles table height for a page of rows: the rows plus
// the header and its underline.
func tableHeight(pageSize int) int {
	if pageSize <= 0 {
		pageSize = tableview.DefaultPageSize
	}
	return pageSize + 2
}

// columnWidths sizes the columns to fill width. The widest column absorbs
// the slack and is the one that shows the empty-result message.
func columnWidths(cols []tableview.Column, width int) ([]int, int) {
	widths := make([]int, len(cols))
	flex := 0
	used := 0
	for i, c := range cols {
		w, ok := baseColumnWidths[c.Key]
		if !ok {
			w = defaultColumnWidth
		}
		widths[i] = w
		used += w + cellPadding
		if w > widths[flex] {
			flex = i
		}
	}
	if len(cols) == 0 || width <= 0 {
		return widths, flex
	}
	// Panel border and padding take four columns
	widths[flex] = max(widths[flex]+width-4-used, minFlexWidth)
	return widths, flex
}

// syncTable copies the current page of the view into the bubbles table.
func (m *Model) syncTable() {
	page := m.table.Visible()
	cols := m.table.Columns()
	sortState := m.table.Sort()
	widths, flex := columnWidths(cols, m.width)

	tcols := make([]table.Column, len(cols))
	for i, c := range cols {
		tcols[i] = table.Column{
			Title: fmt.Sprintf("%d %s", i+1, tableview.HeaderLabel(c, sortState)),
			Width: widths[i],
		}
	}

	rows := make([]table.Row, 0, len(page.Rows))
	for _, r := range page.Rows {
		rows = append(rows, table.Row(r.Cells(cols)))
	}
	if page.Empty() && len(cols) > 0 {
		row := make(table.Row, len(cols))
		row[flex] = tableview.NoResults
		rows = append(rows, row)
	}

	// Columns first: rows wider than the column set cannot be rendered
	m.dataTable.SetColumns(tcols)
	m.dataTable.SetRows(rows)
	if m.dataTable.Cursor() >= len(rows) {
		m.dataTable.SetCursor(0)
	}
}

// renderTable renders the searchable, sortable, paginated data table.
func (m Model) renderTable() string {
	styles := m.theme.Styles()
	page := m.table.Visible()

	var search string
	switch {
	case m.searching:
		search = m.search.View()
	case m.table.Query() != "":
		search = styles.AccentText.Render("/ " + m.table.Query())
	default:
		search = styles.FaintText.Render("/ to search")
	}
	title := styles.Text.Bold(true).Render("Users Data") + "  " + search

	prev := styles.FaintText.Render("[p] Previous")
	if page.HasPrev() {
		prev = styles.AccentText.Render("[p] Previous")
	}
	next := styles.FaintText.Render("[n] Next")
	if page.HasNext() {
		next = styles.AccentText.Render("[n] Next")
	}
	footer := strings.Join([]string{
		styles.Text.Render(page.Label()),
		styles.MutedText.Render(fmt.Sprintf("%d rows", page.Total)),
		prev,
		next,
		styles.FaintText.Render("[x] Export CSV"),
	}, "  ")

	width := max(m.width-2, 20)
	return styles.Panel.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, m.dataTable.View(), footer))
}
