// Package report prints a one-shot text rendition of the dashboard for
// scripts and non-interactive terminals.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/five82/insights/internal/metrics"
	"github.com/five82/insights/internal/state"
	"github.com/five82/insights/internal/tableview"
)

// Options tune the report output.
type Options struct {
	UseColors bool
}

// Write renders the snapshot followed by the view's current page.
func Write(w io.Writer, snap state.Snapshot, view *tableview.View, opts Options) error {
	green, red, faint := fmt.Sprint, fmt.Sprint, fmt.Sprint
	if opts.UseColors {
		green = color.New(color.FgGreen).SprintFunc()
		red = color.New(color.FgRed).SprintFunc()
		faint = color.New(color.FgHiBlack).SprintFunc()
	}

	if _, err := fmt.Fprintf(w, "Analytics Dashboard  %s\n\n",
		faint("Last updated: "+snap.LastUpdated.Format("15:04:05"))); err != nil {
		return err
	}
	if snap.Loading() {
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	}

	if err := writeMetrics(w, snap.Metrics, green, red); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	if err := writeSeries(w, snap.Series); err != nil {
		return fmt.Errorf("write series: %w", err)
	}
	if err := writeProportion(w, snap.Proportion); err != nil {
		return fmt.Errorf("write proportion: %w", err)
	}
	if view != nil {
		if err := writeTable(w, view, faint); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	return nil
}

func writeMetrics(w io.Writer, ms []metrics.Metric, up, down func(...any) string) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Metric", "Value", "Trend"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(ms))
	for _, m := range ms {
		trend := down(m.Trend)
		if m.TrendUp() {
			trend = up(m.Trend)
		}
		data = append(data, []string{m.Name, metrics.FormatValue(m), trend})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeSeries(w io.Writer, series []metrics.Point) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Month", "Revenue", "Users"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(series))
	for _, p := range series {
		data = append(data, []string{p.Label, strconv.Itoa(p.Revenue), strconv.Itoa(p.Users)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeProportion(w io.Writer, p metrics.Proportion) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Segment", "Count", "Share"})
	share := p.Share()
	data := [][]string{
		{"Conversions", strconv.Itoa(p.Conversions), fmt.Sprintf("%.1f%%", share*100)},
		{"Non-Conversions", strconv.Itoa(p.NonConversions), fmt.Sprintf("%.1f%%", (1-share)*100)},
	}
	if p.Total() == 0 {
		data[1][2] = "0.0%"
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeTable(w io.Writer, view *tableview.View, faint func(...any) string) error {
	page := view.Visible()
	cols := view.Columns()
	sortState := view.Sort()

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = tableview.HeaderLabel(c, sortState)
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header(headers)

	var data [][]string
	for _, r := range page.Rows {
		data = append(data, r.Cells(cols))
	}
	if page.Empty() {
		row := make([]string, len(cols))
		row[0] = tableview.NoResults
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	footer := page.Label()
	if q := view.Query(); q != "" {
		footer += fmt.Sprintf("  filter %q", q)
	}
	_, err := fmt.Fprintf(w, "%s  %s\n", footer, faint(fmt.Sprintf("%d rows", page.Total)))
	return err
}
