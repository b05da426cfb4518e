package tableview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ExportFilename is the fixed name of the exported file.
	ExportFilename = "data.csv"
	// ExportMIME is the media type of the export payload.
	ExportMIME = "text/csv"
)

// Export renders a header line of column labels followed by one line per row.
// Values are joined with commas as-is: a value containing a comma or newline
// is not quoted and will shift the columns of its line.
func Export(cols []Column, rows []Record) []byte {
	lines := make([]string, 0, len(rows)+1)

	labels := make([]string, len(cols))
	for i, c := range cols {
		labels[i] = c.Label
	}
	lines = append(lines, strings.Join(labels, ","))

	for _, r := range rows {
		lines = append(lines, strings.Join(r.Cells(cols), ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

// WriteExport writes payload to dir/data.csv, creating dir as needed, and
// returns the written path.
func WriteExport(dir string, payload []byte) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFilename)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
