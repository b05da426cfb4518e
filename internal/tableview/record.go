package tableview

import "strconv"

// Record is one immutable row of the users table.
type Record struct {
	ID      int
	Name    string
	Email   string
	Revenue int
	Date    string // ISO 8601 date
}

// Kind classifies a column for sorting.
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

// Column maps a record field to its header label. Column order defines header
// order and export order.
type Column struct {
	Key   string
	Label string
	Kind  Kind
}

// Field keys understood by Record.Value.
const (
	KeyID      = "id"
	KeyName    = "name"
	KeyEmail   = "email"
	KeyRevenue = "revenue"
	KeyDate    = "date"
)

// Value returns the raw field addressed by key, or nil for unknown keys.
func (r Record) Value(key string) any {
	switch key {
	case KeyID:
		return r.ID
	case KeyName:
		return r.Name
	case KeyEmail:
		return r.Email
	case KeyRevenue:
		return r.Revenue
	case KeyDate:
		return r.Date
	default:
		return nil
	}
}

// String returns the field addressed by key in its display form.
func (r Record) String(key string) string {
	switch v := r.Value(key).(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return ""
	}
}

// Cells returns the record's fields in column order.
func (r Record) Cells(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = r.String(c.Key)
	}
	return out
}

// DefaultColumns returns the users table schema.
func DefaultColumns() []Column {
	return []Column{
		{Key: KeyID, Label: "ID", Kind: KindNumber},
		{Key: KeyName, Label: "Name", Kind: KindText},
		{Key: KeyEmail, Label: "Email", Kind: KindText},
		{Key: KeyRevenue, Label: "Revenue ($)", Kind: KindNumber},
		{Key: KeyDate, Label: "Date", Kind: KindText},
	}
}

// SeedRecords returns the static users table.
func SeedRecords() []Record {
	return []Record{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Revenue: 1200, Date: "2025-01-05"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Revenue: 900, Date: "2025-02-18"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com", Revenue: 1500, Date: "2025-03-10"},
		{ID: 4, Name: "Diana", Email: "diana@example.com", Revenue: 1100, Date: "2025-04-20"},
		{ID: 5, Name: "Eve", Email: "eve@example.com", Revenue: 700, Date: "2025-05-25"},
	}
}

// ColumnByKey looks up a column by its key.
func ColumnByKey(cols []Column, key string) (Column, bool) {
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}
