package tableview

import (
	"fmt"
	"sort"
	"strings"
)

// FilterOptions tune the global filter.
type FilterOptions struct {
	CaseSensitive bool
}

// Filter keeps the rows where at least one column contains query. An empty
// query returns rows unchanged. Matching ignores case unless opts says
// otherwise.
func Filter(rows []Record, cols []Column, query string, opts FilterOptions) []Record {
	if query == "" {
		return rows
	}
	needle := query
	if !opts.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		for _, c := range cols {
			hay := r.String(c.Key)
			if !opts.CaseSensitive {
				hay = strings.ToLower(hay)
			}
			if strings.Contains(hay, needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Direction is the sort order of a column.
type Direction int

const (
	SortNone Direction = iota
	SortAsc
	SortDesc
)

func (d Direction) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// Indicator returns the arrow shown next to a sorted column header.
func (d Direction) Indicator() string {
	switch d {
	case SortAsc:
		return "▲"
	case SortDesc:
		return "▼"
	default:
		return ""
	}
}

// SortState is the single active sort, if any.
type SortState struct {
	Key string
	Dir Direction
}

// Active reports whether a column is sorted.
func (s SortState) Active() bool {
	return s.Key != "" && s.Dir != SortNone
}

// DirFor returns the direction applied to the given column.
func (s SortState) DirFor(key string) Direction {
	if s.Key != key {
		return SortNone
	}
	return s.Dir
}

// firstDir is the direction a column starts from: numbers sort descending
// first, text ascending.
func firstDir(col Column) Direction {
	if col.Kind == KindNumber {
		return SortDesc
	}
	return SortAsc
}

// Toggle advances the three-state cycle for col. Repeated toggles of the same
// column go first → opposite → unsorted; toggling another column starts over.
func (s SortState) Toggle(col Column) SortState {
	first := firstDir(col)
	if s.Key != col.Key || s.Dir == SortNone {
		return SortState{Key: col.Key, Dir: first}
	}
	if s.Dir == first {
		opposite := SortAsc
		if first == SortAsc {
			opposite = SortDesc
		}
		return SortState{Key: col.Key, Dir: opposite}
	}
	return SortState{}
}

// Sort returns a stably sorted copy of rows. Descending order inverts the
// comparator, so equal keys keep their input order in both directions.
func Sort(rows []Record, cols []Column, s SortState) []Record {
	out := make([]Record, len(rows))
	copy(out, rows)
	if !s.Active() {
		return out
	}
	col, ok := ColumnByKey(cols, s.Key)
	if !ok {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], col)
		if s.Dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b Record, col Column) int {
	if col.Kind == KindNumber {
		x, _ := a.Value(col.Key).(int)
		y, _ := b.Value(col.Key).(int)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a.String(col.Key)), strings.ToLower(b.String(col.Key)))
}

// DefaultPageSize matches the rows shown per page when unconfigured.
const DefaultPageSize = 10

// Page is one slice of the filtered and sorted rows.
type Page struct {
	Rows  []Record
	Index int // zero-based
	Size  int
	Count int // number of pages; zero when there are no rows
	Total int // rows across all pages
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Index > 0
}

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool {
	return p.Index < p.Count-1
}

// Empty reports whether the page has nothing to show.
func (p Page) Empty() bool {
	return len(p.Rows) == 0
}

// NoResults is shown in place of rows when the filter matches nothing.
const NoResults = "No results found."

// Label renders the footer position. An empty table still reads "Page 1 of 1".
func (p Page) Label() string {
	return fmt.Sprintf("Page %d of %d", p.Index+1, max(p.Count, 1))
}

// HeaderLabel returns the column label with the sort arrow, if any.
func HeaderLabel(col Column, s SortState) string {
	if arrow := s.DirFor(col.Key).Indicator(); arrow != "" {
		return col.Label + " " + arrow
	}
	return col.Label
}

// PageCount returns ceil(total/size).
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate returns the page at index. The index is clamped into range.
func Paginate(rows []Record, index, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	count := PageCount(len(rows), size)
	if index >= count {
		index = count - 1
	}
	if index < 0 {
		index = 0
	}

	start := index * size
	end := min(start+size, len(rows))
	var pageRows []Record
	if start < end {
		pageRows = rows[start:end]
	}
	return Page{Rows: pageRows, Index: index, Size: size, Count: count, Total: len(rows)}
}
