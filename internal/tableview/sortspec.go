package tableview

import (
	"fmt"
	"strings"
)

// ParseSort reads "key", "key:asc" or "key:desc". A bare key starts the
// column's toggle cycle, so numbers default to descending.
func ParseSort(cols []Column, spec string) (SortState, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return SortState{}, nil
	}
	key, dir, hasDir := strings.Cut(spec, ":")
	key = strings.ToLower(strings.TrimSpace(key))

	col, ok := ColumnByKey(cols, key)
	if !ok {
		return SortState{}, fmt.Errorf("unknown sort column %q", key)
	}
	if !hasDir {
		return SortState{}.Toggle(col), nil
	}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "asc":
		return SortState{Key: col.Key, Dir: SortAsc}, nil
	case "desc":
		return SortState{Key: col.Key, Dir: SortDesc}, nil
	default:
		return SortState{}, fmt.Errorf("invalid sort direction %q", dir)
	}
}
