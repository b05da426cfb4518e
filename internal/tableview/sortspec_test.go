package tableview

import (
	"strings"
	"testing"
)

func TestParseSort(t *testing.T) {
	cols := DefaultColumns()
	cases := []struct {
		spec string
		want SortState
	}{
		{"", SortState{}},
		{"name", SortState{Key: KeyName, Dir: SortAsc}},
		{"revenue", SortState{Key: KeyRevenue, Dir: SortDesc}},
		{"Name:desc", SortState{Key: KeyName, Dir: SortDesc}},
		{" id : asc ", SortState{Key: KeyID, Dir: SortAsc}},
	}
	for _, tc := range cases {
		got, err := ParseSort(cols, tc.spec)
		if err != nil {
			t.Fatalf("ParseSort(%q) returned error: %v", tc.spec, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSort(%q) = %+v, want %+v", tc.spec, got, tc.want)
		}
	}
}

func TestParseSort_Invalid(t *testing.T) {
	cols := DefaultColumns()
	for spec, want := range map[string]string{
		"salary":        "unknown sort column",
		"name:sideways": "invalid sort direction",
	} {
		_, err := ParseSort(cols, spec)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("ParseSort(%q) error = %v, want %q", spec, err, want)
		}
	}
}

func TestView_SetSort(t *testing.T) {
	v := NewView(SeedRecords(), DefaultColumns(), 2, FilterOptions{})
	v.NextPage()

	v.SetSort(SortState{Key: KeyRevenue, Dir: SortAsc})
	p := v.Visible()
	if p.Index != 0 || p.Rows[0].Name != "Eve" {
		t.Fatalf("after SetSort page %d first %s, want 0/Eve", p.Index, p.Rows[0].Name)
	}

	v.SetSort(SortState{Key: "missing", Dir: SortAsc})
	if v.Sort().Active() {
		t.Fatalf("unknown key activated sort: %+v", v.Sort())
	}
}
