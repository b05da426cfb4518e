package tableview

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestView_NavigationIsGuarded(t *testing.T) {
	v := NewView(manyRecords(25), DefaultColumns(), 10, FilterOptions{})

	if v.PrevPage() {
		t.Fatal("PrevPage() on page 0 moved")
	}
	if v.Visible().Index != 0 {
		t.Fatalf("index = %d, want 0", v.Visible().Index)
	}
	if !v.NextPage() || !v.NextPage() {
		t.Fatal("NextPage() should advance twice")
	}
	if v.NextPage() {
		t.Fatal("NextPage() on last page moved")
	}
	p := v.Visible()
	if p.Index != 2 || len(p.Rows) != 5 {
		t.Fatalf("last page = index %d rows %d, want 2/5", p.Index, len(p.Rows))
	}
	if !v.PrevPage() || v.Visible().Index != 1 {
		t.Fatalf("PrevPage() from last = index %d, want 1", v.Visible().Index)
	}
}

func TestView_QueryAndSortResetPage(t *testing.T) {
	v := NewView(manyRecords(25), DefaultColumns(), 10, FilterOptions{})
	v.NextPage()

	v.SetQuery("user")
	if v.Visible().Index != 0 {
		t.Fatalf("index after SetQuery = %d, want 0", v.Visible().Index)
	}

	v.NextPage()
	v.SetQuery("user") // unchanged query keeps the page
	if v.Visible().Index != 1 {
		t.Fatalf("index after same query = %d, want 1", v.Visible().Index)
	}

	v.ToggleSort(KeyName)
	if v.Visible().Index != 0 {
		t.Fatalf("index after ToggleSort = %d, want 0", v.Visible().Index)
	}
}

func TestView_FilterThenSortScenario(t *testing.T) {
	v := NewView(SeedRecords(), DefaultColumns(), 10, FilterOptions{})

	v.SetQuery("li")
	if got := names(v.Visible().Rows); !reflect.DeepEqual(got, []string{"Alice", "Charlie"}) {
		t.Fatalf("visible after li = %v", got)
	}

	v.SetQuery("")
	v.ToggleSortAt(1)
	v.ToggleSortAt(1)
	want := []string{"Eve", "Diana", "Charlie", "Bob", "Alice"}
	if got := names(v.Visible().Rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("visible after Name twice = %v, want %v", got, want)
	}

	v.ToggleSortAt(1)
	if got := names(v.Visible().Rows); got[0] != "Alice" || v.Sort().Active() {
		t.Fatalf("third toggle = %v sort=%+v, want original order unsorted", got, v.Sort())
	}
	v.ToggleSortAt(99) // out of range is ignored
	v.ToggleSort("nope")
	if v.Sort().Active() {
		t.Fatalf("unknown column activated sort: %+v", v.Sort())
	}
}

func TestView_EmptyResult(t *testing.T) {
	v := NewView(SeedRecords(), DefaultColumns(), 10, FilterOptions{})
	v.SetQuery("nobody-here")

	p := v.Visible()
	if !p.Empty() || p.Count != 0 {
		t.Fatalf("empty filter page = %+v", p)
	}
	if v.NextPage() || v.PrevPage() {
		t.Fatal("navigation on empty result moved")
	}
	if got := string(v.ExportVisible()); got != "ID,Name,Email,Revenue ($),Date" {
		t.Fatalf("export of empty page = %q, want header only", got)
	}
}

func TestExport_FieldOrder(t *testing.T) {
	rows := []Record{{ID: 1, Name: "Alice", Email: "alice@example.com", Revenue: 1200, Date: "2025-01-05"}}
	got := strings.Split(string(Export(DefaultColumns(), rows)), "\n")

	want := []string{
		"ID,Name,Email,Revenue ($),Date",
		"1,Alice,alice@example.com,1200,2025-01-05",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Export = %q, want %q", got, want)
	}
}

func TestExport_CurrentPageOnly(t *testing.T) {
	v := NewView(manyRecords(12), DefaultColumns(), 5, FilterOptions{})
	v.ToggleSort(KeyID) // numbers start descending
	v.NextPage()

	lines := strings.Split(string(v.ExportVisible()), "\n")
	if len(lines) != 6 {
		t.Fatalf("export lines = %d, want header + 5", len(lines))
	}
	if !strings.HasPrefix(lines[1], "7,") || !strings.HasPrefix(lines[5], "3,") {
		t.Fatalf("export rows = %q, want ids 7..3", lines[1:])
	}
}

func TestExport_NoQuoting(t *testing.T) {
	rows := []Record{{ID: 9, Name: "Smith, Jane", Email: "j@x", Revenue: 1, Date: "2025-01-01"}}
	got := string(Export(DefaultColumns(), rows))
	if !strings.HasSuffix(got, "9,Smith, Jane,j@x,1,2025-01-01") {
		t.Fatalf("Export = %q, want raw unquoted values", got)
	}
}

func TestWriteExport_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	payload := Export(DefaultColumns(), SeedRecords()[:1])

	path, err := WriteExport(dir, payload)
	if err != nil {
		t.Fatalf("WriteExport returned error: %v", err)
	}
	if filepath.Base(path) != ExportFilename {
		t.Fatalf("path = %q, want base %q", path, ExportFilename)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatalf("file = %q, want %q", data, payload)
	}
}

func TestWriteExport_BadDirFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := WriteExport(filepath.Join(file, "sub"), []byte("x"))
	if err == nil || !strings.Contains(err.Error(), "create export dir") {
		t.Fatalf("WriteExport error = %v, want create export dir failure", err)
	}
}
