package tableview

// View holds the user-controlled table state and derives the visible page
// through Filter, Sort and Paginate. The zero value is not usable; call
// NewView.
type View struct {
	rows     []Record
	cols     []Column
	opts     FilterOptions
	query    string
	sort     SortState
	page     int
	pageSize int
}

// NewView returns a view over rows with the given schema.
func NewView(rows []Record, cols []Column, pageSize int, opts FilterOptions) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{rows: rows, cols: cols, opts: opts, pageSize: pageSize}
}

// Columns returns the schema in display order.
func (v *View) Columns() []Column {
	return v.cols
}

// Query returns the current global filter.
func (v *View) Query() string {
	return v.query
}

// SetQuery replaces the global filter. A changed query returns to the first
// page.
func (v *View) SetQuery(q string) {
	if q == v.query {
		return
	}
	v.query = q
	v.page = 0
}

// Sort returns the active sort.
func (v *View) Sort() SortState {
	return v.sort
}

// ToggleSort advances the sort cycle of the column with key and returns to
// the first page. Unknown keys are ignored.
func (v *View) ToggleSort(key string) {
	col, ok := ColumnByKey(v.cols, key)
	if !ok {
		return
	}
	v.sort = v.sort.Toggle(col)
	v.page = 0
}

// SetSort replaces the sort outright and returns to the first page. A sort
// on an unknown column clears sorting.
func (v *View) SetSort(s SortState) {
	if _, ok := ColumnByKey(v.cols, s.Key); !ok || s.Dir == SortNone {
		s = SortState{}
	}
	v.sort = s
	v.page = 0
}

// ToggleSortAt toggles the column at position i.
func (v *View) ToggleSortAt(i int) {
	if i < 0 || i >= len(v.cols) {
		return
	}
	v.ToggleSort(v.cols[i].Key)
}

// Rows returns the filtered and sorted rows across all pages.
func (v *View) Rows() []Record {
	return Sort(Filter(v.rows, v.cols, v.query, v.opts), v.cols, v.sort)
}

// Visible returns the current page.
func (v *View) Visible() Page {
	p := Paginate(v.Rows(), v.page, v.pageSize)
	v.page = p.Index
	return p
}

// NextPage advances one page. It is a no-op on the last page.
func (v *View) NextPage() bool {
	p := v.Visible()
	if !p.HasNext() {
		return false
	}
	v.page++
	return true
}

// PrevPage goes back one page. It is a no-op on the first page.
func (v *View) PrevPage() bool {
	p := v.Visible()
	if !p.HasPrev() {
		return false
	}
	v.page--
	return true
}

// ExportVisible renders the current page as CSV text.
func (v *View) ExportVisible() []byte {
	return Export(v.cols, v.Visible().Rows)
}
