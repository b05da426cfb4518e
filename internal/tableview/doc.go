// Package tableview implements the users table pipeline: a global text
// filter, a single-column stable sort, fixed-size pagination and CSV export of
// the visible page.
//
// The three stages are pure functions over an immutable []Record and compose
// in a fixed order:
//
//	rows → Filter(query) → Sort(state) → Paginate(index, size) → Page
//
// View keeps the user-controlled inputs (query, sort, page index) and
// recomputes the page on demand. Changing the query or the sort returns to
// the first page; NextPage and PrevPage do nothing at the bounds.
//
// Sorting cycles through three states per column. Text columns start
// ascending, numeric columns start descending, and the third activation
// clears the sort.
//
// Export joins raw values with commas and does not quote. Values that contain
// commas or newlines produce malformed lines; the seed data has none.
package tableview
