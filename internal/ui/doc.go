// Package ui provides the terminal dashboard built on Bubble Tea.
//
// # Layout
//
// The dashboard view stacks, top to bottom:
//
//   - Header: title, feed state (LIVE or PAUSED), "Last updated" and tick count
//   - Context bar: keys for the current view, active filter and sort, theme
//   - Cards: Revenue, Users, Conversions and Growth with coloured trends
//   - Charts: revenue line (braille canvas), users bars, conversion split
//   - Data table: search box, sortable columns, page footer
//   - Footer: status message or short help, copyright
//
// While the loading gate is closed the cards and charts show spinner
// skeletons. The activity view ("a") replaces the dashboard with the tail of
// the log file.
//
// # Data Flow
//
// The model never mutates dashboard data. A refresh tick (one second by
// default) copies the latest state.Snapshot out of the store; the feed
// goroutine replaces that snapshot on its own cadence. Table state lives in
// a tableview.View owned by the model, and syncTable copies the visible page
// into the bubbles table after every change.
//
// # Keys
//
//	/            focus search (enter keeps, esc clears)
//	1-5          cycle sort on that column
//	p n ← → pgup pgdown
//	             previous / next page
//	x            export the visible page to data.csv
//	space        pause or resume the feed
//	a            activity log
//	T D          cycle theme, toggle dark/light
//	h ?          help overlay
//	q ctrl+c     quit
//
// Theme changes are saved through the prefs package.
package ui
