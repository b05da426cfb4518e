package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which cards and charts stack.
	LayoutCompactWidth = 100

	// LayoutMinChartWidth is the narrowest usable chart panel.
	LayoutMinChartWidth = 24
)

// Fixed heights of the dashboard sections, borders included.
const (
	headerHeight = 2
	chartHeight  = 12
	footerHeight = 3
)

// Activity log limits.
const (
	// ActivityLineLimit is the number of log lines read for the activity view.
	ActivityLineLimit = 500
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)
