// Package metrics holds the dashboard's synthetic series and the arithmetic that
// perturbs them.
//
// A State bundles four series: the monthly revenue/users points, the
// conversion proportion, the headline metric cards and the last-updated stamp.
// Engine.Tick is a pure step function: it clones the previous State, applies
// bounded random deltas drawn from a Source and returns the result, so callers
// can publish the whole step at once.
//
// Tick rules:
//
//	revenue        += IntRange(-250, 250)          (no floor)
//	users          += IntRange(-100, 100)          (no floor)
//	conversions     = max(100, c + IntRange(-50, 50))
//	nonConversions  = max(100, (c + n) - conversions)
//	metric.value    = max(0, value + IntRange(-50, 50))
//	metric.trend    = random sign, magnitude in [0, 5.0), one decimal, "%"
//
// The proportion total is recomputed from the previous slices each tick, so
// the floors let the sum drift upward over time. The trend label is drawn
// independently of the value change.
package metrics
