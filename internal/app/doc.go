// Package app is the composition root for insights.
//
// Run loads the config, opens the log file, builds the shared state.Store,
// the metrics engine and the table view, then either:
//
//   - starts the feed and hands everything to the Bubble Tea UI, closing
//     the feed when the UI exits; or
//   - with Options.Once, applies a fixed number of ticks synchronously and
//     prints a single report to Options.Out.
//
// Config and logging errors are fatal. Preferences degrade to defaults.
package app
