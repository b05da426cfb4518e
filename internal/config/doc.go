// Package config loads the dashboard's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/insights/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Default Values
//
//   - tick_interval: 10s (synthetic data refresh cadence)
//   - loading_delay: 1.2s (placeholder duration after start)
//   - page_size: 10 rows
//   - export_dir: current directory (data.csv is written here)
//   - log_file: ~/.local/state/insights/insights.log
//   - log_level: info
//   - seed: 0 (derive from the clock)
//   - case_sensitive_search: false
//
// # TOML Format
//
//	tick_interval = "10s"
//	loading_delay = "1.2s"
//	page_size = 10
//	export_dir = "~/Downloads"
//	log_file = "~/.local/state/insights/insights.log"
//	log_level = "debug"
//	seed = 42
//	case_sensitive_search = false
//
// Durations use Go syntax. Tilde expansion is performed on paths.
//
// # Error Handling
//
// Missing files are not an error. Unreadable files, malformed TOML, invalid
// or non-positive durations and non-positive page sizes are returned as
// wrapped errors and abort startup.
package config
