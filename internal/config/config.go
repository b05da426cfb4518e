package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the dashboard's tunables.
type Config struct {
	TickInterval        time.Duration
	LoadingDelay        time.Duration
	PageSize            int
	ExportDir           string
	LogFile             string
	LogLevel            string
	Seed                uint64
	CaseSensitiveSearch bool
}

const (
	defaultConfigPath   = "~/.config/insights/config.toml"
	defaultLogFile      = "~/.local/state/insights/insights.log"
	defaultTickInterval = 10 * time.Second
	defaultLoadingDelay = 1200 * time.Millisecond
	defaultPageSize     = 10
	defaultExportDir    = "."
	defaultLogLevel     = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		TickInterval: defaultTickInterval,
		LoadingDelay: defaultLoadingDelay,
		PageSize:     defaultPageSize,
		ExportDir:    mustExpand(defaultExportDir),
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		TickInterval        string `toml:"tick_interval"`
		LoadingDelay        string `toml:"loading_delay"`
		PageSize            *int   `toml:"page_size"`
		ExportDir           string `toml:"export_dir"`
		LogFile             string `toml:"log_file"`
		LogLevel            string `toml:"log_level"`
		Seed                uint64 `toml:"seed"`
		CaseSensitiveSearch bool   `toml:"case_sensitive_search"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.TickInterval, err = parseDuration("tick_interval", raw.TickInterval, defaultTickInterval); err != nil {
		return Config{}, err
	}
	if cfg.LoadingDelay, err = parseDuration("loading_delay", raw.LoadingDelay, defaultLoadingDelay); err != nil {
		return Config{}, err
	}

	if raw.PageSize != nil {
		if *raw.PageSize <= 0 {
			return Config{}, fmt.Errorf("page_size must be > 0, got %d", *raw.PageSize)
		}
		cfg.PageSize = *raw.PageSize
	}

	if dir := strings.TrimSpace(raw.ExportDir); dir != "" {
		cfg.ExportDir = mustExpand(dir)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	cfg.Seed = raw.Seed
	cfg.CaseSensitiveSearch = raw.CaseSensitiveSearch

	return cfg, nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, value)
	}
	return d, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
