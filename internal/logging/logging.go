// Package logging builds the dashboard's structured logger. Output goes to a
// file because the terminal belongs to the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionField tags every line written during one process run.
const SessionField = "session"

// Options configure Setup.
type Options struct {
	// File is the log destination. Empty discards output.
	File  string
	Level string
}

// Setup opens the log file and returns an entry carrying a fresh session id.
// The returned closer releases the file and is never nil.
func Setup(opts Options) (*logrus.Entry, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	levelName := strings.TrimSpace(opts.Level)
	if levelName == "" {
		levelName = "info"
	}
	level, levelErr := logrus.ParseLevel(levelName)
	if levelErr != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(file)
		closer = file
	} else {
		logger.SetOutput(io.Discard)
	}

	entry := logger.WithField(SessionField, uuid.NewString())
	if levelErr != nil {
		entry.WithField("log_level", opts.Level).Warn("invalid log level, using info")
	}
	return entry, closer, nil
}

// Discard returns an entry that drops everything, for tests and callers
// without a configured logger.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
