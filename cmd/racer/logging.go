package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/storage"
)

// newLogger opens the log file. The terminal belongs to the game, so when
// the file cannot be opened logs are discarded rather than printed.
func newLogger(path string, debug bool) (*log.Logger, func()) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		if f, err := openLogFile(path); err == nil {
			out = f
			closeFn = func() { f.Close() } //nolint:errcheck // Nothing useful to do on close failure
		}
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer",
		Level:           level,
	})
	return logger, closeFn
}

func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
