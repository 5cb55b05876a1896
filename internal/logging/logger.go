// Package logging builds the zap loggers used by folio. The TUI logs to a
// file under the config directory so log writes never land on the screen;
// plain commands log to stderr.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// NewFileLogger returns a logger writing JSON lines to folio.log inside the
// given directory. When the directory cannot be created the logger silently
// degrades to a nop: logging must never take the UI down.
func NewFileLogger(dir string) *zap.Logger {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, "folio.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// NewConsoleLogger returns a human-readable logger on stderr for the
// non-interactive commands.
func NewConsoleLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
