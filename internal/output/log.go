// Package output provides terminal output utilities: the leveled logger used by
// every command and updater, styles, file trees and the progress spinner.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// writer is the destination for all log output.
var writer io.Writer = os.Stderr

func init() {
	logger = newLogger(writer, LogConfig{})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps controls whether timestamps are shown. Nil means the default (true).
	Timestamps *bool
}

func (c LogConfig) timestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return true
}

func newLogger(w io.Writer, cfg LogConfig) *log.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.timestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	logger = newLogger(writer, cfg)
}

// SetWriter redirects log output, returning the previous destination.
func SetWriter(w io.Writer) io.Writer {
	prev := writer
	writer = w
	logger.SetOutput(w)
	return prev
}

// ScopedLogger returns a logger that prefixes every line with scope.
// It inherits the level of the global logger at the time of the call.
func ScopedLogger(scope string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render(scope))
}

// Debug logs a debug message. Shown only with --verbose.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
