// ABOUTME: Logrus-backed logger implementation with structured fields
// ABOUTME: Level and format are driven by environment configuration

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using logrus.
type LogrusLogger struct {
	logger *logrus.Logger
}

// Options configures a LogrusLogger.
type Options struct {
	// Level is the minimum level to emit (debug/info/warn/error).
	Level string

	// JSON switches from text to JSON output.
	JSON bool
}

// NewLogrusLogger creates a logger writing to stdout.
func NewLogrusLogger(opts Options) *LogrusLogger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return &LogrusLogger{logger: logger}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}
