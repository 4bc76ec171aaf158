package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"content-analyzer/internal/domain"

	"github.com/sirupsen/logrus"
)

// AppLogger implements the domain.Logger interface
type AppLogger struct {
	logger *logrus.Logger
}

// NewLogger creates a new logger instance writing to stdout
func NewLogger(levelStr string) domain.Logger {
	return NewLoggerWithOutput(levelStr, os.Stdout)
}

// NewLoggerWithOutput creates a logger writing to out
func NewLoggerWithOutput(levelStr string, out io.Writer) domain.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(parseLogLevel(levelStr))
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AppLogger{logger: l}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.entry(fields).Info(msg)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	l.entry(fields).WithError(err).Error(msg)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.entry(fields).Debug(msg)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.entry(fields).Warn(msg)
}

// entry converts alternating key/value pairs into logrus fields.
// A trailing key without a value is dropped.
func (l *AppLogger) entry(fields []interface{}) *logrus.Entry {
	if len(fields) < 2 {
		return logrus.NewEntry(l.logger)
	}
	f := make(logrus.Fields, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		f[fmt.Sprint(fields[i])] = fields[i+1]
	}
	return l.logger.WithFields(f)
}

// parseLogLevel converts string log level to a logrus level
func parseLogLevel(levelStr string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
