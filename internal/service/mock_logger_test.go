package service

import (
	"fmt"
	"sync"

	"content-analyzer/internal/domain"
)

// MockLogger records warnings and errors so tests can assert on them.
type MockLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

var _ domain.Logger = (*MockLogger)(nil)

func (l *MockLogger) Info(msg string, fields ...interface{})  {}
func (l *MockLogger) Debug(msg string, fields ...interface{}) {}

func (l *MockLogger) Warn(msg string, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf("%s: %v", msg, err))
}

func (l *MockLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warnings...)
}
