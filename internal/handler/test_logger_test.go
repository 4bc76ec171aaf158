package handler

import (
	"sync"

	"content-analyzer/internal/domain"
)

// Mock logger used by handler package tests.
type MockHandlerLogger struct {
	mu     sync.Mutex
	errors []string
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{}
}

var _ domain.Logger = (*MockHandlerLogger)(nil)

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})  {}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{}) {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})  {}

func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func (l *MockHandlerLogger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}
