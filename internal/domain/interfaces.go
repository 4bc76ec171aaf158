package domain

import (
	"context"
	"io"
	"time"
)

// Extractor turns the raw bytes of one document format into text.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (ExtractionResult, error)
	Source() SourceType
}

// UploadStore owns the transient storage of uploaded files.
type UploadStore interface {
	// Save streams src into a new transient entry. On any error no entry is left behind.
	Save(filename string, src io.Reader) (*UploadedDocument, error)
	// Release removes the entry. Failures are logged, never returned.
	Release(doc *UploadedDocument)
}

// Analyzer runs the extraction and suggestion pipeline over a stored upload.
type Analyzer interface {
	Analyze(ctx context.Context, doc *UploadedDocument) (*AnalysisResponse, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetHost() string
	GetPort() int
	GetPortAttempts() int
	GetUploadPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetOCRLanguage() string
	GetPDFEngine() string
	GetExtractTimeout() time.Duration
	GetAllowedOrigins() []string
	GetFrontendDir() string
}
