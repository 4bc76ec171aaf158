package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrMissingFile     = errors.New("no file uploaded")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrNoFreePort      = errors.New("no free port found")
)

// ExtractionError reports that a document passed validation but its text
// could not be extracted.
type ExtractionError struct {
	Source SourceType
	Err    error
}

func NewExtractionError(source SourceType, err error) *ExtractionError {
	return &ExtractionError{Source: source, Err: err}
}

func (e *ExtractionError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("extraction failed: %v", e.Err)
	}
	return fmt.Sprintf("%s extraction failed: %v", e.Source, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
