// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"content-analyzer/internal/domain"
	apperrors "content-analyzer/pkg/errors"
)

const (
	uploadField = "file"

	// multipartOverhead is the slack allowed on top of the file cap for
	// multipart boundaries and part headers.
	multipartOverhead = 1 << 20

	analyzeFailedMessage   = "Failed to analyze file"
	missingFileMessage     = "No file uploaded"
	unsupportedTypeMessage = "Unsupported file type. Upload a PDF or image."
)

// AnalyzeHandler handles document uploads and returns text plus suggestions
type AnalyzeHandler struct {
	uploads     domain.UploadStore
	analyzer    domain.Analyzer
	maxFileSize int64
	logger      domain.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(uploads domain.UploadStore, analyzer domain.Analyzer, maxFileSize int64, logger domain.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		uploads:     uploads,
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Analyze handles POST /api/analyze with a multipart "file" field
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)

	doc, err := h.receiveUpload(r)
	if err != nil {
		h.writeAnalyzeError(w, r, err)
		return
	}
	defer h.uploads.Release(doc)

	resp, err := h.analyzer.Analyze(r.Context(), doc)
	if err != nil {
		h.writeAnalyzeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// receiveUpload streams the first "file" part into transient storage.
// Other form fields are skipped.
func (h *AnalyzeHandler) receiveUpload(r *http.Request) (*domain.UploadedDocument, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, domain.ErrMissingFile
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrMissingFile
		}
		if err != nil {
			return nil, bodyError(err)
		}
		if part.FormName() != uploadField || part.FileName() == "" {
			_ = part.Close()
			continue
		}

		doc, err := h.uploads.Save(part.FileName(), part)
		_ = part.Close()
		if err != nil {
			return nil, bodyError(err)
		}
		return doc, nil
	}
}

// bodyError maps a body that hit the MaxBytesReader cap onto ErrFileTooLarge.
func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: %v", domain.ErrFileTooLarge, err)
	}
	return err
}

func (h *AnalyzeHandler) writeAnalyzeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := h.toAppError(err)
	requestID, _ := GetRequestIDFromContext(r)
	if apperrors.IsType(appErr, apperrors.ErrorTypeInternal) {
		h.logger.Error("Failed to analyze file", err, "request_id", requestID)
	} else {
		h.logger.Warn("Rejected upload", "status", appErr.StatusCode, "reason", err.Error(), "request_id", requestID)
	}
	writeAppError(w, appErr)
}

func (h *AnalyzeHandler) toAppError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return apperrors.NewValidationError(missingFileMessage)
	case errors.Is(err, domain.ErrFileTooLarge):
		return apperrors.NewTooLargeError(fmt.Sprintf("File too large (max %s)", formatSizeLimit(h.maxFileSize)), err)
	case errors.Is(err, domain.ErrUnsupportedType):
		return apperrors.NewUnsupportedMediaError(unsupportedTypeMessage, err)
	default:
		return apperrors.NewInternalError(analyzeFailedMessage, err)
	}
}

// formatSizeLimit renders whole mebibytes as "15MB" and anything else in bytes.
func formatSizeLimit(n int64) string {
	const mib = 1 << 20
	if n > 0 && n%mib == 0 {
		return fmt.Sprintf("%dMB", n/mib)
	}
	return fmt.Sprintf("%d bytes", n)
}
