package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"content-analyzer/internal/domain"
)

// AnalysisService runs dispatch, extraction, suggestions and response assembly
// for one stored upload.
type AnalysisService struct {
	extractors map[Format]domain.Extractor
	timeout    time.Duration
	logger     domain.Logger
}

var _ domain.Analyzer = (*AnalysisService)(nil)

// NewAnalysisService wires the PDF and image extractors. timeout bounds each
// extraction call; zero disables it.
func NewAnalysisService(pdfExtractor, imageExtractor domain.Extractor, timeout time.Duration, logger domain.Logger) *AnalysisService {
	return &AnalysisService{
		extractors: map[Format]domain.Extractor{
			FormatPDF:   pdfExtractor,
			FormatImage: imageExtractor,
		},
		timeout: timeout,
		logger:  logger,
	}
}

// Analyze extracts the document's text and builds the response. Unsupported
// extensions return domain.ErrUnsupportedType before any file access.
func (s *AnalysisService) Analyze(ctx context.Context, doc *domain.UploadedDocument) (*domain.AnalysisResponse, error) {
	format := ClassifyFile(doc.Filename)
	extractor, ok := s.extractors[format]
	if !ok || extractor == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, doc.Extension)
	}

	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return nil, domain.NewExtractionError(extractor.Source(), fmt.Errorf("read upload: %w", err))
	}

	start := time.Now()
	result, err := runWithTimeout(ctx, s.timeout, func(ctx context.Context) (domain.ExtractionResult, error) {
		return extractor.Extract(ctx, data)
	})
	if err != nil {
		var extErr *domain.ExtractionError
		if !errors.As(err, &extErr) {
			err = domain.NewExtractionError(extractor.Source(), err)
		}
		return nil, err
	}
	s.logger.Info("Document extracted",
		"filename", doc.Filename,
		"format", format.String(),
		"source", result.Source,
		"bytes", doc.Size,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return BuildResponse(doc, result, Suggest(result.Text)), nil
}
