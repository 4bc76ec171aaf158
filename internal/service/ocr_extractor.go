package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"content-analyzer/internal/domain"

	"github.com/otiai10/gosseract/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ocrClient is the subset of *gosseract.Client the extractor drives.
type ocrClient interface {
	SetLanguage(langs ...string) error
	SetImageFromBytes(data []byte) error
	Text() (string, error)
	Close() error
}

// OCRExtractor recognizes text in raster images with Tesseract.
type OCRExtractor struct {
	language      string
	clientFactory func() ocrClient
	logger        domain.Logger
}

var _ domain.Extractor = (*OCRExtractor)(nil)

// NewOCRExtractor creates a Tesseract-backed extractor for the given language model.
func NewOCRExtractor(language string, logger domain.Logger) *OCRExtractor {
	return &OCRExtractor{
		language:      language,
		clientFactory: func() ocrClient { return gosseract.NewClient() },
		logger:        logger,
	}
}

func (e *OCRExtractor) Source() domain.SourceType {
	return domain.SourceOCR
}

// Extract returns the recognized text, which may be empty. Images that cannot
// be decoded are rejected before Tesseract is invoked.
func (e *OCRExtractor) Extract(ctx context.Context, data []byte) (result domain.ExtractionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewExtractionError(domain.SourceOCR, fmt.Errorf("ocr engine panic: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.SourceOCR, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.SourceOCR, fmt.Errorf("unreadable image: %w", err))
	}
	e.logger.Debug("OCR input decoded", "format", format, "width", cfg.Width, "height", cfg.Height, "language", e.language)

	client := e.clientFactory()
	defer func() {
		if cerr := client.Close(); cerr != nil {
			e.logger.Warn("Failed to close OCR client", "error", cerr)
		}
	}()

	if err := client.SetLanguage(e.language); err != nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.SourceOCR, fmt.Errorf("set language: %w", err))
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.SourceOCR, fmt.Errorf("set image: %w", err))
	}
	text, err := client.Text()
	if err != nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.SourceOCR, fmt.Errorf("recognize text: %w", err))
	}

	return domain.ExtractionResult{
		Text:   text,
		Source: domain.SourceOCR,
	}, nil
}
