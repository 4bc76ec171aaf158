package service

import (
	"unicode/utf8"

	"content-analyzer/internal/domain"
)

// BuildResponse assembles the analysis result for one document.
func BuildResponse(doc *domain.UploadedDocument, result domain.ExtractionResult, suggestions []string) *domain.AnalysisResponse {
	if suggestions == nil {
		suggestions = []string{}
	}
	return &domain.AnalysisResponse{
		Filename:    doc.Filename,
		Size:        doc.Size,
		Type:        result.Source,
		Chars:       utf8.RuneCountInString(result.Text),
		Preview:     Preview(result.Text, domain.PreviewLimit),
		FullText:    result.Text,
		Suggestions: suggestions,
	}
}

// Preview returns the first limit characters of text.
func Preview(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	n := 0
	for i := range text {
		if n == limit {
			return text[:i]
		}
		n++
	}
	return text
}
