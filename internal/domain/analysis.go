package domain

// SourceType tags which extractor produced a document's text.
type SourceType string

const (
	SourcePDF SourceType = "pdf"
	SourceOCR SourceType = "ocr"
)

// PreviewLimit caps the preview length in characters.
const PreviewLimit = 1200

// UploadedDocument is a file received from a client and held in transient
// storage for the duration of one request.
type UploadedDocument struct {
	Filename  string
	Size      int64
	Extension string
	Path      string
}

// ExtractionResult is the text pulled out of a document by exactly one extractor.
type ExtractionResult struct {
	Text   string
	Source SourceType
}

// AnalysisResponse is the JSON body returned by POST /api/analyze.
type AnalysisResponse struct {
	Filename    string     `json:"filename"`
	Size        int64      `json:"size"`
	Type        SourceType `json:"type"`
	Chars       int        `json:"chars"`
	Preview     string     `json:"preview"`
	FullText    string     `json:"fullText"`
	Suggestions []string   `json:"suggestions"`
}

// HealthResponse is the JSON body returned by GET /api/health.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Version string `json:"version"`
}
