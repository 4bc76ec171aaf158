package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"content-analyzer/internal/domain"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// PDFPageSource returns the text items of every page of a PDF, in page order.
type PDFPageSource interface {
	PageItems(data []byte) ([][]string, error)
}

// PDFExtractor produces one line of text per page.
type PDFExtractor struct {
	pages  PDFPageSource
	logger domain.Logger
}

var _ domain.Extractor = (*PDFExtractor)(nil)

// NewPDFExtractor creates a PDF extractor reading pages from source.
func NewPDFExtractor(source PDFPageSource, logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		pages:  source,
		logger: logger,
	}
}

func (e *PDFExtractor) Source() domain.SourceType {
	return domain.SourcePDF
}

// Extract joins each page's text items with a space and the pages with a newline.
// Parser failures, including panics inside the parser, become *domain.ExtractionError.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (result domain.ExtractionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewExtractionError(domain.SourcePDF, fmt.Errorf("pdf parser panic: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.SourcePDF, err)
	}

	pages, err := e.pages.PageItems(data)
	if err != nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.SourcePDF, err)
	}

	lines := make([]string, len(pages))
	for i, items := range pages {
		lines[i] = strings.Join(items, " ")
	}
	e.logger.Debug("PDF text extracted", "pages", len(pages))

	return domain.ExtractionResult{
		Text:   strings.Join(lines, "\n"),
		Source: domain.SourcePDF,
	}, nil
}

// NativePDFPages reads page text with the pure-Go ledongthuc/pdf parser. Every
// show-text operator on a page yields one item.
type NativePDFPages struct{}

func NewNativePDFPages() *NativePDFPages {
	return &NativePDFPages{}
}

func (NativePDFPages) PageItems(data []byte) ([][]string, error) {
	if len(data) == 0 {
		return nil, errors.New("empty PDF content")
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := r.NumPage()
	pages := make([][]string, numPages)
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		items, err := pageTextItems(page)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		pages[i-1] = items
	}
	return pages, nil
}

// tjWordGap is the TJ kerning, in thousandths of an em, at or beyond which the
// adjustment separates two items rather than tightening glyphs.
const tjWordGap = 250

// pageTextItems walks the page's content streams and decodes the operand of
// every Tj, ', " and TJ operator with the current font's encoding.
func pageTextItems(page pdf.Page) (items []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			items, err = nil, fmt.Errorf("content stream: %v", r)
		}
	}()

	encodings := make(map[string]pdf.TextEncoding)
	for _, name := range page.Fonts() {
		encodings[name] = page.Font(name).Encoder()
	}

	var enc pdf.TextEncoding
	var item strings.Builder
	show := func(raw string) {
		if enc == nil {
			item.WriteString(raw)
			return
		}
		item.WriteString(enc.Decode(raw))
	}
	flush := func() {
		if item.Len() > 0 {
			items = append(items, item.String())
			item.Reset()
		}
	}

	do := func(stk *pdf.Stack, op string) {
		args := make([]pdf.Value, stk.Len())
		for i := len(args) - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		switch op {
		case "Tf":
			if len(args) > 0 {
				enc = encodings[args[0].Name()]
			}
		case "Tj", "'", "\"":
			if len(args) > 0 {
				show(args[len(args)-1].RawString())
				flush()
			}
		case "TJ":
			if len(args) == 0 {
				return
			}
			arr := args[0]
			for i := 0; i < arr.Len(); i++ {
				switch x := arr.Index(i); x.Kind() {
				case pdf.String:
					show(x.RawString())
				case pdf.Integer, pdf.Real:
					if x.Float64() <= -tjWordGap {
						flush()
					}
				}
			}
			flush()
		}
	}

	for _, strm := range contentStreams(page.V.Key("Contents")) {
		pdf.Interpret(strm, do)
	}
	return items, nil
}

// contentStreams returns the streams behind a page's /Contents entry, which
// may be absent, a single stream or an array of streams.
func contentStreams(v pdf.Value) []pdf.Value {
	switch v.Kind() {
	case pdf.Stream:
		return []pdf.Value{v}
	case pdf.Array:
		streams := make([]pdf.Value, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if s := v.Index(i); s.Kind() == pdf.Stream {
				streams = append(streams, s)
			}
		}
		return streams
	}
	return nil
}

// MuPDFPages reads page text through MuPDF (go-fitz). MuPDF reports text by
// line, so each non-blank line is one item.
type MuPDFPages struct{}

func NewMuPDFPages() *MuPDFPages {
	return &MuPDFPages{}
}

func (MuPDFPages) PageItems(data []byte) ([][]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([][]string, numPages)
	for i := 0; i < numPages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", i+1, err)
		}
		pages[i] = lineItems(text)
	}
	return pages, nil
}

// lineItems splits page text into its trimmed, non-blank lines.
func lineItems(pageText string) []string {
	pageText = strings.ReplaceAll(pageText, "\r\n", "\n")
	pageText = strings.ReplaceAll(pageText, "\r", "\n")

	var items []string
	for _, line := range strings.Split(pageText, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items
}

// NewPDFPageSource selects a page source by engine name ("native" or "mupdf").
func NewPDFPageSource(engine string) (PDFPageSource, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", "native":
		return NewNativePDFPages(), nil
	case "mupdf", "fitz":
		return NewMuPDFPages(), nil
	default:
		return nil, fmt.Errorf("unknown PDF engine %q", engine)
	}
}
