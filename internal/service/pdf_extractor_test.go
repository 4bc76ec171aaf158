package service

import (
	"context"
	"errors"
	"testing"

	"content-analyzer/internal/domain"
)

type fakePageSource struct {
	pages [][]string
	err   error
	panic bool
}

func (f *fakePageSource) PageItems(data []byte) ([][]string, error) {
	if f.panic {
		panic("unexpected xref")
	}
	return f.pages, f.err
}

func TestPDFExtractor_TwoPages(t *testing.T) {
	e := NewPDFExtractor(&fakePageSource{pages: [][]string{{"Hello"}, {"World"}}}, NewMockLogger())

	res, err := e.Extract(context.Background(), []byte("%PDF"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Hello\nWorld" {
		t.Fatalf("expected %q, got %q", "Hello\nWorld", res.Text)
	}
	if res.Source != domain.SourcePDF {
		t.Fatalf("expected source pdf, got %s", res.Source)
	}
}

func TestPDFExtractor_ItemsJoinedWithSpace(t *testing.T) {
	pages := [][]string{{"Quarterly update", "Revenue up", "12%"}, nil, {"Last page"}}
	e := NewPDFExtractor(&fakePageSource{pages: pages}, NewMockLogger())

	res, err := e.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Quarterly update Revenue up 12%\n\nLast page"
	if res.Text != want {
		t.Fatalf("expected %q, got %q", want, res.Text)
	}
}

func TestLineItems(t *testing.T) {
	got := lineItems("Quarterly update\r\nRevenue up\n\n  12%  \r")
	want := []string{"Quarterly update", "Revenue up", "12%"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %q", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if items := lineItems(" \n\t\n"); len(items) != 0 {
		t.Fatalf("expected no items for blank page, got %q", items)
	}
}

func TestPDFExtractor_NoPages(t *testing.T) {
	e := NewPDFExtractor(&fakePageSource{}, NewMockLogger())

	res, err := e.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "" {
		t.Fatalf("expected empty text, got %q", res.Text)
	}
}

func TestPDFExtractor_SourceError(t *testing.T) {
	cause := errors.New("malformed xref table")
	e := NewPDFExtractor(&fakePageSource{err: cause}, NewMockLogger())

	_, err := e.Extract(context.Background(), nil)
	var extErr *domain.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if extErr.Source != domain.SourcePDF || !errors.Is(err, cause) {
		t.Fatalf("unexpected extraction error: %v", extErr)
	}
}

func TestPDFExtractor_ParserPanic(t *testing.T) {
	e := NewPDFExtractor(&fakePageSource{panic: true}, NewMockLogger())

	_, err := e.Extract(context.Background(), nil)
	var extErr *domain.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected ExtractionError from panic, got %v", err)
	}
}

func TestPDFExtractor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := NewPDFExtractor(&fakePageSource{pages: [][]string{{"x"}}}, NewMockLogger())

	if _, err := e.Extract(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNativePDFPages_Corrupt(t *testing.T) {
	e := NewPDFExtractor(NewNativePDFPages(), NewMockLogger())

	for _, data := range [][]byte{nil, []byte("this is not a pdf at all")} {
		_, err := e.Extract(context.Background(), data)
		var extErr *domain.ExtractionError
		if !errors.As(err, &extErr) {
			t.Fatalf("expected ExtractionError for %q, got %v", data, err)
		}
	}
}

func TestNewPDFPageSource(t *testing.T) {
	if src, err := NewPDFPageSource(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if _, ok := src.(*NativePDFPages); !ok {
		t.Fatalf("expected native source by default, got %T", src)
	}
	if src, err := NewPDFPageSource("MuPDF"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if _, ok := src.(*MuPDFPages); !ok {
		t.Fatalf("expected mupdf source, got %T", src)
	}
	if _, err := NewPDFPageSource("pdfium"); err == nil {
		t.Fatalf("expected error for unknown engine")
	}
}
