package service

import (
	"path/filepath"
	"strings"
)

// Format is the extraction path a file is routed to.
type Format int

const (
	FormatUnsupported Format = iota
	FormatPDF
	FormatImage
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatImage:
		return "image"
	default:
		return "unsupported"
	}
}

var formatsByExtension = map[string]Format{
	".pdf":  FormatPDF,
	".png":  FormatImage,
	".jpg":  FormatImage,
	".jpeg": FormatImage,
	".bmp":  FormatImage,
	".tiff": FormatImage,
	".webp": FormatImage,
}

// NormalizeExtension returns the lower-cased extension of name, including the
// dot. A single leading dot marks a hidden file, not an extension, so ".pdf"
// has none. Whitespace is kept: "a.PDF " has the extension ".pdf ".
func NormalizeExtension(name string) string {
	base := strings.TrimPrefix(filepath.Base(name), ".")
	return strings.ToLower(filepath.Ext(base))
}

// ClassifyFile maps a filename to its extraction path by extension.
// Every name yields exactly one Format; unknown extensions are FormatUnsupported.
func ClassifyFile(name string) Format {
	return formatsByExtension[NormalizeExtension(name)]
}
