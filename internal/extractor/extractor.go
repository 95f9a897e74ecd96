package extractor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/pdfmd/internal/markdown"
)

// Source is the extractor output consumed by the conversion pipeline:
// either positioned fragments per page, or flat text when the source
// format carries no position information.
type Source struct {
	Title string
	Pages [][]markdown.Fragment // nil for flat-text sources
	Text  string
}

// Positioned reports whether the source carries fragment positions.
func (s *Source) Positioned() bool {
	return s.Pages != nil
}

// Extractor turns raw document bytes into a Source.
type Extractor interface {
	Extract(r io.Reader, filename string) (*Source, error)
}

// SupportedExtensions lists file extensions this service can convert.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".csv":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".csv":
		return &CSVExtractor{}, nil
	case ".txt", ".md", ".markdown":
		return &TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// baseTitle strips the extension from a filename for use as a fallback
// document title.
func baseTitle(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
