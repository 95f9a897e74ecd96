package extractor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/pdfmd/internal/markdown"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor handles PDF files. It prefers positioned fragments (which
// let the assembler rebuild lines from glyph geometry), then falls back to
// the library's plain-text extraction and finally to pdftotext if enabled.
type PDFExtractor struct {
	FallbackPdftotext bool
}

func (p *PDFExtractor) Extract(r io.Reader, filename string) (*Source, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "pdfmd-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	src := &Source{Title: baseTitle(filename)}

	pages, err := extractPositioned(tmpPath)
	if err == nil && len(pages) > 0 {
		src.Pages = pages
		return src, nil
	}

	text, err := extractPlainText(tmpPath)
	if err != nil && p.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	src.Text = text
	return src, nil
}

// extractPositioned reads per-glyph-run content from every page.
func extractPositioned(path string) ([][]markdown.Fragment, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages [][]markdown.Fragment
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		frags := make([]markdown.Fragment, 0, len(content.Text))
		for _, t := range content.Text {
			if t.S == "" {
				continue
			}
			frags = append(frags, markdown.Fragment{
				Text:   t.S,
				X:      t.X,
				Y:      t.Y,
				Width:  t.W,
				Height: t.FontSize,
			})
		}
		if len(frags) > 0 {
			pages = append(pages, frags)
		}
	}
	return pages, nil
}

func extractPlainText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
