package extractor

import (
	"bufio"
	"io"
	"strings"
)

// TextExtractor handles plain text and Markdown files as flat text.
type TextExtractor struct{}

func (p *TextExtractor) Extract(r io.Reader, filename string) (*Source, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var buf strings.Builder
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Source{Title: baseTitle(filename), Text: buf.String()}, nil
}
