package extractor

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVExtractor renders each record as a run of "header: value" lines so
// the table pass reassembles records into two-column Markdown tables.
type CSVExtractor struct{}

func (p *CSVExtractor) Extract(r io.Reader, filename string) (*Source, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	src := &Source{Title: baseTitle(filename)}
	if len(records) < 2 {
		return src, nil
	}

	// First row is headers.
	headers := records[0]

	var buf strings.Builder
	for _, row := range records[1:] {
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		for j, cell := range row {
			if j > 0 {
				buf.WriteString("\n")
			}
			if j < len(headers) {
				buf.WriteString(headers[j] + ": " + cell)
			} else {
				buf.WriteString(fmt.Sprintf("Field %d: %s", j+1, cell))
			}
		}
	}

	src.Text = buf.String()
	return src, nil
}
