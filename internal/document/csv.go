package document

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVExtractor handles CSV files. Every cell is its own candidate
// line, so a spreadsheet column of equations works as expected.
type CSVExtractor struct{}

func (e *CSVExtractor) Extract(r io.Reader, filename string) (*Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	var lines []string
	for _, row := range records {
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				lines = append(lines, cell)
			}
		}
	}

	return &Document{
		Title: titleFromFilename(filename),
		Lines: lines,
	}, nil
}
