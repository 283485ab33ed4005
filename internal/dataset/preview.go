// Package dataset reads the head of a CSV dataset so the user can pick
// feature and target columns before submitting an evaluation.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// DefaultPreviewRows is how many leading data rows a preview shows.
const DefaultPreviewRows = 5

// Preview holds the header and the first rows of a CSV file. Columns keeps
// file order; each row maps column name to the raw cell value.
type Preview struct {
	Columns []string
	Rows    []map[string]string
}

// Read parses the header and up to maxRows leading data rows of a CSV file.
func Read(path string, maxRows int) (*Preview, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Parse(f, maxRows)
}

// Parse reads a preview from an already-open CSV stream.
func Parse(r io.Reader, maxRows int) (*Preview, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	preview := &Preview{Columns: header}
	for len(preview.Rows) < maxRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", len(preview.Rows)+2, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		preview.Rows = append(preview.Rows, row)
	}

	return preview, nil
}

// HasColumn reports whether the preview header contains the given column.
func (p *Preview) HasColumn(name string) bool {
	for _, c := range p.Columns {
		if c == name {
			return true
		}
	}
	return false
}
