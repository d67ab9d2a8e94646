// Package sink provides Dataset Sink implementations that persist the final
// facility records.
package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rbeggs/dcmap-crawler/internal/crawler"
)

// csvHeader is the fixed column order of the tabular output.
var csvHeader = []string{"name", "url", "address", "city", "state", "postal_code"}

// CSVSink writes facility records to a CSV file with a header row.
type CSVSink struct {
	path string
}

// NewCSVSink returns a sink writing to the given file path. Parent
// directories are created on Write.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Write persists the records, one row per record, fields in header order.
func (s *CSVSink) Write(ctx context.Context, records []crawler.Facility) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context canceled: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create output dir for %s: %w", s.path, err)
	}
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", s.path, err)
	}
	defer file.Close() //nolint:errcheck // double close on the error path is harmless

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.Name, rec.URL, rec.Address, rec.City, rec.State, rec.PostalCode}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row for %q: %w", rec.Name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output file %s: %w", s.path, err)
	}
	return nil
}
