package storage

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"

	"careeriq/models"
)

// CSVWriter writes canonical listings to a CSV file with a fixed column selection.
// It is safe for concurrent use.
type CSVWriter struct {
	mu      sync.Mutex
	file    *os.File
	writer  *csv.Writer
	columns []models.ExportColumn
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string, columns []models.ExportColumn) (*CSVWriter, error) {
	if len(columns) == 0 {
		columns = models.DefaultExportColumns
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "csv: create output dir")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "csv: create file %q", path)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header(columns)); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "csv: write header")
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w, columns: columns}, nil
}

// Write appends one row per listing.
func (c *CSVWriter) Write(_ context.Context, listings []models.CanonicalListing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := writeRows(c.writer, listings, c.columns); err != nil {
		return err
	}
	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

// EncodeCSV serializes listings with a header row and no index column.
func EncodeCSV(w io.Writer, listings []models.CanonicalListing, columns []models.ExportColumn) error {
	if len(columns) == 0 {
		columns = models.DefaultExportColumns
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header(columns)); err != nil {
		return errors.Wrap(err, "csv: write header")
	}
	if err := writeRows(cw, listings, columns); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func header(columns []models.ExportColumn) []string {
	h := make([]string, len(columns))
	for i, col := range columns {
		h[i] = string(col)
	}
	return h
}

func writeRows(w *csv.Writer, listings []models.CanonicalListing, columns []models.ExportColumn) error {
	row := make([]string, len(columns))
	for _, l := range listings {
		for i, col := range columns {
			row[i] = col.Value(l)
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "csv: write row")
		}
	}
	return nil
}
