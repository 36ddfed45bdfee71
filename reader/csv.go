package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVSource reads a CSV file as a stream of textual rows.
//
// The first record is treated as the header and excluded from the row
// stream. Parsing is flexible: records with more or fewer fields than the
// header are returned as-is rather than rejected.
type CSVSource struct {
	file   *os.File
	csv    *csv.Reader
	header []string
}

// OpenCSV opens a CSV file and reads its header record.
//
// Returns an error if the file doesn't exist or its header record cannot
// be parsed.
func OpenCSV(path string) (*CSVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := csv.NewReader(file)
	// Flexible mode: rows are allowed to have a different field count
	// than the header.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	return &CSVSource{
		file:   file,
		csv:    r,
		header: append([]string(nil), header...),
	}, nil
}

// Header returns the column names from the file's first record.
func (s *CSVSource) Header() []string {
	return s.header
}

// Next returns the next data record.
//
// It returns io.EOF at end of file. A malformed record surfaces as a
// parse error, which aborts the stream.
func (s *CSVSource) Next() ([]string, error) {
	record, err := s.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to parse CSV record: %w", err)
	}
	return record, nil
}

// Close closes the underlying file and releases associated resources.
//
// Should be called when done reading to avoid resource leaks.
func (s *CSVSource) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}
