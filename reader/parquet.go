package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// batchSize is the number of rows decoded from a parquet file per read.
const batchSize = 256

// ParquetSource reads a parquet file as a stream of textual rows.
//
// The header is derived from the file's embedded schema without reading
// any data. Rows are decoded in batches and decomposed one at a time,
// with every cell coerced to text (see cellText).
//
// It maintains both an OS file handle and a parquet row reader to enable
// proper resource cleanup.
type ParquetSource struct {
	file    *os.File
	rows    *parquet.Reader
	header  []string
	columns []columnInfo
	batch   []parquet.Row
	pos     int
	n       int
	eof     bool
}

// OpenParquet opens a parquet file and derives its header from the
// embedded schema.
//
// Returns an error if the file doesn't exist or is not a valid parquet
// file.
func OpenParquet(path string) (*ParquetSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	columns := leafColumns(pqFile.Schema())
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.name
	}

	return &ParquetSource{
		file:    file,
		rows:    parquet.NewReader(pqFile),
		header:  header,
		columns: columns,
		batch:   make([]parquet.Row, batchSize),
	}, nil
}

// Header returns the column names from the file's schema, one per leaf
// column in column-index order.
func (s *ParquetSource) Header() []string {
	return s.header
}

// Next returns the next row with every cell coerced to text.
//
// It returns io.EOF once all row groups are exhausted. A corrupt batch
// surfaces as a read error, which aborts the stream.
func (s *ParquetSource) Next() ([]string, error) {
	if s.pos >= s.n {
		if s.eof {
			return nil, io.EOF
		}
		n, err := s.rows.ReadRows(s.batch)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to read row batch: %w", err)
			}
			s.eof = true
		}
		if n == 0 {
			return nil, io.EOF
		}
		s.pos = 0
		s.n = n
	}

	row := s.batch[s.pos]
	s.pos++
	return s.rowText(row), nil
}

// rowText decomposes one decoded parquet row into textual cells aligned
// with the header.
//
// Values map to cells by their leaf column index. Repeated columns keep
// only their first value; a column with no value in the row renders as
// "NULL".
func (s *ParquetSource) rowText(row parquet.Row) []string {
	cells := make([]string, len(s.columns))
	seen := make([]bool, len(s.columns))

	for _, v := range row {
		ci := v.Column()
		if ci < 0 || ci >= len(cells) || seen[ci] {
			continue
		}
		seen[ci] = true
		cells[ci] = cellText(v, s.columns[ci])
	}

	for i := range cells {
		if !seen[i] {
			cells[i] = "NULL"
		}
	}

	return cells
}

// Close closes the parquet source and releases associated resources.
//
// Should be called when done reading to avoid resource leaks.
func (s *ParquetSource) Close() error {
	if err := s.rows.Close(); err != nil {
		_ = s.file.Close()
		return err
	}
	return s.file.Close()
}
