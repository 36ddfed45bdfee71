package reader

import (
	"fmt"
	"path/filepath"
)

// Source is the common contract implemented by all tabular file formats.
//
// A Source yields its header once at open time and then a lazy stream of
// rows, each an ordered slice of textual cell values aligned with the
// header's column order. Rows may be shorter or longer than the header for
// formats that allow it.
type Source interface {
	// Header returns the ordered column names for the file.
	Header() []string

	// Next returns the next row of textual cell values.
	// It returns io.EOF once the row stream is exhausted.
	Next() ([]string, error)

	// Close releases the underlying file handle.
	Close() error
}

// Open opens path with the adapter matching its file extension.
//
// Returns an error if the file cannot be opened, its header cannot be
// determined, or the extension is not a supported table format.
func Open(path string) (Source, error) {
	switch filepath.Ext(path) {
	case ".csv":
		return OpenCSV(path)
	case ".parquet", ".pq", ".parq":
		return OpenParquet(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

// IsSupported reports whether path has an extension Open can handle.
func IsSupported(path string) bool {
	switch filepath.Ext(path) {
	case ".csv", ".parquet", ".pq", ".parq":
		return true
	default:
		return false
	}
}
