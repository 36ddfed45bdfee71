package grep

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/vegasq/tgrep/output"
	"github.com/vegasq/tgrep/reader"
)

// Options control how files are searched and how matches are reported.
type Options struct {
	// Columns restricts matching and display to the named columns.
	// nil means all columns.
	Columns []string

	// Invert reports rows that do NOT match the pattern.
	Invert bool

	// OnlyMatching prints just the matching cells (with their column
	// names) instead of whole rows.
	OnlyMatching bool

	// Count reports the number of matching rows per file instead of the
	// rows themselves.
	Count bool

	// MaxCount stops searching a file once this many rows have matched.
	// Zero means unlimited.
	MaxCount int

	// WithHeaders prints the file's column names before its matches.
	WithHeaders bool

	// Table buffers a file's matches and renders them as an aligned
	// table instead of one line per row. Count and OnlyMatching take
	// precedence over Table.
	Table bool
}

// Engine searches tabular files for rows matching a compiled pattern.
//
// An Engine is configured once and may search any number of files; each
// file's state (header, resolved columns, match count, buffered rows) is
// independent and discarded when its scan finishes.
type Engine struct {
	pattern *regexp.Regexp
	opts    Options
	printer *output.Printer
	warn    io.Writer
}

// New creates an engine for the given compiled pattern. Matches are
// reported through printer; column-resolution warnings go to stderr.
func New(pattern *regexp.Regexp, opts Options, printer *output.Printer) *Engine {
	return &Engine{
		pattern: pattern,
		opts:    opts,
		printer: printer,
		warn:    os.Stderr,
	}
}

// SetWarnOutput redirects column-resolution warnings.
func (e *Engine) SetWarnOutput(w io.Writer) {
	e.warn = w
}

// SearchFile scans one file and reports its matches through the printer.
//
// It returns the number of matching rows. The file header and separator
// are emitted only when at least one row matched; a file with zero
// matches produces no output at all. An error means the file could not
// be opened or its row stream failed mid-scan; matches reported before
// the failure have already been printed.
func (e *Engine) SearchFile(path string) (int, error) {
	src, err := reader.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	defer func() { _ = src.Close() }()

	header := src.Header()
	columns := resolveColumns(header, e.opts.Columns, e.warn)

	// Buffering is decided up front: only the table mode needs the full
	// row set (to size its columns), every other mode streams.
	buffered := e.opts.Table && !e.opts.Count && !e.opts.OnlyMatching

	matchCount := 0
	rowNum := 0
	printedFileHeader := false
	var tableOrdinals []int
	var tableRows [][]string

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return matchCount, fmt.Errorf("%s: %w", path, err)
		}
		rowNum++

		if !rowMatches(row, e.pattern, columns, e.opts.Invert) {
			continue
		}
		matchCount++

		if !printedFileHeader && !buffered {
			e.printer.FileHeader(path)
			if e.opts.WithHeaders && !e.opts.Count {
				e.printer.HeaderRow(header)
			}
			printedFileHeader = true
		}

		switch {
		case e.opts.Count:
			// Tallied only; no per-row output.
		case e.opts.OnlyMatching:
			e.printOnlyMatching(header, row, columns)
		case buffered:
			tableOrdinals = append(tableOrdinals, rowNum)
			tableRows = append(tableRows, row)
		default:
			e.printer.MatchRow(rowNum, row, e.pattern)
		}

		if e.opts.MaxCount > 0 && matchCount >= e.opts.MaxCount {
			// Stop pulling rows immediately; no further ordinals.
			break
		}
	}

	if buffered && matchCount > 0 {
		e.printer.FileHeader(path)
		e.printer.Table(header, tableOrdinals, tableRows, e.pattern)
		printedFileHeader = true
	}
	if e.opts.Count && matchCount > 0 {
		e.printer.CountLine(path, matchCount)
	}
	if printedFileHeader && !e.opts.Count {
		e.printer.Separator()
	}

	return matchCount, nil
}

// printOnlyMatching emits just the cells of row that match the pattern,
// each with its column name, honoring the column restriction.
func (e *Engine) printOnlyMatching(header, row []string, columns []int) {
	indices := columns
	if indices == nil {
		indices = make([]int, len(row))
		for i := range row {
			indices[i] = i
		}
	}

	for _, idx := range indices {
		if idx < 0 || idx >= len(row) {
			continue
		}
		cell := row[idx]
		if !e.pattern.MatchString(cell) {
			continue
		}
		name := "?"
		if idx < len(header) {
			name = header[idx]
		}
		e.printer.OnlyMatch(name, cell)
	}
}
