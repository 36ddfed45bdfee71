// Package grep implements the tabular matching engine.
//
// The engine scans one file at a time through the reader package's Source
// contract, decides per row whether it matches a compiled pattern, and
// routes matches into the active output mode: streaming one line per row,
// counting, only-matching cells, or a buffered whole-file table.
//
// # Basic Usage
//
// Compile a pattern, build an engine, and search a file:
//
//	re, err := grep.Compile("Eng", false, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	printer := output.NewPrinter(os.Stdout, true, true)
//	engine := grep.New(re, grep.Options{WithHeaders: true}, printer)
//
//	count, err := engine.SearchFile("people.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Column Restriction
//
// Options.Columns limits matching and display to the named columns.
// Names that don't exist in a file's header are warned about and dropped;
// if none resolve, no row in that file can match (every row matches when
// Invert is set, since nothing contradicts).
//
// # Memory Behavior
//
// Only the table mode buffers a file's matches; every other mode holds at
// most one row in memory, so memory usage is bounded by row width rather
// than file size.
package grep
