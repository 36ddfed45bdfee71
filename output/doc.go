// Package output renders structured match results for human consumption.
//
// The grep engine hands this package structured events - file headers,
// header rows, matched rows with their ordinals, per-cell matches, counts
// and separators - and the Printer owns every formatting and coloring
// decision. Pattern occurrences inside cells are highlighted when color
// is enabled.
//
// # Basic Usage
//
// Create a printer and feed it match events:
//
//	printer := output.NewPrinter(os.Stdout, true, true)
//	printer.FileHeader("people.csv")
//	printer.HeaderRow([]string{"name", "age", "role"})
//	printer.MatchRow(1, []string{"Alice", "30", "Engineer"}, re)
//	printer.Separator()
//
// # Writing to Different Destinations
//
// The printer writes to any io.Writer, so tests can capture output in a
// bytes.Buffer with color disabled:
//
//	var buf bytes.Buffer
//	printer := output.NewPrinter(&buf, false, true)
//
// # Table Mode
//
// Table renders a whole file's buffered matches at once using
// github.com/olekukonko/tablewriter, with a leading row-ordinal column.
package output
