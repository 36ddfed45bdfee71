package output

import (
	"regexp"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Table renders a whole file's buffered matches as an aligned table.
//
// The first column carries each row's ordinal; the remaining columns use
// the file's header. Pattern occurrences inside cells are highlighted the
// same way as in MatchRow. The full row set must be buffered before
// calling Table so the writer can size its columns.
func (p *Printer) Table(header []string, ordinals []int, rows [][]string, pattern *regexp.Regexp) {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader(append([]string{"row"}, header...))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for i, row := range rows {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.Itoa(ordinals[i]))
		for _, cell := range row {
			record = append(record, p.highlight(cell, pattern))
		}
		table.Append(record)
	}

	table.Render()
}
