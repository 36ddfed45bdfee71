package output

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Printer renders match events for human consumption.
//
// It owns all formatting and coloring decisions; callers hand it
// structured results and never deal with escape codes themselves.
type Printer struct {
	out          io.Writer
	styles       *styles
	showFilename bool
}

// styles holds the color formatters for each output role.
type styles struct {
	fileHeader *color.Color
	fileName   *color.Color
	header     *color.Color
	ordinal    *color.Color
	match      *color.Color
	count      *color.Color
	separator  *color.Color
}

// newStyles creates the color formatters. enabled=false disables colors
// on all of them (for --no-color, NO_COLOR, or non-terminal output);
// enabled=true forces them on so the caller's terminal detection is
// authoritative.
func newStyles(enabled bool) *styles {
	s := &styles{
		fileHeader: color.New(color.FgCyan, color.Bold),
		fileName:   color.New(color.FgCyan),
		header:     color.New(color.Faint),
		ordinal:    color.New(color.FgYellow),
		match:      color.New(color.FgRed, color.Bold),
		count:      color.New(color.FgGreen, color.Bold),
		separator:  color.New(color.Faint),
	}

	all := []*color.Color{
		s.fileHeader, s.fileName, s.header,
		s.ordinal, s.match, s.count, s.separator,
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// NewPrinter creates a printer writing to w.
//
// useColor enables ANSI coloring; showFilename controls whether per-file
// "==> file <==" banners are printed.
func NewPrinter(w io.Writer, useColor, showFilename bool) *Printer {
	return &Printer{
		out:          w,
		styles:       newStyles(useColor),
		showFilename: showFilename,
	}
}

// FileHeader prints the banner identifying a file with matches.
func (p *Printer) FileHeader(name string) {
	if !p.showFilename {
		return
	}
	fmt.Fprintln(p.out, p.styles.fileHeader.Sprintf("==> %s <==", name))
}

// HeaderRow prints the file's column names.
func (p *Printer) HeaderRow(columns []string) {
	fmt.Fprintln(p.out, p.styles.header.Sprint(strings.Join(columns, ",")))
}

// MatchRow prints one matching row prefixed with its ordinal, with every
// pattern occurrence inside each cell highlighted.
func (p *Printer) MatchRow(ordinal int, cells []string, pattern *regexp.Regexp) {
	highlighted := make([]string, len(cells))
	for i, cell := range cells {
		highlighted[i] = p.highlight(cell, pattern)
	}
	fmt.Fprintf(p.out, "%s %s\n",
		p.styles.ordinal.Sprintf("%d:", ordinal),
		strings.Join(highlighted, ","))
}

// OnlyMatch prints a single matching cell with its column name.
func (p *Printer) OnlyMatch(column, cell string) {
	fmt.Fprintf(p.out, "  [%s] %s\n", column, cell)
}

// CountLine prints the per-file match count.
func (p *Printer) CountLine(name string, count int) {
	fmt.Fprintf(p.out, "%s: %s\n",
		p.styles.fileName.Sprint(name),
		p.styles.count.Sprint(count))
}

// Separator prints the separator that closes a file's output.
func (p *Printer) Separator() {
	fmt.Fprintln(p.out, p.styles.separator.Sprint("---"))
}

// highlight wraps every pattern occurrence in cell with the match style.
func (p *Printer) highlight(cell string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllStringFunc(cell, func(m string) string {
		return p.styles.match.Sprint(m)
	})
}
