package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vegasq/tgrep/grep"
	"github.com/vegasq/tgrep/output"
	"github.com/vegasq/tgrep/reader"
)

var (
	columns      []string
	ignoreCase   bool
	invert       bool
	onlyMatching bool
	noFilename   bool
	withHeaders  bool
	countOnly    bool
	fixedStrings bool
	maxCount     int
	noColor      bool
	tableMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "tgrep <pattern> <path>",
	Short: "Search for patterns in CSV and Parquet table files",
	Long: `tgrep lets you search for patterns across rows in CSV and Parquet files,
either in a single file or recursively across an entire directory.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runGrep,
}

func init() {
	rootCmd.Flags().StringSliceVar(&columns, "columns", nil, "Search only in specific columns (comma-separated column names)")
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	rootCmd.Flags().BoolVarP(&invert, "invert", "v", false, "Invert match: show rows that do NOT match")
	rootCmd.Flags().BoolVarP(&onlyMatching, "only-matching", "o", false, "Show only matching column values (not full rows)")
	rootCmd.Flags().BoolVar(&noFilename, "no-filename", false, "Suppress filename headers in output")
	rootCmd.Flags().BoolVarP(&withHeaders, "with-headers", "H", true, "Print column headers in output")
	rootCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "Count matching rows per file instead of printing them")
	rootCmd.Flags().BoolVarP(&fixedStrings, "fixed-strings", "F", false, "Treat pattern as a literal string (not regex)")
	rootCmd.Flags().IntVarP(&maxCount, "max-count", "m", 0, "Limit output to N matching rows per file (0 = unlimited)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	rootCmd.Flags().BoolVarP(&tableMode, "table", "t", false, "Render matches as an aligned table per file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runGrep(cmd *cobra.Command, args []string) error {
	pattern, target := args[0], args[1]

	// An invalid pattern is fatal before any file is scanned.
	re, err := grep.Compile(pattern, fixedStrings, ignoreCase)
	if err != nil {
		return err
	}

	useColor := !noColor &&
		os.Getenv("NO_COLOR") == "" &&
		term.IsTerminal(int(os.Stdout.Fd()))

	printer := output.NewPrinter(os.Stdout, useColor, !noFilename)
	engine := grep.New(re, grep.Options{
		Columns:      columns,
		Invert:       invert,
		OnlyMatching: onlyMatching,
		Count:        countOnly,
		MaxCount:     maxCount,
		WithHeaders:  withHeaders,
		Table:        tableMode,
	}, printer)

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("'%s' is not a valid file or directory", target)
	}

	if !info.IsDir() {
		_, err := engine.SearchFile(target)
		return err
	}

	found := false
	failed := 0
	walkErr := filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return nil
		}
		if d.IsDir() || !reader.IsSupported(path) {
			return nil
		}
		found = true
		if _, err := engine.SearchFile(path); err != nil {
			// A bad file aborts only that file's scan; the walk continues.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
		}
		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	if !found {
		fmt.Fprintf(os.Stderr, "No supported table files (.csv, .parquet, .pq, .parq) found in '%s'\n", target)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be searched", failed)
	}
	return nil
}
