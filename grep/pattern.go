package grep

import (
	"fmt"
	"regexp"
)

// Compile builds the search pattern used by the engine.
//
// With fixedString the pattern is matched as a literal string rather than
// a regular expression; ignoreCase makes matching case-insensitive. An
// invalid expression is reported before any file is scanned.
func Compile(pattern string, fixedString, ignoreCase bool) (*regexp.Regexp, error) {
	expr := pattern
	if fixedString {
		expr = regexp.QuoteMeta(expr)
	}
	if ignoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}
