package grep

import "regexp"

// rowMatches reports whether row satisfies the pattern under the given
// column restriction and inversion flag.
//
// A nil restriction examines every cell; an explicit restriction examines
// exactly the cells at those indices, silently skipping any that fall
// outside the row. The row raw-matches when the pattern matches at least
// one examined cell (substring search, not full-cell equality); invert
// flips the verdict. An empty restriction never raw-matches, so with
// invert set every row is reported as matching.
func rowMatches(row []string, pattern *regexp.Regexp, columns []int, invert bool) bool {
	matched := false

	if columns == nil {
		for _, cell := range row {
			if pattern.MatchString(cell) {
				matched = true
				break
			}
		}
	} else {
		for _, idx := range columns {
			if idx < 0 || idx >= len(row) {
				continue
			}
			if pattern.MatchString(row[idx]) {
				matched = true
				break
			}
		}
	}

	if invert {
		return !matched
	}
	return matched
}
