package grep

import (
	"fmt"
	"io"
)

// resolveColumns maps requested column names to header indices.
//
// A nil request means unrestricted: every column is examined. Otherwise
// the result holds the index of each requested name in request order
// (first case-sensitive match in the header, duplicates preserved).
// Names missing from the header produce a warning on warn and are
// dropped. When nothing resolves the result is an empty, non-nil set,
// which is distinct from unrestricted: zero columns will ever match.
func resolveColumns(header, requested []string, warn io.Writer) []int {
	if requested == nil {
		return nil
	}

	indices := make([]int, 0, len(requested))
	for _, name := range requested {
		idx := -1
		for i, h := range header {
			if h == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			fmt.Fprintf(warn, "Warning: column '%s' not found\n", name)
			continue
		}
		indices = append(indices, idx)
	}
	return indices
}
