package grep

import (
	"regexp"
	"testing"
)

func TestRowMatches(t *testing.T) {
	tests := []struct {
		name    string
		row     []string
		pattern string
		columns []int
		invert  bool
		want    bool
	}{
		{"any column match", []string{"Alice", "30", "Engineer"}, "Eng", nil, false, true},
		{"any column no match", []string{"Bob", "25", "Analyst"}, "Eng", nil, false, false},
		{"substring not full cell", []string{"Alice", "30", "Engineer"}, "ngine", nil, false, true},
		{"digit in other column", []string{"Alice", "30", "Engineer"}, "3", nil, false, true},

		// Column restriction
		{"restricted hit", []string{"Alice", "30", "Engineer"}, "Eng", []int{2}, false, true},
		{"restricted miss", []string{"Alice", "30", "Engineer"}, "Eng", []int{0, 1}, false, false},
		{"digit not in name column", []string{"Alice", "30", "Engineer"}, "3", []int{0}, false, false},
		{"duplicate indices", []string{"Alice", "30"}, "Alice", []int{0, 0}, false, true},
		{"out of range skipped", []string{"Alice"}, "Alice", []int{5, 0}, false, true},
		{"only out of range", []string{"Alice"}, "Alice", []int{5}, false, false},

		// Inversion
		{"invert match", []string{"Alice", "30", "Engineer"}, "Eng", nil, true, false},
		{"invert no match", []string{"Bob", "25", "Analyst"}, "Eng", nil, true, true},

		// Empty restriction: nothing is examined
		{"empty restriction", []string{"Alice", "30"}, "Alice", []int{}, false, false},
		{"empty restriction inverted", []string{"Alice", "30"}, "Alice", []int{}, true, true},

		// Regex patterns
		{"regex class", []string{"Bob", "25"}, "[0-9]+", nil, false, true},
		{"regex anchors", []string{"Bob", "25"}, "^Bob$", nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			got := rowMatches(tt.row, re, tt.columns, tt.invert)
			if got != tt.want {
				t.Errorf("rowMatches(%v, %q, %v, %v) = %v, want %v",
					tt.row, tt.pattern, tt.columns, tt.invert, got, tt.want)
			}
		})
	}
}

// Inverting the flag must always negate the verdict when the same cells
// are examined.
func TestRowMatches_InversionDuality(t *testing.T) {
	re := regexp.MustCompile("a")
	rows := [][]string{
		{"apple", "banana"},
		{"kiwi", "plum"},
		{},
		{"", ""},
	}

	for _, row := range rows {
		plain := rowMatches(row, re, nil, false)
		inverted := rowMatches(row, re, nil, true)
		if plain == inverted {
			t.Errorf("row %v: invert=false and invert=true both returned %v", row, plain)
		}
	}
}
