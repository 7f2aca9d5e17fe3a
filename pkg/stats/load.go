package stats

import (
	"fmt"
	"os"
	"strings"
)

// DefaultSkipRows is the number of metadata rows that precede the header
// in World Bank downloads.
const DefaultSkipRows = 4

// LoadOptions controls how an indicator table is read.
type LoadOptions struct {
	SkipRows    int
	Identifiers Identifiers
}

// Load reads the indicator table at path. The first opts.SkipRows rows are
// dropped, the next non-empty row is the header and must name every
// identifier column. Rows with no content are ignored everywhere.
func Load(path string, opts LoadOptions) (*WideTable, error) {
	if opts.Identifiers == (Identifiers{}) {
		opts.Identifiers = DefaultIdentifiers
	}
	if opts.SkipRows < 0 {
		opts.SkipRows = 0
	}

	if _, err := os.Stat(path); err != nil {
		return nil, formatError(path, "cannot open file", err)
	}

	t := &WideTable{Source: path}
	var haveHeader bool

	err := ExtractDataFromFile(NewFile(path), opts.SkipRows, func(row []string) {
		// Spreadsheets report empty rows that a CSV reader would drop.
		if isBlank(row) {
			return
		}
		if !haveHeader {
			haveHeader = true
			t.Header = make([]string, len(row))
			for i, h := range row {
				t.Header[i] = strings.TrimSpace(h)
			}
			return
		}
		t.Rows = append(t.Rows, append([]string(nil), row...))
	})
	if err != nil {
		return nil, formatError(path, "cannot read table", err)
	}

	if !haveHeader {
		return nil, formatError(path, fmt.Sprintf("no rows left after skipping %d metadata rows", opts.SkipRows), nil)
	}
	for _, name := range opts.Identifiers.Names() {
		if t.Column(name) < 0 {
			return nil, formatError(path, fmt.Sprintf("header has no %q column", name), nil)
		}
	}

	return t, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
