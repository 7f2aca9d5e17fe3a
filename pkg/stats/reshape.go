package stats

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var yearLabel = regexp.MustCompile(`^[0-9]{4}$`)

// Reshape melts a wide table into one LongRecord per (row, year column).
// Columns other than the identifiers whose label is not exactly four digits
// are dropped. Cells that do not parse as a finite number become missing
// values.
func Reshape(t *WideTable, ids Identifiers) []LongRecord {
	nameCol := t.Column(ids.CountryName)
	codeCol := t.Column(ids.CountryCode)
	indNameCol := t.Column(ids.IndicatorName)
	indCodeCol := t.Column(ids.IndicatorCode)

	idSet := make(map[string]bool)
	for _, n := range ids.Names() {
		idSet[n] = true
	}

	var records []LongRecord
	for c, label := range t.Header {
		if idSet[label] || !yearLabel.MatchString(label) {
			continue
		}
		year, _ := strconv.Atoi(label)

		for r := range t.Rows {
			v, ok := ParseValue(t.Cell(r, c))
			records = append(records, LongRecord{
				CountryName:   t.Cell(r, nameCol),
				CountryCode:   strings.TrimSpace(t.Cell(r, codeCol)),
				IndicatorName: t.Cell(r, indNameCol),
				IndicatorCode: t.Cell(r, indCodeCol),
				Year:          year,
				Value:         v,
				HasValue:      ok,
			})
		}
	}
	return records
}

// ParseValue parses a table cell as a number. Blank, malformed and
// non-finite cells report ok == false.
func ParseValue(s string) (v float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
