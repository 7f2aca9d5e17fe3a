package stats

import "sort"

// Selection is the outcome of SelectYear.
type Selection struct {
	Year      int
	Requested *int
	// Fallback is set when a requested year was absent from the data and
	// the latest year with values was chosen instead.
	Fallback bool
}

// SelectYear picks the analysis year. A requested year that occurs in the
// records is returned as is, whether or not it has values. Otherwise the
// latest year with at least one value wins.
func SelectYear(records []LongRecord, requested *int) (Selection, error) {
	sel := Selection{Requested: requested}

	withData := make(map[int]bool)
	for _, r := range records {
		if r.HasValue {
			withData[r.Year] = true
		} else if _, seen := withData[r.Year]; !seen {
			withData[r.Year] = false
		}
	}

	if requested != nil {
		if _, ok := withData[*requested]; ok {
			sel.Year = *requested
			return sel, nil
		}
		sel.Fallback = true
	}

	years := make([]int, 0, len(withData))
	for y := range withData {
		years = append(years, y)
	}
	sort.Ints(years)

	for i := len(years) - 1; i >= 0; i-- {
		if withData[years[i]] {
			sel.Year = years[i]
			return sel, nil
		}
	}
	return sel, &NoDataAvailableError{Years: len(years)}
}

// Years returns the distinct years present in records, ascending.
func Years(records []LongRecord) []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range records {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}
