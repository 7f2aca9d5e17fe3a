package stats

import "sort"

// ForYear returns the records observed in year.
func ForYear(records []LongRecord, year int) []LongRecord {
	var out []LongRecord
	for _, r := range records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// Countries drops aggregate rows, keeping records that carry a country code.
func Countries(records []LongRecord) []LongRecord {
	var out []LongRecord
	for _, r := range records {
		if !r.IsAggregate() {
			out = append(out, r)
		}
	}
	return out
}

// Values returns the non-missing values of records.
func Values(records []LongRecord) []float64 {
	var out []float64
	for _, r := range records {
		if r.HasValue {
			out = append(out, r.Value)
		}
	}
	return out
}

// TopN returns at most n records with values, largest first. Equal values
// are ordered by country name.
func TopN(records []LongRecord, n int) []LongRecord {
	if n <= 0 {
		return nil
	}

	sorted := make([]LongRecord, 0, len(records))
	for _, r := range records {
		if r.HasValue {
			sorted = append(sorted, r)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value > sorted[j].Value
		}
		return sorted[i].CountryName < sorted[j].CountryName
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Total sums the non-missing values of records.
func Total(records []LongRecord) float64 {
	var sum float64
	for _, r := range records {
		if r.HasValue {
			sum += r.Value
		}
	}
	return sum
}
