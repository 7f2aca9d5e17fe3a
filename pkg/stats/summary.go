package stats

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary describes one year of an indicator across countries.
type Summary struct {
	Year      int
	Countries int     // countries with a value
	Total     float64 // sum over countries with a value
	Top       []LongRecord
}

// Summarize builds a Summary from the country records of a single year.
func Summarize(year int, records []LongRecord, topN int) Summary {
	return Summary{
		Year:      year,
		Countries: len(Values(records)),
		Total:     Total(records),
		Top:       TopN(records, topN),
	}
}

// Print writes the summary as a ranked table with English digit grouping.
func (s Summary) Print(w io.Writer) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "\nPopulation by Country (%d)\n\n", s.Year)
	p.Fprintf(w, "\tCountries with data : %d\n", s.Countries)
	p.Fprintf(w, "\tTotal               : %.f\n\n", s.Total)

	for i, r := range s.Top {
		var pct float64
		if s.Total > 0 {
			pct = r.Value / s.Total
		}
		p.Fprintf(w, "%02d. %-30s %-3s  %15.f  %6.02f%%\n",
			i+1, r.CountryName, r.CountryCode, r.Value, pct*100)
	}
	fmt.Fprintln(w)
}

// Dump writes a debug representation of o.
func Dump(w io.Writer, o interface{}) {
	spew.Fdump(w, o)
}
