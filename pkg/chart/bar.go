package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/stats"
)

var barColor = color.RGBA{R: 76, G: 114, B: 176, A: 255}

// TopBar draws one horizontal bar per record, in the given order from top
// to bottom, and writes the chart to path. Callers pass records already
// ranked, typically from stats.TopN.
func TopBar(top []stats.LongRecord, year int, path string, opts ...Option) error {
	o := newOptions(opts)
	n := o.topN
	if n <= 0 {
		n = len(top)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Countries by Population - %d", n, year)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Population"
	p.X.Tick.Marker = newGroupedTicks()

	if len(top) > 0 {
		// gonum stacks categories bottom-up; reverse so the first record is on top.
		values := make(plotter.Values, len(top))
		names := make([]string, len(top))
		for i, r := range top {
			j := len(top) - 1 - i
			values[j] = r.Value
			names[j] = r.CountryName
		}

		bars, err := plotter.NewBarChart(values, vg.Points(20))
		if err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		bars.Horizontal = true
		bars.Color = barColor
		bars.LineStyle.Width = vg.Length(0)

		p.Add(bars)
		p.NominalY(names...)
		p.X.Min = 0
	}

	return save(p, o, path)
}
