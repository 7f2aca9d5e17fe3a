package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var histColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}

// Histogram draws the distribution of values and writes it to path.
// An empty values slice produces a chart with axes only.
func Histogram(values []float64, year int, path string, opts ...Option) error {
	o := newOptions(opts)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Population Distribution across Countries - %d", year)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Population"
	p.Y.Label.Text = "Number of countries"
	p.X.Tick.Marker = newGroupedTicks()

	if len(values) > 0 {
		h, err := plotter.NewHist(plotter.Values(values), o.bins)
		if err != nil {
			return fmt.Errorf("histogram: %w", err)
		}
		h.FillColor = histColor
		h.LineStyle.Color = color.White
		p.Add(h)
	}

	return save(p, o, path)
}
