// Package chart renders indicator values as static images with gonum/plot.
//
// The output format follows the file extension of the destination path
// (.png, .svg, .pdf, .jpg, .tif or .eps). Existing files are overwritten.
package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultBins   = 40
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// Option configures a rendering call.
type Option func(*options)

type options struct {
	bins   int
	topN   int
	width  vg.Length
	height vg.Length
}

func newOptions(opts []Option) options {
	o := options{bins: DefaultBins, width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBins sets the number of histogram bins.
func WithBins(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bins = n
		}
	}
}

// WithTopN sets the N shown in the bar chart title. It defaults to the
// number of bars.
func WithTopN(n int) Option {
	return func(o *options) { o.topN = n }
}

// WithSize sets the image size.
func WithSize(w, h vg.Length) Option {
	return func(o *options) { o.width, o.height = w, h }
}

// groupedTicks labels the whole-number major ticks of plot.DefaultTicks
// with English digit grouping, e.g. 1,500,000,000 instead of 1.5e+09.
// Fractional ticks keep their default label.
type groupedTicks struct {
	printer *message.Printer
}

func newGroupedTicks() groupedTicks {
	return groupedTicks{printer: message.NewPrinter(language.English)}
}

func (g groupedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" || t.Value != math.Trunc(t.Value) {
			continue
		}
		ticks[i].Label = g.printer.Sprintf("%.f", t.Value)
	}
	return ticks
}

func save(p *plot.Plot, o options, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
