// Package report runs the load → reshape → select → render pipeline over a
// World Bank indicator table.
package report

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/chart"
	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/config"
	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/stats"
)

// Result holds what a run selected and drew.
type Result struct {
	Selection stats.Selection
	Countries []stats.LongRecord // country rows of the selected year
	Values    []float64          // histogram input
	Top       []stats.LongRecord // bar chart input, largest first
	HistOut   string
	BarOut    string
}

// Summarize loads and reshapes the table and selects the year without
// rendering anything.
func Summarize(ctx context.Context, cfg config.Config, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Loading data", "path", cfg.CSVPath)
	start := time.Now()
	table, err := stats.Load(cfg.CSVPath, stats.LoadOptions{
		SkipRows:    cfg.SkipRows,
		Identifiers: stats.DefaultIdentifiers,
	})
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	logger.Debug("loaded table",
		"rows", len(table.Rows),
		"columns", len(table.Header),
		"duration", time.Since(start).Round(time.Millisecond))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("Tidying to long format")
	records := stats.Reshape(table, stats.DefaultIdentifiers)
	years := stats.Years(records)
	if len(years) > 0 {
		logger.Debug("reshaped table", "records", len(records), "first_year", years[0], "last_year", years[len(years)-1])
	}

	sel, err := stats.SelectYear(records, cfg.Year)
	if err != nil {
		return nil, fmt.Errorf("select year: %w", err)
	}
	if sel.Fallback {
		logger.Warn("Preferred year not found; auto-selecting latest year", "preferred", *sel.Requested, "selected", sel.Year)
	}
	logger.Info("Using year", "year", sel.Year)

	countries := stats.Countries(stats.ForYear(records, sel.Year))
	return &Result{
		Selection: sel,
		Countries: countries,
		Values:    stats.Values(countries),
		Top:       stats.TopN(countries, cfg.TopN),
		HistOut:   cfg.HistOut,
		BarOut:    cfg.BarOut,
	}, nil
}

// Run executes the whole pipeline and writes both charts. Nothing is
// written unless loading, reshaping and year selection all succeed.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}

	res, err := Summarize(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	year := res.Selection.Year
	if len(res.Values) == 0 {
		logger.Warn("No country values for the selected year; charts will be empty", "year", year)
	}

	if err := chart.Histogram(res.Values, year, cfg.HistOut, chart.WithBins(cfg.Bins)); err != nil {
		return nil, fmt.Errorf("render histogram: %w", err)
	}
	logger.Info("Saved histogram", "path", cfg.HistOut, "values", len(res.Values))

	if err := chart.TopBar(res.Top, year, cfg.BarOut, chart.WithTopN(cfg.TopN)); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	logger.Info("Saved bar chart", "path", cfg.BarOut, "bars", len(res.Top))

	logger.Info("Done", dirFields(os.Getwd)...)
	return res, nil
}

// dirFields returns the "dir" log field, or nothing when getwd fails.
func dirFields(getwd func() (string, error)) []interface{} {
	wd, err := getwd()
	if err != nil {
		return nil
	}
	return []interface{}{"dir", wd}
}
