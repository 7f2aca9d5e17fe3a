// Package config holds the settings of a chart run.
//
// A Config is built once at startup, either from Default or from a TOML
// file layered over the defaults, and passed by value afterwards:
//
//	csv_path  = "API_SP.POP.TOTL_DS2_en_csv_v2_280659.csv"
//	hist_out  = "population_histogram.png"
//	bar_out   = "population_top10.png"
//	year      = 2020   # omit to use the latest year with data
//	top_n     = 10
//	skip_rows = 4
//	bins      = 40
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultCSVPath  = "API_SP.POP.TOTL_DS2_en_csv_v2_280659.csv"
	DefaultHistOut  = "population_histogram.png"
	DefaultBarOut   = "population_top10.png"
	DefaultTopN     = 10
	DefaultSkipRows = 4
	DefaultBins     = 40
)

// Config is the full set of options for loading the indicator table and
// rendering its charts.
type Config struct {
	CSVPath  string `toml:"csv_path"`
	HistOut  string `toml:"hist_out"`
	BarOut   string `toml:"bar_out"`
	Year     *int   `toml:"year"` // nil selects the latest year with data
	TopN     int    `toml:"top_n"`
	SkipRows int    `toml:"skip_rows"`
	Bins     int    `toml:"bins"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		CSVPath:  DefaultCSVPath,
		HistOut:  DefaultHistOut,
		BarOut:   DefaultBarOut,
		TopN:     DefaultTopN,
		SkipRows: DefaultSkipRows,
		Bins:     DefaultBins,
	}
}

// Load reads a TOML file over the defaults and validates the result.
// Keys the Config does not know are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("parse config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.CSVPath) == "":
		return fmt.Errorf("invalid config: csv_path is empty")
	case strings.TrimSpace(c.HistOut) == "":
		return fmt.Errorf("invalid config: hist_out is empty")
	case strings.TrimSpace(c.BarOut) == "":
		return fmt.Errorf("invalid config: bar_out is empty")
	case c.HistOut == c.BarOut:
		return fmt.Errorf("invalid config: hist_out and bar_out are both %q", c.HistOut)
	case c.TopN < 1:
		return fmt.Errorf("invalid config: top_n must be at least 1, got %d", c.TopN)
	case c.SkipRows < 0:
		return fmt.Errorf("invalid config: skip_rows must not be negative, got %d", c.SkipRows)
	case c.Bins < 1:
		return fmt.Errorf("invalid config: bins must be at least 1, got %d", c.Bins)
	case c.Year != nil && (*c.Year < 1000 || *c.Year > 9999):
		return fmt.Errorf("invalid config: year must have four digits, got %d", *c.Year)
	}
	return nil
}

// YearString renders the requested year for logs.
func (c Config) YearString() string {
	if c.Year == nil {
		return "auto"
	}
	return fmt.Sprint(*c.Year)
}
