package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/config"
	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/stats"
)

const scenarioCSV = `"Data Source","World Development Indicators",

"Last Updated Date","2021-06-30",

"Country Name","Country Code","Indicator Name","Indicator Code","2019","2020",
"Alpha","AAA","Population, total","SP.POP.TOTL","","30",
"Bravo","BBB","Population, total","SP.POP.TOTL","","10",
"Charlie","CCC","Population, total","SP.POP.TOTL","","50",
"Delta","DDD","Population, total","SP.POP.TOTL","","20",
"Echo","EEE","Population, total","SP.POP.TOTL","","40",
"World","","Population, total","SP.POP.TOTL","","150",
`

func testConfig(t *testing.T, csv string) config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "API_SP.POP.TOTL.csv")
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o644))

	cfg := config.Default()
	cfg.CSVPath = input
	cfg.HistOut = filepath.Join(dir, "population_histogram.png")
	cfg.BarOut = filepath.Join(dir, "population_top10.svg")
	return cfg
}

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

func TestRunScenario(t *testing.T) {
	cfg := testConfig(t, scenarioCSV)
	logger, logs := testLogger()

	res, err := Run(context.Background(), cfg, logger)
	require.NoError(t, err)

	assert.Equal(t, 2020, res.Selection.Year)
	assert.False(t, res.Selection.Fallback)
	assert.ElementsMatch(t, []float64{10, 20, 30, 40, 50}, res.Values)

	require.Len(t, res.Top, 5)
	var got []float64
	for _, r := range res.Top {
		got = append(got, r.Value)
		assert.NotEmpty(t, r.CountryCode)
	}
	assert.Equal(t, []float64{50, 40, 30, 20, 10}, got)
	assert.Equal(t, "Charlie", res.Top[0].CountryName)

	for _, path := range []string{cfg.HistOut, cfg.BarOut} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	out := logs.String()
	for _, msg := range []string{"Loading data", "Tidying to long format", "Using year", "Saved histogram", "Saved bar chart", "Done"} {
		assert.Contains(t, out, msg)
	}
}

func TestRunRequestedYearFallback(t *testing.T) {
	cfg := testConfig(t, scenarioCSV)
	year := 1990
	cfg.Year = &year
	logger, logs := testLogger()

	res, err := Run(context.Background(), cfg, logger)
	require.NoError(t, err)

	assert.Equal(t, 2020, res.Selection.Year)
	assert.True(t, res.Selection.Fallback)
	assert.Contains(t, logs.String(), "Preferred year not found")
}

func TestRunRequestedYearWithoutData(t *testing.T) {
	cfg := testConfig(t, scenarioCSV)
	year := 2019
	cfg.Year = &year
	logger, logs := testLogger()

	res, err := Run(context.Background(), cfg, logger)
	require.NoError(t, err)

	assert.Equal(t, 2019, res.Selection.Year)
	assert.False(t, res.Selection.Fallback)
	assert.Empty(t, res.Values)
	assert.Empty(t, res.Top)
	assert.NotContains(t, logs.String(), "Preferred year not found")

	_, err = os.Stat(cfg.BarOut)
	assert.NoError(t, err)
}

func TestRunNoData(t *testing.T) {
	cfg := testConfig(t, `"Data Source","WDI",

"Last Updated Date","2021-06-30",

"Country Name","Country Code","Indicator Name","Indicator Code","2019","2020",
"Alpha","AAA","Population, total","SP.POP.TOTL","","",
`)
	logger, _ := testLogger()

	_, err := Run(context.Background(), cfg, logger)
	require.Error(t, err)
	assert.ErrorIs(t, err, stats.ErrNoData)

	for _, path := range []string{cfg.HistOut, cfg.BarOut} {
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "%s should not be written", path)
	}
}

func TestRunBadInput(t *testing.T) {
	cfg := testConfig(t, "not,a,world,bank,table\n")
	logger, _ := testLogger()

	_, err := Run(context.Background(), cfg, logger)
	require.Error(t, err)
	assert.ErrorIs(t, err, stats.ErrFileFormat)
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig(t, scenarioCSV)
	cfg.TopN = 0

	_, err := Run(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_n")
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(t, scenarioCSV)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, cfg, nil)
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(cfg.HistOut)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSummarizeTopN(t *testing.T) {
	cfg := testConfig(t, scenarioCSV)
	cfg.TopN = 2
	logger, _ := testLogger()

	res, err := Summarize(context.Background(), cfg, logger)
	require.NoError(t, err)

	require.Len(t, res.Top, 2)
	assert.Equal(t, "Charlie", res.Top[0].CountryName)
	assert.Equal(t, "Echo", res.Top[1].CountryName)
	assert.Len(t, res.Countries, 5)

	_, statErr := os.Stat(cfg.HistOut)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDirFields(t *testing.T) {
	assert.Equal(t, []interface{}{"dir", "/data"}, dirFields(func() (string, error) { return "/data", nil }))
	assert.Empty(t, dirFields(func() (string, error) { return "", errors.New("getwd: no such file or directory") }))

	logger, logs := testLogger()
	logger.Info("Done", dirFields(func() (string, error) { return "", errors.New("gone") })...)
	assert.Contains(t, logs.String(), "Done")
}
