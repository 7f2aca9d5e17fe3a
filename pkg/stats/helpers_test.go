package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// worldBankCSV mirrors the layout of an API_SP.POP.TOTL download: a BOM,
// metadata rows separated by blank lines, and a trailing comma on every row.
const worldBankCSV = "\ufeff\"Data Source\",\"World Development Indicators\",\n" +
	"\n" +
	"\"Last Updated Date\",\"2020-12-16\",\n" +
	"\n" +
	"\"Country Name\",\"Country Code\",\"Indicator Name\",\"Indicator Code\",\"1960\",\"2019\",\"2020\",\n" +
	"\"Aruba\",\"ABW\",\"Population, total\",\"SP.POP.TOTL\",\"54208\",\"106310\",\"106766\",\n" +
	"\"Afghanistan\",\"AFG\",\"Population, total\",\"SP.POP.TOTL\",\"8996973\",\"38041754\",\"\",\n" +
	"\"World\",\"\",\"Population, total\",\"SP.POP.TOTL\",\"3032160395\",\"7673533974\",\"7752840547\",\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func intPtr(v int) *int { return &v }

func rec(name, code string, year int, value float64) LongRecord {
	return LongRecord{CountryName: name, CountryCode: code, Year: year, Value: value, HasValue: true}
}

func missing(name, code string, year int) LongRecord {
	return LongRecord{CountryName: name, CountryCode: code, Year: year}
}
