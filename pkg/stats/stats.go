package stats

// Identifiers names the columns that identify a row in a World Bank
// indicator table. Every other column is a candidate year column.
type Identifiers struct {
	CountryName   string
	CountryCode   string
	IndicatorName string
	IndicatorCode string
}

// DefaultIdentifiers are the column names used by World Bank indicator downloads.
var DefaultIdentifiers = Identifiers{
	CountryName:   "Country Name",
	CountryCode:   "Country Code",
	IndicatorName: "Indicator Name",
	IndicatorCode: "Indicator Code",
}

// Names returns the identifier column names in table order.
func (ids Identifiers) Names() []string {
	return []string{ids.CountryName, ids.CountryCode, ids.IndicatorName, ids.IndicatorCode}
}

// WideTable is an indicator table as published: one row per country or
// region, one column per year plus the identifier columns.
type WideTable struct {
	Source string
	Header []string
	Rows   [][]string
}

// Column returns the index of the named header column, or -1.
func (t *WideTable) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row r, column c. Ragged rows yield "".
func (t *WideTable) Cell(r, c int) string {
	if c < 0 || r < 0 || r >= len(t.Rows) || c >= len(t.Rows[r]) {
		return ""
	}
	return t.Rows[r][c]
}

// LongRecord is a single (country, year) observation.
type LongRecord struct {
	CountryName   string
	CountryCode   string
	IndicatorName string
	IndicatorCode string
	Year          int
	Value         float64
	HasValue      bool
}

// IsAggregate reports whether the record belongs to a region or income
// group row rather than a country. Such rows carry no country code.
func (r LongRecord) IsAggregate() bool {
	return r.CountryCode == ""
}
