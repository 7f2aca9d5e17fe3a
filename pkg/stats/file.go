package stats

import (
	"path/filepath"
	"strings"
)

// Format is the on-disk encoding of a statistical table.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLS  Format = "xls"
	FormatXLSX Format = "xlsx"
)

// File represents a file containing statistical data.
// World Bank indicators ship as CSV or as an Excel workbook.
type File struct {
	Path   string
	Format Format
}

// NewFile returns a File whose format is derived from the path extension.
// Unknown extensions are read as CSV.
func NewFile(path string) *File {
	f := &File{Path: path, Format: FormatCSV}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f.Format = FormatXLSX
	case ".xls":
		f.Format = FormatXLS
	}
	return f
}
