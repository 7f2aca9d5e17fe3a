package stats

import (
	"fmt"
	"os"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

// ExtractDataFromFile feeds every row of f to handler after dropping the
// first skip rows. The first sheet of a workbook is used.
func ExtractDataFromFile(f *File, skip int, handler func(r []string)) error {
	switch f.Format {
	case FormatXLSX:
		return ExtractDataFromXLSX(f, skip, handler)
	case FormatXLS:
		return ExtractDataFromXLS(f, skip, handler)
	default:
		return ExtractDataFromCSV(f, skip, handler)
	}
}

func ExtractDataFromXLS(f *File, skip int, handler func(r []string)) error {
	fh, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer fh.Close()

	wb, err := xls.OpenReader(fh, "utf-8")
	if err != nil {
		return fmt.Errorf("could not read XLS workbook: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return fmt.Errorf("XLS workbook has no sheets")
	}

	for i := skip; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			// Missing rows still occupy a position in the sheet.
			handler(nil)
			continue
		}
		var cols []string
		for j := 0; j < row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		handler(cols)
	}
	return nil
}

func ExtractDataFromXLSX(f *File, skip int, handler func(r []string)) error {
	wb, err := xlsx.OpenFile(f.Path)
	if err != nil {
		return fmt.Errorf("could not read XLSX workbook: %w", err)
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("XLSX workbook has no sheets")
	}
	defaultSheet := sheets[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return fmt.Errorf("could not get rows for sheet %q: %w", defaultSheet, err)
	}

	for i, r := range rows {
		if i < skip {
			continue
		}
		handler(r)
	}
	return nil
}
