package stats

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExtractDataFromCSV skips the first skip physical lines of f and feeds the
// remaining records to handler. Blank lines inside the skipped block count
// towards skip; World Bank downloads separate their metadata rows with them.
func ExtractDataFromCSV(f *File, skip int, handler func(r []string)) error {
	fh, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer fh.Close()

	br := bufio.NewReader(fh)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	for i := 0; i < skip; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		handler(row)
	}
}
