// Package fetcher loads raw lead exports from CSV and XLSX files into a
// uniform header + rows table.
package fetcher

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table is one loaded tabular file: the header row plus the data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadCSV loads a delimited file encoded as UTF-8 with an optional leading
// BOM (the utf-8-sig convention CRM exports use). A missing file is a fatal
// error for the run; no partial table is returned.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	r.FieldsPerRecord = -1 // allow variable fields
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: read csv %s", path)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}
