package fetcher

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadXLSX loads a spreadsheet lead export. The named sheet is used when
// given, otherwise the first sheet. Cells are stringified so the result is
// shaped identically to a CSV table.
func ReadXLSX(path, sheetName string) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open xlsx %s", path)
	}

	sheet, err := getSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	table := &Table{}
	for i, row := range sheet.Rows {
		cells := rowToStrings(row)
		if i == 0 {
			table.Header = cells
			continue
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}

func getSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, eris.Errorf("fetcher: sheet %q not found", name)
		}
		return sheet, nil
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("fetcher: xlsx file has no sheets")
	}
	return f.Sheets[0], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
