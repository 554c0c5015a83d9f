package main

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadpipe-cli/internal/export"
	"github.com/sells-group/leadpipe-cli/internal/fetcher"
	"github.com/sells-group/leadpipe-cli/internal/model"
	"github.com/sells-group/leadpipe-cli/internal/pipeline"
)

// loadTable picks the reader by file extension; anything that is not a
// spreadsheet is treated as CSV.
func loadTable(path string) (*fetcher.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fetcher.ReadXLSX(path, "")
	}
	return fetcher.ReadCSV(path)
}

// rawExpectedColumns is the canonical column set a raw export should map
// onto: the cleaned output columns minus the ones the clean stage derives
// itself.
func rawExpectedColumns() []string {
	derived := map[string]struct{}{
		"contact_name": {},
		"email_domain": {},
	}
	var expected []string
	for _, c := range export.CleanedColumns() {
		if _, ok := derived[c]; ok {
			continue
		}
		expected = append(expected, c)
	}
	return expected
}

// loadLeads reads an input file, canonicalizes its header, warns once about
// missing expected columns (the fields stay empty on every record), and
// builds the in-memory working set.
func loadLeads(path string, mapping map[string]string, expected []string, stats *model.BatchStats) ([]*model.Lead, error) {
	table, err := loadTable(path)
	if err != nil {
		return nil, err
	}

	header := pipeline.MapHeader(table.Header, mapping)
	if missing := pipeline.MissingColumns(header, expected); len(missing) > 0 {
		stats.MissingColumns = missing
		zap.L().Warn("input is missing expected columns, filling with empty values",
			zap.Strings("columns", missing),
		)
	}

	leads := pipeline.BuildLeads(header, table.Rows)
	zap.L().Info("input loaded",
		zap.String("path", path),
		zap.Int("records", len(leads)),
	)
	return leads, nil
}
