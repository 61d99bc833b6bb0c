// Package tabfile reads tabular input files (CSV and Excel spreadsheets)
// into the neutral RawTable form consumed by the core pipeline.
package tabfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agilekit/flowlens/schema"
)

// Read loads the file at path, dispatching on its extension.
// Supported: .csv, .xlsx, .xlsm.
func Read(path string) (schema.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return schema.RawTable{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadReader(f, path)
}

// ReadReader loads tabular data from r, using filename only to pick the
// format. Web uploads use this directly so request bodies never touch disk.
func ReadReader(r io.Reader, filename string) (schema.RawTable, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx", ".xlsm":
		return readExcel(r)
	default:
		return schema.RawTable{}, fmt.Errorf("unsupported input format %q (expected .csv, .xlsx or .xlsm)", filepath.Ext(filename))
	}
}

// readCSV parses CSV content. Short rows are tolerated; the normalizer treats
// missing cells as empty.
func readCSV(r io.Reader) (schema.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Exports often have ragged trailing cells

	records, err := reader.ReadAll()
	if err != nil {
		return schema.RawTable{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return schema.RawTable{}, fmt.Errorf("input file is empty")
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF") // Excel-produced CSVs carry a BOM
	}
	return schema.RawTable{Headers: headers, Rows: records[1:]}, nil
}

// readExcel parses the first sheet of an Excel workbook.
func readExcel(r io.Reader) (schema.RawTable, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return schema.RawTable{}, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return schema.RawTable{}, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return schema.RawTable{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return schema.RawTable{}, fmt.Errorf("sheet %q is empty", sheets[0])
	}
	return schema.RawTable{Headers: rows[0], Rows: rows[1:]}, nil
}
