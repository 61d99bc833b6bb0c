package core

import (
	"strings"

	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

// ColumnMap holds the resolved position of each logical column in the input
// table. A value of -1 means the column is absent (only legal for the two
// status columns, and never for both at once).
type ColumnMap struct {
	Key        int
	ChangeDate int
	Status     int
	StatusNew  int
}

// NormalizeColumns resolves the input header row to the logical columns
// {Key, Date of change, Status, Status [new]}, matching case-insensitively
// after trimming. Key and Date of change are mandatory; at least one of the
// two status columns must resolve. On failure it returns a *contract.SchemaError
// listing missing logical columns against the headers actually found.
// Extra columns are ignored. Pure mapping, no side effects.
func NormalizeColumns(headers []string) (ColumnMap, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		if _, seen := index[norm]; !seen {
			index[norm] = i
		}
	}

	lookup := func(logical string) int {
		if i, ok := index[strings.ToLower(logical)]; ok {
			return i
		}
		return -1
	}

	cm := ColumnMap{
		Key:        lookup(schema.ColumnKey),
		ChangeDate: lookup(schema.ColumnChangeDate),
		Status:     lookup(schema.ColumnStatus),
		StatusNew:  lookup(schema.ColumnStatusNew),
	}

	var missing []string
	if cm.Key < 0 {
		missing = append(missing, schema.ColumnKey)
	}
	if cm.ChangeDate < 0 {
		missing = append(missing, schema.ColumnChangeDate)
	}
	if cm.Status < 0 && cm.StatusNew < 0 {
		missing = append(missing, schema.ColumnStatus+" or "+schema.ColumnStatusNew)
	}
	if len(missing) > 0 {
		return ColumnMap{}, &contract.SchemaError{Missing: missing, Found: headers}
	}
	return cm, nil
}

// cell safely reads a column from a row, tolerating short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
