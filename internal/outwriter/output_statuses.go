package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/agilekit/flowlens/core"
	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

// WriteStatuses outputs the distinct status values found in an input file.
func (ow *OutWriter) WriteStatuses(statuses []core.StatusCount, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, statuses)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"status", "count", "class"}, func(cw *csv.Writer) error {
				for _, s := range statuses {
					if err := cw.Write([]string{s.Value, strconv.Itoa(s.Count), string(s.Class)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatusesTable(statuses, w)
		}, "table")
	}
}

// writeStatusesTable renders the human-readable status listing.
func writeStatusesTable(statuses []core.StatusCount, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Status", "Count", "Class"})

	var data [][]string
	for _, s := range statuses {
		data = append(data, []string{s.Value, strconv.Itoa(s.Count), string(s.Class)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "%d distinct status values\n", len(statuses))
	return err
}
