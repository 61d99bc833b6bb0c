package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/internal/parquet"
	"github.com/agilekit/flowlens/schema"
)

// reportCSVHeader is the column set shared by the CSV and spreadsheet exports.
var reportCSVHeader = []string{"key", "status", "metric", "days", "first_in_progress", "first_done"}

// WriteReport outputs the computed report, dispatching on the configured format.
func (ow *OutWriter) WriteReport(report schema.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, reportCSVHeader, func(cw *csv.Writer) error {
				return writeReportCSVRows(cw, report, cfg)
			})
		}, "CSV")
	case schema.XLSXOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("xlsx output requires --output-file")
		}
		if err := WriteReportXLSX(report, cfg, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote spreadsheet to %s\n", cfg.OutputFile)
		return nil
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteReportParquet(report, cfg.Location, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(report, cfg, w)
		}, "table")
	}
}

// writeReportCSVRows writes the metric rows in CSV format.
func writeReportCSVRows(w *csv.Writer, report schema.Report, cfg *contract.Config) error {
	for _, r := range report.Results {
		row := []string{
			r.Key,
			r.StatusLabel,
			string(r.MetricType),
			daysFmt(r.Days),
			dateFmt(r.FirstInProgress, cfg.Location),
			dateFmt(r.FirstDone, cfg.Location),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writeReportTable generates and writes the human-readable table.
func writeReportTable(report schema.Report, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Key", "Status", "Metric", "Days", "In Progress On", "Done On"}
	table.Header(headers)

	// 2. Left-align every column; keys and dates read better ragged-right
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	// 3. Populate Rows
	maxKeyWidth := getMaxTableKeyWidth(cfg)
	var data [][]string
	for _, r := range report.Results {
		label := r.StatusLabel
		if cfg.UseColors {
			label = contract.GetColorLabel(r.StatusLabel)
		}
		row := []string{
			truncateKey(r.Key, maxKeyWidth),
			label,
			string(r.MetricType),
			daysFmt(r.Days),
			dateFmt(r.FirstInProgress, cfg.Location),
			dateFmt(r.FirstDone, cfg.Location),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	return writeRunSummary(writer, report)
}

// writeRunSummary prints the row accounting and warnings below the table.
func writeRunSummary(writer io.Writer, report schema.Report) error {
	stats := report.Stats
	if _, err := fmt.Fprintf(writer, "Showing %d issues from %d rows (skipped: %d). Timezone: %s, today: %s\n",
		len(report.Results), stats.RowsRead, stats.RowsSkipped,
		report.Timezone, report.GeneratedAt.Format("2006-01-02")); err != nil {
		return err
	}
	if len(stats.SkippedSamples) > 0 {
		if _, err := fmt.Fprintf(writer, "Skipped rows (first %d): %s\n",
			len(stats.SkippedSamples), strings.Join(stats.SkippedSamples, "; ")); err != nil {
			return err
		}
	}
	if len(stats.AmbiguousStatuses) > 0 {
		if _, err := fmt.Fprintf(writer, "Statuses in both alias lists (treated as Done): %s\n",
			strings.Join(stats.AmbiguousStatuses, ", ")); err != nil {
			return err
		}
	}
	if len(stats.NegativeCycles) > 0 {
		if _, err := fmt.Fprintf(writer, "Issues done before they started (cycle time clamped to 0): %s\n",
			strings.Join(stats.NegativeCycles, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// daysFmt renders an optional day count.
func daysFmt(days *int) string {
	if days == nil {
		return ""
	}
	return strconv.Itoa(*days)
}
