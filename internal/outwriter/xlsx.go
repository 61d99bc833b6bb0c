package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

// Sheet names in the exported workbook.
const (
	MetricsSheet = "Flow Metrics"
	RunInfoSheet = "Run Info"
)

// BuildReportWorkbook renders the report into an in-memory workbook with a
// metrics sheet and a run-info sheet. The caller owns closing the file.
func BuildReportWorkbook(report schema.Report, cfg *contract.Config) (*excelize.File, error) {
	wb := excelize.NewFile()

	// The default sheet becomes the metrics sheet.
	if err := wb.SetSheetName("Sheet1", MetricsSheet); err != nil {
		return nil, fmt.Errorf("failed to name metrics sheet: %w", err)
	}

	bold, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := []any{"Key", "Status", "Metric", "Days", "First In Progress", "First Done"}
	if err := wb.SetSheetRow(MetricsSheet, "A1", &header); err != nil {
		return nil, err
	}
	if err := wb.SetCellStyle(MetricsSheet, "A1", "F1", bold); err != nil {
		return nil, err
	}

	for i, r := range report.Results {
		row := []any{
			r.Key,
			r.StatusLabel,
			string(r.MetricType),
			nil,
			dateFmt(r.FirstInProgress, cfg.Location),
			dateFmt(r.FirstDone, cfg.Location),
		}
		if r.Days != nil {
			row[3] = *r.Days
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := wb.SetSheetRow(MetricsSheet, cellRef, &row); err != nil {
			return nil, err
		}
	}

	if err := writeRunInfoSheet(wb, report, bold); err != nil {
		return nil, err
	}
	return wb, nil
}

// writeRunInfoSheet adds the run accounting so an exported workbook carries
// its own provenance.
func writeRunInfoSheet(wb *excelize.File, report schema.Report, headerStyle int) error {
	if _, err := wb.NewSheet(RunInfoSheet); err != nil {
		return err
	}

	stats := report.Stats
	rows := [][]any{
		{"Generated at", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Timezone", report.Timezone},
		{"Rows read", stats.RowsRead},
		{"Rows skipped", stats.RowsSkipped},
		{"Issues", stats.Issues},
		{"Distinct statuses", strings.Join(stats.DistinctStatuses, ", ")},
	}
	if len(stats.SkippedSamples) > 0 {
		rows = append(rows, []any{"Skipped samples", strings.Join(stats.SkippedSamples, "; ")})
	}
	if len(stats.AmbiguousStatuses) > 0 {
		rows = append(rows, []any{"Ambiguous aliases (Done wins)", strings.Join(stats.AmbiguousStatuses, ", ")})
	}
	if len(stats.NegativeCycles) > 0 {
		rows = append(rows, []any{"Clamped negative cycles", strings.Join(stats.NegativeCycles, ", ")})
	}

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(RunInfoSheet, cellRef, &row); err != nil {
			return err
		}
		if err := wb.SetCellStyle(RunInfoSheet, cellRef, cellRef, headerStyle); err != nil {
			return err
		}
	}
	return nil
}

// WriteReportXLSX writes the workbook to a file on disk.
func WriteReportXLSX(report schema.Report, cfg *contract.Config, outputPath string) error {
	wb, err := BuildReportWorkbook(report, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = wb.Close() }()

	if err := wb.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}

// StreamReportXLSX writes the workbook to w, for HTTP downloads.
func StreamReportXLSX(report schema.Report, cfg *contract.Config, w io.Writer) error {
	wb, err := BuildReportWorkbook(report, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = wb.Close() }()

	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("failed to stream spreadsheet: %w", err)
	}
	return nil
}
