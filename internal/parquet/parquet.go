// Package parquet exports the computed flow metrics to Parquet files using
// github.com/parquet-go/parquet-go, for warehouse or notebook ingestion.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/agilekit/flowlens/schema"
)

// MetricRow is the Parquet projection of one report row.
type MetricRow struct {
	// IssueKey is the issue identifier, e.g. "ABC-1"
	IssueKey string `parquet:"issue_key,snappy"`

	// Status is the derived lifecycle label (Completed / In Progress / Not Started)
	Status string `parquet:"status,snappy"`

	// MetricType names the day metric carried by this row (nullable for Not Started)
	MetricType *string `parquet:"metric_type,optional,snappy"`

	// Days is the inclusive day count for the metric (nullable)
	Days *int32 `parquet:"days,optional,snappy"`

	// FirstInProgress is when the issue first entered an In Progress status (nullable)
	FirstInProgress *time.Time `parquet:"first_in_progress,optional,snappy"`

	// FirstDone is when the issue first entered a Done status (nullable)
	FirstDone *time.Time `parquet:"first_done,optional,snappy"`

	// GeneratedAt is the injected "today" the run was computed against
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// Timezone is the IANA zone used for calendar-day arithmetic
	Timezone string `parquet:"timezone,snappy"`
}

// BuildMetricRows converts a report into its Parquet projection.
func BuildMetricRows(report schema.Report, loc *time.Location) []MetricRow {
	rows := make([]MetricRow, 0, len(report.Results))
	for _, r := range report.Results {
		row := MetricRow{
			IssueKey:    r.Key,
			Status:      r.StatusLabel,
			GeneratedAt: report.GeneratedAt,
			Timezone:    report.Timezone,
		}
		if r.MetricType != schema.NoMetric {
			mt := string(r.MetricType)
			row.MetricType = &mt
		}
		if r.Days != nil {
			d := int32(*r.Days)
			row.Days = &d
		}
		if r.FirstInProgress != nil {
			t := r.FirstInProgress.In(loc)
			row.FirstInProgress = &t
		}
		if r.FirstDone != nil {
			t := r.FirstDone.In(loc)
			row.FirstDone = &t
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteReportParquet writes the report rows to a Parquet file.
func WriteReportParquet(report schema.Report, loc *time.Location, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the MetricRow struct tags.
	writer := parquet.NewGenericWriter[MetricRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(BuildMetricRows(report, loc)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
