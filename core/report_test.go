package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

var reportHeaders = []string{"Key", "Date of change", "Status", "Status [new]"}

// sampleTable covers the usual mix: ABC-1 completes, ABC-2 is still in
// progress, one row has a blank key and one has a broken date.
func sampleTable() schema.RawTable {
	return schema.RawTable{
		Headers: reportHeaders,
		Rows: [][]string{
			{"ABC-1", "2024-01-01", "", "Backlog"},
			{"ABC-1", "2024-01-03", "", "In Progress"},
			{"ABC-1", "2024-01-10", "", "Done"},
			{"ABC-2", "2024-01-05", "", "In Progress"},
			{"", "2024-01-06", "", "In Progress"},      // blank key
			{"ABC-9", "not a date", "", "In Progress"}, // broken date
		},
	}
}

// TestBuildReport runs the concrete scenarios from top to bottom.
func TestBuildReport(t *testing.T) {
	cfg := testConfig() // today = 2024-01-08

	report, err := BuildReport(sampleTable(), cfg)
	require.NoError(t, err)

	require.Len(t, report.Results, 2)

	// Completed issues sort first.
	first := report.Results[0]
	assert.Equal(t, "ABC-1", first.Key)
	assert.Equal(t, contract.CompletedValue, first.StatusLabel)
	assert.Equal(t, schema.CycleTimeMetric, first.MetricType)
	require.NotNil(t, first.Days)
	assert.Equal(t, 8, *first.Days)
	require.NotNil(t, first.FirstInProgress)
	assert.Equal(t, "2024-01-03", first.FirstInProgress.Format("2006-01-02"))
	require.NotNil(t, first.FirstDone)
	assert.Equal(t, "2024-01-10", first.FirstDone.Format("2006-01-02"))

	second := report.Results[1]
	assert.Equal(t, "ABC-2", second.Key)
	assert.Equal(t, contract.InProgressValue, second.StatusLabel)
	assert.Equal(t, schema.WorkItemAgeMetric, second.MetricType)
	require.NotNil(t, second.Days)
	assert.Equal(t, 4, *second.Days)

	// Row accounting: six read, two dropped, the dropped ones sampled.
	assert.Equal(t, 6, report.Stats.RowsRead)
	assert.Equal(t, 2, report.Stats.RowsSkipped)
	assert.Equal(t, 2, report.Stats.Issues)
	require.Len(t, report.Stats.SkippedSamples, 2)
	assert.Contains(t, report.Stats.SkippedSamples[0], "blank key")
	assert.Contains(t, report.Stats.SkippedSamples[1], "not a date")

	assert.Equal(t, []string{"BACKLOG", "DONE", "IN PROGRESS"}, report.Stats.DistinctStatuses)
	assert.Equal(t, "UTC", report.Timezone)
}

// TestBuildReportSchemaError: a missing mandatory column fails the whole run
// with zero output rows.
func TestBuildReportSchemaError(t *testing.T) {
	cfg := testConfig()
	table := schema.RawTable{
		Headers: []string{"Key", "Status"},
		Rows:    [][]string{{"ABC-1", "Done"}},
	}

	_, err := BuildReport(table, cfg)
	require.Error(t, err)

	var schemaErr *contract.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.Missing, "Date of change")
}

// TestBuildReportBlankKeyIsolated: the blank-key row must not leak into any
// other issue's computation.
func TestBuildReportBlankKeyIsolated(t *testing.T) {
	cfg := testConfig()

	withBlank, err := BuildReport(sampleTable(), cfg)
	require.NoError(t, err)

	clean := sampleTable()
	clean.Rows = clean.Rows[:4] // drop the blank-key and broken-date rows
	withoutBlank, err := BuildReport(clean, cfg)
	require.NoError(t, err)

	assert.Equal(t, withoutBlank.Results, withBlank.Results)
}

// TestBuildReportNotStartedPolicy: excluded by default, included with empty
// metrics when configured.
func TestBuildReportNotStartedPolicy(t *testing.T) {
	table := schema.RawTable{
		Headers: reportHeaders,
		Rows: [][]string{
			{"ABC-1", "2024-01-03", "", "In Progress"},
			{"NEW-1", "2024-01-02", "", "Backlog"}, // never starts
		},
	}

	cfg := testConfig()
	report, err := BuildReport(table, cfg)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "ABC-1", report.Results[0].Key)

	cfg.IncludeNotStarted = true
	report, err = BuildReport(table, cfg)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	// Not-started rows sort last and carry no metric.
	last := report.Results[1]
	assert.Equal(t, "NEW-1", last.Key)
	assert.Equal(t, contract.NotStartedValue, last.StatusLabel)
	assert.Equal(t, schema.NoMetric, last.MetricType)
	assert.Nil(t, last.Days)
}

// TestBuildReportNegativeCycleFlagged surfaces the clamped anomaly.
func TestBuildReportNegativeCycleFlagged(t *testing.T) {
	table := schema.RawTable{
		Headers: reportHeaders,
		Rows: [][]string{
			{"ODD-1", "2024-01-10", "", "In Progress"},
			{"ODD-1", "2024-01-05", "", "Done"}, // done before started
		},
	}

	cfg := testConfig()
	report, err := BuildReport(table, cfg)
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	require.NotNil(t, report.Results[0].Days)
	assert.Equal(t, 0, *report.Results[0].Days)
	assert.Equal(t, []string{"ODD-1"}, report.Stats.NegativeCycles)
}

// TestBuildReportAmbiguousAliasesSurfaced: overlap is reported, Done wins.
func TestBuildReportAmbiguousAliasesSurfaced(t *testing.T) {
	table := schema.RawTable{
		Headers: reportHeaders,
		Rows: [][]string{
			{"ABC-1", "2024-01-03", "", "Closed"},
		},
	}

	cfg := testConfig()
	cfg.InProgressAliases = schema.NewAliasSet([]string{"In Progress", "Closed"})

	report, err := BuildReport(table, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"CLOSED"}, report.Stats.AmbiguousStatuses)
	// Closed classified as Done, so the issue never started: excluded.
	assert.Empty(t, report.Results)
}

// TestBuildReportIdempotent: same table, same report, every time.
func TestBuildReportIdempotent(t *testing.T) {
	cfg := testConfig()
	first, err := BuildReport(sampleTable(), cfg)
	require.NoError(t, err)
	second, err := BuildReport(sampleTable(), cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestBuildReportLimit truncates after sorting.
func TestBuildReportLimit(t *testing.T) {
	cfg := testConfig()
	cfg.ResultLimit = 1

	report, err := BuildReport(sampleTable(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "ABC-1", report.Results[0].Key)
}

// TestCollectStatuses lists distinct values with counts and classes.
func TestCollectStatuses(t *testing.T) {
	cfg := testConfig()

	statuses, err := CollectStatuses(sampleTable(), cfg)
	require.NoError(t, err)

	require.Len(t, statuses, 3)
	assert.Equal(t, StatusCount{Value: "BACKLOG", Count: 1, Class: schema.OtherClass}, statuses[0])
	assert.Equal(t, StatusCount{Value: "DONE", Count: 1, Class: schema.DoneClass}, statuses[1])
	// Raw scan counts every cell, blank-key and broken-date rows included.
	assert.Equal(t, StatusCount{Value: "IN PROGRESS", Count: 4, Class: schema.InProgressClass}, statuses[2])
}
