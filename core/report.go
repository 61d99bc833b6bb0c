package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

// BuildReport runs the full pipeline over one uploaded table: normalize the
// header row, parse and filter the change rows, reduce per-issue histories,
// and apply the day arithmetic. The returned report is complete and
// self-contained; nothing is cached or shared between invocations.
//
// Row-level problems (blank key, unparsable date) skip the row and are
// counted, never failing the run. Only an unresolvable header row is fatal.
func BuildReport(table schema.RawTable, cfg *contract.Config) (schema.Report, error) {
	columns, err := NormalizeColumns(table.Headers)
	if err != nil {
		return schema.Report{}, err
	}

	events, stats := parseRows(table.Rows, columns, cfg)
	stats.AmbiguousStatuses = AmbiguousAliases(cfg)

	histories := ReduceHistories(events, cfg)
	stats.Issues = len(histories)

	results := make([]schema.MetricResult, 0, len(histories))
	for _, history := range histories {
		calc := CalculateMetric(history, cfg)
		if calc.NegativeCycle {
			stats.NegativeCycles = append(stats.NegativeCycles, history.Key)
		}
		if calc.Result.StatusLabel == contract.NotStartedValue && !cfg.IncludeNotStarted {
			continue
		}
		results = append(results, calc.Result)
	}

	sortResults(results)
	if cfg.ResultLimit > 0 && len(results) > cfg.ResultLimit {
		results = results[:cfg.ResultLimit]
	}

	return schema.Report{
		Results:     results,
		Stats:       stats,
		Timezone:    cfg.LocationID,
		GeneratedAt: cfg.Today,
	}, nil
}

// parseRows turns raw table rows into ChangeEvents, skipping rows that are
// missing a key or carry an unparsable change date. A handful of skipped rows
// are sampled for display so users can see what was dropped and why.
func parseRows(rows [][]string, columns ColumnMap, cfg *contract.Config) ([]schema.ChangeEvent, schema.RunStats) {
	var stats schema.RunStats
	statuses := make(map[string]struct{})

	events := make([]schema.ChangeEvent, 0, len(rows))
	for i, row := range rows {
		stats.RowsRead++

		key := strings.TrimSpace(cell(row, columns.Key))
		rawDate := cell(row, columns.ChangeDate)

		skip := func(reason string) {
			stats.RowsSkipped++
			if len(stats.SkippedSamples) < contract.MaxSkippedSample {
				// Row numbers are 1-based and account for the header row.
				stats.SkippedSamples = append(stats.SkippedSamples, fmt.Sprintf("row %d: %s", i+2, reason))
			}
		}

		if key == "" {
			skip("blank key")
			continue
		}
		changedAt, err := contract.ParseChangeDate(rawDate, cfg.Location)
		if err != nil {
			skip(err.Error())
			continue
		}

		ev := schema.ChangeEvent{
			Key:       key,
			ChangedAt: changedAt,
			Status:    cell(row, columns.Status),
			StatusNew: cell(row, columns.StatusNew),
			Seq:       i,
		}
		events = append(events, ev)

		for _, raw := range []string{ev.Status, ev.StatusNew} {
			if norm := schema.NormalizeStatus(raw); norm != "" {
				statuses[norm] = struct{}{}
			}
		}
	}

	stats.DistinctStatuses = lo.Keys(statuses)
	sort.Strings(stats.DistinctStatuses)
	return events, stats
}

// sortResults orders the report rows the way the exported table reads best:
// completed issues first, then aging ones, then (when included) not-started
// ones, with keys ascending inside each group.
func sortResults(results []schema.MetricResult) {
	rank := func(m schema.MetricType) int {
		switch m {
		case schema.CycleTimeMetric:
			return 0
		case schema.WorkItemAgeMetric:
			return 1
		default:
			return 2
		}
	}
	sort.Slice(results, func(i, j int) bool {
		ri, rj := rank(results[i].MetricType), rank(results[j].MetricType)
		if ri != rj {
			return ri < rj
		}
		return results[i].Key < results[j].Key
	})
}
