package core

import (
	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

// CalcResult pairs a metric row with the anomaly flag raised while computing it.
type CalcResult struct {
	Result        schema.MetricResult
	NegativeCycle bool // Done date fell before the In Progress date
}

// CalculateMetric applies the day-arithmetic rules to one issue history.
// All arithmetic happens on calendar dates in the configured timezone, and
// both boundary days count: an issue started and finished on the same day has
// a cycle time of 1, not 0.
//
//   - No first In Progress: the issue is Not Started and carries no metric.
//   - First In Progress and first Done: cycle time = days(done-inprog)+1.
//   - First In Progress only: age = days(today-inprog)+1 with the injected today.
//
// A Done date before the In Progress date is anomalous input; the day count
// clamps to 0 and the row is flagged rather than failing the run.
func CalculateMetric(history schema.IssueHistory, cfg *contract.Config) CalcResult {
	result := schema.MetricResult{
		Key:             history.Key,
		FirstInProgress: history.FirstInProgress,
		FirstDone:       history.FirstDone,
	}

	if history.FirstInProgress == nil {
		result.StatusLabel = contract.NotStartedValue
		result.MetricType = schema.NoMetric
		return CalcResult{Result: result}
	}

	if history.FirstDone != nil {
		days := contract.DaysBetween(*history.FirstInProgress, *history.FirstDone, cfg.Location) + 1
		negative := days < 1
		if negative {
			days = 0
		}
		result.StatusLabel = contract.CompletedValue
		result.MetricType = schema.CycleTimeMetric
		result.Days = &days
		return CalcResult{Result: result, NegativeCycle: negative}
	}

	days := contract.DaysBetween(*history.FirstInProgress, cfg.Today, cfg.Location) + 1
	if days < 0 {
		// Today pinned before the issue started; clamp rather than report
		// a negative age.
		days = 0
	}
	result.StatusLabel = contract.InProgressValue
	result.MetricType = schema.WorkItemAgeMetric
	result.Days = &days
	return CalcResult{Result: result}
}
