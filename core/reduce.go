package core

import (
	"sort"

	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

// ReduceHistories groups change events by issue key and extracts the first
// timestamp at which each issue entered an In Progress- or Done-classified
// status. Events are scanned in chronological order with the original row
// position breaking timestamp ties, so the reduction is deterministic no
// matter how the input rows were ordered. First occurrence wins: later
// re-entries into a state never move an already recorded timestamp.
func ReduceHistories(events []schema.ChangeEvent, cfg *contract.Config) []schema.IssueHistory {
	byKey := make(map[string][]schema.ChangeEvent)
	var keys []string
	for _, ev := range events {
		if _, seen := byKey[ev.Key]; !seen {
			keys = append(keys, ev.Key)
		}
		byKey[ev.Key] = append(byKey[ev.Key], ev)
	}
	sort.Strings(keys)

	histories := make([]schema.IssueHistory, 0, len(keys))
	for _, key := range keys {
		histories = append(histories, reduceIssue(key, byKey[key], cfg))
	}
	return histories
}

// reduceIssue performs the single-issue scan.
func reduceIssue(key string, events []schema.ChangeEvent, cfg *contract.Config) schema.IssueHistory {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ChangedAt.Equal(events[j].ChangedAt) {
			return events[i].Seq < events[j].Seq
		}
		return events[i].ChangedAt.Before(events[j].ChangedAt)
	})

	history := schema.IssueHistory{Key: key}
	for _, ev := range events {
		switch Classify(ev.EffectiveStatus(), cfg) {
		case schema.InProgressClass:
			if history.FirstInProgress == nil {
				at := ev.ChangedAt
				history.FirstInProgress = &at
			}
		case schema.DoneClass:
			if history.FirstDone == nil {
				at := ev.ChangedAt
				history.FirstDone = &at
			}
		}
	}
	return history
}
