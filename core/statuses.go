package core

import (
	"sort"

	"github.com/samber/lo"

	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

// StatusCount is one distinct raw status value with its occurrence count and
// the classification it would receive under the current alias configuration.
type StatusCount struct {
	Value string             `json:"value"`
	Count int                `json:"count"`
	Class schema.StatusClass `json:"class"`
}

// CollectStatuses scans the table and returns every distinct status value
// found in the Status and Status [new] columns, normalized, with counts and
// their classification. Useful for deciding which aliases to configure before
// running a report.
func CollectStatuses(table schema.RawTable, cfg *contract.Config) ([]StatusCount, error) {
	columns, err := NormalizeColumns(table.Headers)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, row := range table.Rows {
		for _, idx := range []int{columns.Status, columns.StatusNew} {
			if norm := schema.NormalizeStatus(cell(row, idx)); norm != "" {
				counts[norm]++
			}
		}
	}

	out := lo.MapToSlice(counts, func(value string, count int) StatusCount {
		return StatusCount{Value: value, Count: count, Class: Classify(value, cfg)}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out, nil
}
