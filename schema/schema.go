// Package schema has configs, models and shared constants for all parts of flowlens.
package schema

import (
	"sort"
	"strings"
	"time"
)

// RawTable is an uploaded table before any interpretation: the header row and
// every data row as plain strings. Both CSV and spreadsheet readers produce it.
type RawTable struct {
	Headers []string   // First row of the input file
	Rows    [][]string // Remaining rows, in file order
}

// ChangeEvent represents one status-change row after column normalization and
// row-level validation. Rows with a blank key or an unparsable change date
// never become ChangeEvents.
type ChangeEvent struct {
	Key       string    // Issue key, e.g. "ABC-1"
	ChangedAt time.Time // When the status change happened
	Status    string    // Raw value of the Status column (may be empty)
	StatusNew string    // Raw value of the Status [new] column (preferred when set)
	Seq       int       // Original row position, used as a sort tie-break
}

// EffectiveStatus returns the status value used for classification: the new
// status when present, otherwise the plain status column.
func (e ChangeEvent) EffectiveStatus() string {
	if strings.TrimSpace(e.StatusNew) != "" {
		return e.StatusNew
	}
	return e.Status
}

// IssueHistory holds the first-occurrence timestamps extracted from one
// issue's chronological change history. Once set, neither field is ever
// overwritten by later re-entries into the same state.
type IssueHistory struct {
	Key             string
	FirstInProgress *time.Time
	FirstDone       *time.Time
}

// MetricResult is one output row of the report.
type MetricResult struct {
	Key             string     `json:"key"`
	StatusLabel     string     `json:"status"`
	MetricType      MetricType `json:"metric_type,omitempty"`
	Days            *int       `json:"days,omitempty"`
	FirstInProgress *time.Time `json:"first_in_progress,omitempty"`
	FirstDone       *time.Time `json:"first_done,omitempty"`
}

// RunStats captures row accounting and non-fatal warnings from a single run.
// Every run starts from a zero RunStats; nothing carries over between runs.
type RunStats struct {
	RowsRead          int      `json:"rows_read"`
	RowsSkipped       int      `json:"rows_skipped"`
	Issues            int      `json:"issues"`
	SkippedSamples    []string `json:"skipped_samples,omitempty"`
	AmbiguousStatuses []string `json:"ambiguous_statuses,omitempty"`
	NegativeCycles    []string `json:"negative_cycles,omitempty"`
	DistinctStatuses  []string `json:"distinct_statuses,omitempty"`
}

// Report bundles the computed results with their run accounting for JSON and
// MCP consumers.
type Report struct {
	Results     []MetricResult `json:"results"`
	Stats       RunStats       `json:"stats"`
	Timezone    string         `json:"timezone"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// AliasSet is a normalized lookup set of raw status strings. Matching is an
// exact comparison on the trimmed, upper-cased value; substrings never match.
type AliasSet struct {
	values map[string]struct{}
}

// NewAliasSet builds an AliasSet from raw alias strings, trimming whitespace
// and upper-casing each entry. Empty entries are dropped.
func NewAliasSet(aliases []string) AliasSet {
	values := make(map[string]struct{}, len(aliases))
	for _, a := range aliases {
		norm := NormalizeStatus(a)
		if norm != "" {
			values[norm] = struct{}{}
		}
	}
	return AliasSet{values: values}
}

// Has reports whether the raw status value belongs to the set.
func (s AliasSet) Has(raw string) bool {
	_, ok := s.values[NormalizeStatus(raw)]
	return ok
}

// Values returns the normalized aliases in sorted order.
func (s AliasSet) Values() []string {
	out := make([]string, 0, len(s.values))
	for v := range s.values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of aliases in the set.
func (s AliasSet) Len() int {
	return len(s.values)
}

// NormalizeStatus canonicalizes a raw status value for matching.
func NormalizeStatus(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
