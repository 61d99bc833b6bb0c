// Package core implements the flow metric pipeline: header normalization,
// status classification, per-issue history reduction and day arithmetic.
package core

import (
	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

// Classify maps a raw status value onto its canonical class using the
// configured alias sets. Matching is exact on the trimmed, upper-cased value.
// A value present in both sets classifies as Done: terminal states must not
// be reclassified as transitional, regardless of configuration order.
// Empty or unmatched values are Other.
func Classify(raw string, cfg *contract.Config) schema.StatusClass {
	norm := schema.NormalizeStatus(raw)
	if norm == "" {
		return schema.OtherClass
	}
	switch {
	case cfg.DoneAliases.Has(norm):
		return schema.DoneClass
	case cfg.InProgressAliases.Has(norm):
		return schema.InProgressClass
	default:
		return schema.OtherClass
	}
}

// AmbiguousAliases returns the alias values configured in both sets, sorted.
// These always resolve to Done; surfacing them lets users clean up their
// configuration.
func AmbiguousAliases(cfg *contract.Config) []string {
	var out []string
	for _, v := range cfg.DoneAliases.Values() {
		if cfg.InProgressAliases.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
