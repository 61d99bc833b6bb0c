package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/agilekit/flowlens/schema"
)

// Overrides carries per-request settings layered over a validated base
// Config. The web UI and the MCP tools both accept these, so one upload or
// tool call can use its own timezone and vocabulary without touching the
// server-wide configuration.
type Overrides struct {
	Timezone          string
	InProgress        string
	Done              string
	Today             string
	IncludeNotStarted *bool
	Limit             *int
}

// ApplyOverrides clones the base config and validates each supplied override
// on the clone. The base config is never mutated, keeping concurrent requests
// isolated from each other.
func ApplyOverrides(base *Config, o Overrides) (*Config, error) {
	cfg := base.Clone()

	if tz := strings.TrimSpace(o.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
		}
		cfg.Location = loc
		cfg.LocationID = tz
		// Re-anchor a wall-clock today in the requested zone; a pinned
		// today is reparsed below if also supplied.
		if strings.TrimSpace(o.Today) == "" {
			cfg.Today = time.Now().In(loc)
		}
	}

	if raw := strings.TrimSpace(o.InProgress); raw != "" {
		set := schema.NewAliasSet(SplitList(raw))
		if set.Len() == 0 {
			return nil, fmt.Errorf("in-progress alias list resolved to no usable values")
		}
		cfg.InProgressAliases = set
	}
	if raw := strings.TrimSpace(o.Done); raw != "" {
		set := schema.NewAliasSet(SplitList(raw))
		if set.Len() == 0 {
			return nil, fmt.Errorf("done alias list resolved to no usable values")
		}
		cfg.DoneAliases = set
	}

	if raw := strings.TrimSpace(o.Today); raw != "" {
		t, err := ParseChangeDate(raw, cfg.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid today value: %w", err)
		}
		cfg.Today = t
	}

	if o.IncludeNotStarted != nil {
		cfg.IncludeNotStarted = *o.IncludeNotStarted
	}
	if o.Limit != nil {
		if *o.Limit < 0 {
			return nil, fmt.Errorf("limit cannot be negative (received %d)", *o.Limit)
		}
		cfg.ResultLimit = *o.Limit
	}

	return cfg, nil
}
