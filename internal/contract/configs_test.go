package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agilekit/flowlens/schema"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		InputPathStr: "history.csv",
		Output:       "text",
		Color:        "no",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	assert.Equal(t, "history.csv", cfg.InputPath)
	assert.Equal(t, DefaultTimezone, cfg.LocationID)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.True(t, cfg.InProgressAliases.Has("IN PROGRESS"))
	assert.True(t, cfg.DoneAliases.Has("DONE"))
	assert.True(t, cfg.DoneAliases.Has("RESOLVED"))
	assert.False(t, cfg.Today.IsZero())
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, 0, cfg.ResultLimit)
	assert.Equal(t, DefaultServeAddr, cfg.ServeAddr)
}

func TestProcessAndValidateCustomInputs(t *testing.T) {
	input := validRawInput()
	input.Timezone = "America/New_York"
	input.InProgress = "Doing, In Review"
	input.Done = "Shipped"
	input.Today = "2024-01-08"
	input.Limit = 25
	input.Output = "JSON"
	input.Color = "yes"
	input.Addr = ":9999"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "America/New_York", cfg.LocationID)
	assert.True(t, cfg.InProgressAliases.Has("DOING"))
	assert.True(t, cfg.InProgressAliases.Has("IN REVIEW"))
	assert.False(t, cfg.InProgressAliases.Has("IN PROGRESS"))
	assert.True(t, cfg.DoneAliases.Has("SHIPPED"))
	assert.Equal(t, 2024, cfg.Today.Year())
	assert.Equal(t, "America/New_York", cfg.Today.Location().String())
	assert.Equal(t, 25, cfg.ResultLimit)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, ":9999", cfg.ServeAddr)
}

func TestProcessAndValidateErrors(t *testing.T) {
	mutate := map[string]func(*ConfigRawInput){
		"bad timezone":  func(in *ConfigRawInput) { in.Timezone = "Mars/Phobos" },
		"bad today":     func(in *ConfigRawInput) { in.Today = "sometime" },
		"bad color":     func(in *ConfigRawInput) { in.Color = "maybe" },
		"bad limit":     func(in *ConfigRawInput) { in.Limit = -3 },
		"bad output":    func(in *ConfigRawInput) { in.Output = "yaml" },
		// A supplied alias list that splits to nothing must error, never
		// fall back to the defaults.
		"empty done aliases":        func(in *ConfigRawInput) { in.Done = " , ," },
		"empty in-progress aliases": func(in *ConfigRawInput) { in.InProgress = " ,, " },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			input := validRawInput()
			fn(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

func TestCloneIsolation(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	clone := cfg.Clone()
	clone.ResultLimit = 99
	clone.LocationID = "Asia/Tokyo"

	assert.Equal(t, 0, cfg.ResultLimit)
	assert.Equal(t, DefaultTimezone, cfg.LocationID)
}

func TestApplyOverrides(t *testing.T) {
	base := &Config{}
	require.NoError(t, ProcessAndValidate(base, validRawInput()))

	include := true
	limit := 10
	cfg, err := ApplyOverrides(base, Overrides{
		Timezone:          "Europe/Paris",
		InProgress:        "Doing",
		Done:              "Shipped",
		Today:             "2024-06-01",
		IncludeNotStarted: &include,
		Limit:             &limit,
	})
	require.NoError(t, err)

	assert.Equal(t, "Europe/Paris", cfg.LocationID)
	assert.True(t, cfg.InProgressAliases.Has("DOING"))
	assert.True(t, cfg.DoneAliases.Has("SHIPPED"))
	assert.Equal(t, "2024-06-01", cfg.Today.Format("2006-01-02"))
	assert.True(t, cfg.IncludeNotStarted)
	assert.Equal(t, 10, cfg.ResultLimit)

	// Base stays untouched.
	assert.Equal(t, DefaultTimezone, base.LocationID)
	assert.True(t, base.InProgressAliases.Has("IN PROGRESS"))
	assert.False(t, base.IncludeNotStarted)
	assert.Equal(t, 0, base.ResultLimit)
}

func TestApplyOverridesEmptyKeepsBase(t *testing.T) {
	base := &Config{}
	require.NoError(t, ProcessAndValidate(base, validRawInput()))

	cfg, err := ApplyOverrides(base, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, base.LocationID, cfg.LocationID)
	assert.Equal(t, base.InProgressAliases, cfg.InProgressAliases)
	assert.Equal(t, base.Today, cfg.Today)
}

func TestApplyOverridesErrors(t *testing.T) {
	base := &Config{}
	require.NoError(t, ProcessAndValidate(base, validRawInput()))

	negative := -1
	for name, o := range map[string]Overrides{
		"bad timezone":   {Timezone: "Nowhere/City"},
		"bad today":      {Today: "later"},
		"empty aliases":  {Done: " ,, "},
		"negative limit": {Limit: &negative},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ApplyOverrides(base, o)
			assert.Error(t, err)
		})
	}
}
