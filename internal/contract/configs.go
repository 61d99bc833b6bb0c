package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/agilekit/flowlens/schema"
)

// Default values for configuration.
const (
	DefaultTimezone  = "UTC"
	DefaultServeAddr = ":8080"
	MaxSkippedSample = 5
)

// Config holds the runtime configuration for one run.
// This struct remains the "final, validated" config. Every run gets its own
// Config value; nothing here is shared mutable state between invocations.
type Config struct {
	InputPath string

	Location   *time.Location // Resolved timezone for calendar arithmetic
	LocationID string         // IANA name, kept for display and export

	InProgressAliases schema.AliasSet
	DoneAliases       schema.AliasSet

	// Today is the injected "now" used for work item age. Tests and the
	// --today flag pin it; otherwise it's the wall clock at validation time.
	Today time.Time

	IncludeNotStarted bool
	ResultLimit       int // 0 means unlimited

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	ServeAddr string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Timezone          string `mapstructure:"timezone"`
	InProgress        string `mapstructure:"in-progress"`
	Done              string `mapstructure:"done"`
	Today             string `mapstructure:"today"`
	IncludeNotStarted bool   `mapstructure:"include-not-started"`
	Limit             int    `mapstructure:"limit"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Width             int    `mapstructure:"width"`
	Color             string `mapstructure:"color"`

	// --- Fields from serveCmd.Flags() ---
	Addr string `mapstructure:"addr"`
}

// Clone returns a deep copy of the Config struct. Request-scoped consumers
// (web handlers, MCP tools) clone the base config before applying overrides
// so concurrent runs never share state.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate populates cfg from the raw input, validating every field.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := processTimezone(cfg, input); err != nil {
		return err
	}
	if err := processAliases(cfg, input); err != nil {
		return err
	}
	if err := processToday(cfg, input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// processTimezone resolves the IANA timezone name.
func processTimezone(cfg *Config, input *ConfigRawInput) error {
	name := strings.TrimSpace(input.Timezone)
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	cfg.Location = loc
	cfg.LocationID = name
	return nil
}

// processAliases builds the alias sets from the comma-separated inputs.
// Defaults apply only when an input is blank; a supplied list that splits to
// nothing is a user error, not a fallback. Overlap between the two sets is
// allowed here; classification resolves it deterministically with Done
// taking precedence.
func processAliases(cfg *Config, input *ConfigRawInput) error {
	inProgress := SplitList(input.InProgress)
	if strings.TrimSpace(input.InProgress) == "" {
		inProgress = schema.DefaultInProgressAliases
	}
	done := SplitList(input.Done)
	if strings.TrimSpace(input.Done) == "" {
		done = schema.DefaultDoneAliases
	}

	cfg.InProgressAliases = schema.NewAliasSet(inProgress)
	cfg.DoneAliases = schema.NewAliasSet(done)

	if cfg.InProgressAliases.Len() == 0 {
		return fmt.Errorf("in-progress alias list resolved to no usable values")
	}
	if cfg.DoneAliases.Len() == 0 {
		return fmt.Errorf("done alias list resolved to no usable values")
	}
	return nil
}

// processToday resolves the injected "today" used for work item age.
func processToday(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.Today) == "" {
		cfg.Today = time.Now().In(cfg.Location)
		return nil
	}
	t, err := ParseChangeDate(input.Today, cfg.Location)
	if err != nil {
		return fmt.Errorf("invalid --today value: %w", err)
	}
	cfg.Today = t
	return nil
}

// validateSimpleInputs processes and validates the remaining fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = input.InputPathStr
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.IncludeNotStarted = input.IncludeNotStarted

	// --- 1. Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 2. ResultLimit Validation ---
	if input.Limit < 0 {
		return fmt.Errorf("limit cannot be negative (received %d)", input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, xlsx, parquet", input.Output)
	}

	// --- 4. Serve address ---
	cfg.ServeAddr = input.Addr
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = DefaultServeAddr
	}
	return nil
}
