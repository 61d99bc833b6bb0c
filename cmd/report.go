package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agilekit/flowlens/core"
	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/internal/outwriter"
	"github.com/agilekit/flowlens/internal/tabfile"
)

// reportCmd computes the flow metrics report for one input file.
var reportCmd = &cobra.Command{
	Use:   "report <input-file>",
	Short: "Compute cycle time and work item age per issue.",
	Long: `Read an issue-history export and report, per issue:
- Cycle Time: inclusive days from first In Progress to first Done
- Work Item Age: inclusive days from first In Progress to today, for
  issues that are not Done yet

The input needs columns Key, Date of change, and Status and/or Status [new]
(matched case-insensitively; extra columns are ignored). Rows missing a key
or carrying an unparsable date are skipped and counted, never fatal.

Examples:
  # Table on the terminal, ages computed in the team's timezone
  flowlens report history.csv --timezone America/New_York

  # Custom workflow vocabulary
  flowlens report history.xlsx --in-progress "Doing,In Review" --done "Shipped"

  # Deterministic run for CI comparison
  flowlens report history.csv --today 2024-06-01 --output csv

  # Spreadsheet export, same shape as the download in the web UI
  flowlens report history.csv --output xlsx --output-file metrics.xlsx`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runReport(cfg); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}

// runReport executes the full pipeline for the CLI.
func runReport(cfg *contract.Config) error {
	table, err := tabfile.Read(cfg.InputPath)
	if err != nil {
		return err
	}
	report, err := core.BuildReport(table, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if len(report.Stats.AmbiguousStatuses) > 0 {
		contract.LogWarn("Statuses in both alias lists resolve to Done",
			fmt.Errorf("%s", strings.Join(report.Stats.AmbiguousStatuses, ", ")))
	}
	return outwriter.NewOutWriter().WriteReport(report, cfg)
}
