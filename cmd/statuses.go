package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agilekit/flowlens/core"
	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/internal/outwriter"
	"github.com/agilekit/flowlens/internal/tabfile"
)

// statusesCmd lists the distinct status values present in an input file.
var statusesCmd = &cobra.Command{
	Use:   "statuses <input-file>",
	Short: "List the distinct status values found in an export.",
	Long: `Scan an issue-history export and list every distinct status value in the
Status and Status [new] columns, with occurrence counts and the class each
value maps to under the current alias configuration.

Run this before a report when a team uses its own workflow vocabulary, then
feed the right values to --in-progress and --done.

Examples:
  flowlens statuses history.csv
  flowlens statuses history.xlsx --in-progress "Doing" --done "Shipped" --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runStatuses(cfg); err != nil {
			contract.LogFatal("Cannot list statuses", err)
		}
	},
}

// runStatuses scans the input and writes the listing.
func runStatuses(cfg *contract.Config) error {
	table, err := tabfile.Read(cfg.InputPath)
	if err != nil {
		return err
	}
	statuses, err := core.CollectStatuses(table, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStatuses(statuses, cfg)
}
