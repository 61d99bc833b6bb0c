// Package cmd defines the command-line interface for flowlens.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statusesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("timezone", contract.DefaultTimezone, "IANA timezone used for calendar-day arithmetic and 'today'")
	rootCmd.PersistentFlags().String("in-progress", "", "Comma-separated status values that count as the start of work")
	rootCmd.PersistentFlags().String("done", "", "Comma-separated status values that count as completed")
	rootCmd.PersistentFlags().String("today", "", "Override 'today' (ISO date) for work item age; defaults to the current date")
	rootCmd.PersistentFlags().Bool("include-not-started", false, "Include issues that never entered In Progress, with empty metrics")
	rootCmd.PersistentFlags().IntP("limit", "l", 0, "Maximum number of result rows (0 = all)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or xlsx or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to (required for xlsx/parquet)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in table output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultServeAddr, "HTTP listen address (host:port)")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}
}
