package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agilekit/flowlens/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Flowlens MCP server",
	Long:  `Launch an MCP server that allows AI agents to compute flow metrics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdio clean for the protocol; validation errors still go to stderr.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
