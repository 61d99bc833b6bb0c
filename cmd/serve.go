package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agilekit/flowlens/internal/webui"
)

// serveCmd starts the interactive upload UI.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload UI and report API over HTTP.",
	Long: `Start an HTTP server with a small upload form: pick an export file, adjust
the timezone and alias lists, and download the computed metrics as a
spreadsheet.

Endpoints:
  GET  /                 upload form
  POST /api/report       multipart upload -> JSON report (results + run stats)
  POST /api/report/xlsx  multipart upload -> .xlsx download
  GET  /api/health       liveness probe

Every request computes from scratch on its own configuration; nothing is
stored between requests.

Examples:
  flowlens serve
  flowlens serve --addr :9090 --timezone Europe/Berlin`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return webui.Run(cfg)
	},
}
