// Package outwriter has output and writer logic for every supported format.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/agilekit/flowlens/internal/contract"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// dateFmt renders an optional timestamp as a calendar date in loc.
func dateFmt(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format("2006-01-02")
}

// getMaxTableKeyWidth calculates the maximum width for issue keys in table
// output based on terminal width and the fixed columns around them.
func getMaxTableKeyWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Status + Metric + Days + two date columns with borders/padding
	const baseWidth = 60

	available := termWidth - baseWidth
	if available < 10 {
		return 10
	}
	if available > 40 {
		return 40
	}
	return available
}

// truncateKey shortens an issue key to maxWidth with an ellipsis suffix.
// Keys are rarely long; this only guards against pathological exports.
func truncateKey(key string, maxWidth int) string {
	runes := []rune(key)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return key
}
