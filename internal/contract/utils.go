package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Status label constants.
const (
	CompletedValue  = "Completed"   // Issue reached a Done-classified status
	InProgressValue = "In Progress" // Issue started but has not finished
	NotStartedValue = "Not Started" // Issue never entered an In Progress-classified status
)

// Color variables for console output.
var (
	CompletedColor  = color.New(color.FgGreen)  // completed is a calm, positive signal.
	InProgressColor = color.New(color.FgYellow) // in progress is the "aging" signal worth watching.
	NotStartedColor = color.New(color.FgCyan)   // not started is informational only.
)

// GetColorLabel returns a colored status label for console output (table).
// CSV, JSON and spreadsheet outputs always use the plain label.
func GetColorLabel(label string) string {
	switch label {
	case CompletedValue:
		return CompletedColor.Sprint(label)
	case InProgressValue:
		return InProgressColor.Sprint(label)
	default:
		return NotStartedColor.Sprint(label)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// SplitList splits a comma-separated flag value into trimmed, non-empty parts.
func SplitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
