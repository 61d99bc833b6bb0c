// Package contract provides the validated configuration, typed errors and
// shared utilities used across the flowlens internals.
package contract

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaError is the fatal error returned when the input table's header row
// cannot be resolved to the required logical columns. It lists both what was
// required and what was actually found so users can fix their export.
type SchemaError struct {
	Missing []string // Logical columns that could not be resolved
	Found   []string // Headers present in the input, as given
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	missing := make([]string, len(e.Missing))
	copy(missing, e.Missing)
	sort.Strings(missing)
	return fmt.Sprintf("missing required columns: %s (found: %s)",
		strings.Join(missing, ", "), strings.Join(e.Found, ", "))
}
