package contract

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// changeDateLayouts are tried in order when parsing a change date cell.
// Layouts without a zone are interpreted in the configured report timezone.
var changeDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/Jan/06 3:04 PM", // Jira CSV export
	"1/2/2006 15:04",
	"1/2/2006",
}

// ParseChangeDate parses a change-date cell against the accepted layouts.
// Zone-less layouts are anchored in loc so that calendar-day arithmetic stays
// consistent with the configured timezone.
func ParseChangeDate(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range changeDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", raw)
}

// CalendarDate truncates a timestamp to midnight of its calendar date in loc.
// All day arithmetic goes through this so that a change at 23:59 and one at
// 00:01 the next day count as one day apart, not zero.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween returns the whole calendar days from `from` to `to` in loc.
// Same calendar day yields 0; `to` before `from` yields a negative count.
// Rounding absorbs the 23h/25h days around DST transitions.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	fromDate := CalendarDate(from, loc)
	toDate := CalendarDate(to, loc)
	return int(math.Round(toDate.Sub(fromDate).Hours() / 24))
}
