package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChangeDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	cases := []struct {
		raw  string
		want string // formatted back out in RFC3339 for comparison
	}{
		{"2024-01-03", "2024-01-03T00:00:00-05:00"},
		{"2024-01-03 14:30", "2024-01-03T14:30:00-05:00"},
		{"2024-01-03 14:30:59", "2024-01-03T14:30:59-05:00"},
		{"2024-01-03T14:30:59", "2024-01-03T14:30:59-05:00"},
		{"2024-01-03T14:30:59Z", "2024-01-03T14:30:59Z"},
		{"03/Jan/24 2:30 PM", "2024-01-03T14:30:00-05:00"},
		{"1/3/2024 14:30", "2024-01-03T14:30:00-05:00"},
		{"1/3/2024", "2024-01-03T00:00:00-05:00"},
		{"  2024-01-03  ", "2024-01-03T00:00:00-05:00"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseChangeDate(tc.raw, loc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Format(time.RFC3339))
		})
	}
}

func TestParseChangeDateErrors(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a date", "2024-99-99"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseChangeDate(raw, time.UTC)
			assert.Error(t, err)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "across midnight",
			from: time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 4, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "one week",
			from: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "backwards",
			from: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			want: -7,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysBetween(tc.from, tc.to, time.UTC))
		})
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring forward 2024-03-10: that calendar day is only 23 hours long.
	from := time.Date(2024, 3, 9, 12, 0, 0, 0, loc)
	to := time.Date(2024, 3, 11, 12, 0, 0, 0, loc)
	assert.Equal(t, 2, DaysBetween(from, to, loc))
}

func TestDaysBetweenDependsOnZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 03:00 UTC is still the previous evening in New York.
	from := time.Date(2024, 1, 3, 3, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 4, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(from, to, time.UTC))
	assert.Equal(t, 1, DaysBetween(from, to, loc))

	// Shift one endpoint so the UTC and New York calendar days disagree.
	to = time.Date(2024, 1, 4, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(from, to, time.UTC))
	assert.Equal(t, 2, DaysBetween(from, to, loc))
}

func TestCalendarDate(t *testing.T) {
	got := CalendarDate(time.Date(2024, 1, 3, 23, 59, 59, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), got)
}
