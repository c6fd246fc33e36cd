package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekID_Format(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2026-02-24", "2026-W09"},
		{"2026-01-01", "2026-W01"},
		{"2025-12-29", "2026-W01"}, // ISO week of the following year
		{"2026-12-31", "2026-W53"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseDate(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, WeekID(d))
		})
	}
}

func TestWeekStart_ReturnsMonday(t *testing.T) {
	start, err := WeekStart("2026-W09")
	require.NoError(t, err)

	assert.Equal(t, "2026-02-23", start.Format(DateLayout))
	assert.Equal(t, time.Monday, start.Weekday())
}

func TestWeekStart_RoundTripsWithWeekID(t *testing.T) {
	for _, weekID := range []string{"2026-W01", "2026-W09", "2026-W26", "2026-W52"} {
		start, err := WeekStart(weekID)
		require.NoError(t, err)
		assert.Equal(t, weekID, WeekID(start))
	}
}

func TestWeekStart_Invalid(t *testing.T) {
	for _, weekID := range []string{"", "2026", "2026-02-24", "2026-W00", "2026-W54"} {
		_, err := WeekStart(weekID)
		assert.Error(t, err, "week id %q", weekID)
	}
}

func TestWeekDates_SevenDaysMondayFirst(t *testing.T) {
	dates, err := WeekDates("2026-W09")
	require.NoError(t, err)

	require.Len(t, dates, 7)
	assert.Equal(t, "2026-02-23", dates[0])
	assert.Equal(t, "2026-02-24", dates[1])
	assert.Equal(t, "2026-03-01", dates[6])
}
