package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeRangeSeparator is the en-dash used in the persisted display format
// ("18:00–19:30"). Legacy blobs occasionally carry a plain hyphen instead,
// which the parser accepts; the formatter always emits the en-dash.
const TimeRangeSeparator = "–"

// FormatTimeRange renders canonical minutes as the display string.
// A zero duration renders as a single "HH:MM" placeholder.
func FormatTimeRange(startMin, durationMin int) string {
	if durationMin <= 0 {
		return formatClock(startMin)
	}
	return formatClock(startMin) + TimeRangeSeparator + formatClock(startMin+durationMin)
}

// ParseTimeRange derives canonical minutes from a display string.
// It is the inverse of FormatTimeRange for every string FormatTimeRange
// produces. A single "HH:MM" yields a zero duration.
func ParseTimeRange(s string) (startMin, durationMin int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty time range")
	}

	sep := TimeRangeSeparator
	if !strings.Contains(s, sep) {
		sep = "-"
	}

	parts := strings.SplitN(s, sep, 2)
	start, err := parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time range %q: %w", s, err)
	}
	if len(parts) == 1 {
		return start, 0, nil
	}

	end, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time range %q: %w", s, err)
	}
	if end < start {
		return 0, 0, fmt.Errorf("invalid time range %q: end before start", s)
	}
	return start, end - start, nil
}

func formatClock(totalMin int) string {
	if totalMin < 0 {
		totalMin = 0
	}
	return fmt.Sprintf("%02d:%02d", totalMin/60, totalMin%60)
}

func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q", s)
	}
	// Hours past 23 are tolerated so that a range ending after midnight
	// ("23:30–25:00") still round-trips; Validate flags bad start values.
	if hours < 0 || hours > 47 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value out of range in %q", s)
	}
	return hours*60 + minutes, nil
}
