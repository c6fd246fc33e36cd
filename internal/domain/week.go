package domain

import (
	"fmt"
	"time"
)

// ParseDate parses an ISO calendar date ("2026-02-24").
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// WeekID formats an ISO week identifier ("2026-W09") for a date.
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeekStart returns the Monday of an ISO week identifier.
func WeekStart(weekID string) (time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(weekID, "%d-W%d", &year, &week); err != nil {
		return time.Time{}, fmt.Errorf("invalid week id %q (want YYYY-Www): %w", weekID, err)
	}
	if week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("invalid week id %q: week out of range", weekID)
	}

	// January 4th is always in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := jan4.AddDate(0, 0, 1-weekday)
	return monday.AddDate(0, 0, (week-1)*7), nil
}

// WeekDates returns the seven ISO dates of a week, Monday first.
func WeekDates(weekID string) ([]string, error) {
	start, err := WeekStart(weekID)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates, nil
}
