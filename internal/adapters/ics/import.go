package ics

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
)

// SessionsFromFeed parses an ICS payload and maps the VEVENTs falling
// into [weekStart, weekStart+7d) onto game sessions for the feed's team.
// An event at the feed's configured home venue becomes a home fixture,
// anything else an away fixture.
func SessionsFromFeed(res FetchResult, weekStart time.Time) ([]domain.Session, error) {
	cal, err := ical.ParseCalendar(bytes.NewReader(res.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", res.Feed.ID, err)
	}

	weekEnd := weekStart.AddDate(0, 0, 7)
	var sessions []domain.Session

	for _, ve := range cal.Events() {
		start, err := ve.GetStartAt()
		if err != nil {
			logging.Logger.Warn("skipping event without start", "feed", res.Feed.ID)
			continue
		}
		if start.Before(weekStart) || !start.Before(weekEnd) {
			continue
		}

		end, err := ve.GetEndAt()
		if err != nil || !end.After(start) {
			end = start.Add(time.Duration(domain.DefaultGameDurationMin) * time.Minute)
		}

		summary := propValue(ve, ical.ComponentPropertySummary)
		location := propValue(ve, ical.ComponentPropertyLocation)
		if res.Feed.Location != "" && location == "" {
			location = res.Feed.Location
		}

		info := domain.AwayMarker + " " + summary
		if res.Feed.Location != "" && strings.EqualFold(location, res.Feed.Location) {
			info = domain.HomeMarker + " " + summary
		}

		sessions = append(sessions, domain.Normalize(domain.Session{
			ID:          uuid.New().String(),
			Date:        start.Format(domain.DateLayout),
			StartMin:    start.Hour()*60 + start.Minute(),
			DurationMin: int(end.Sub(start).Minutes()),
			Teams:       []string{res.Feed.Team},
			Location:    location,
			Info:        info,
		}))
	}

	logging.Logger.Info("feed imported",
		"feed", res.Feed.ID,
		"week_start", weekStart.Format(domain.DateLayout),
		"session_count", len(sessions))
	return sessions, nil
}

// MergeImported appends imported sessions to a plan, skipping any whose
// date, start, and team already match an existing session so a re-import
// stays idempotent.
func MergeImported(plan domain.Plan, imported []domain.Session) domain.Plan {
	existing := make(map[string]bool, len(plan.Sessions))
	for _, s := range plan.Sessions {
		existing[importKey(s)] = true
	}

	sessions := make([]domain.Session, len(plan.Sessions))
	copy(sessions, plan.Sessions)
	for _, s := range imported {
		if existing[importKey(s)] {
			continue
		}
		existing[importKey(s)] = true
		sessions = append(sessions, s)
	}
	return domain.SortPlan(domain.Plan{WeekID: plan.WeekID, Sessions: sessions})
}

func importKey(s domain.Session) string {
	team := ""
	if len(s.Teams) > 0 {
		team = s.Teams[0]
	}
	return fmt.Sprintf("%s|%d|%s", s.Date, s.StartMin, team)
}

func propValue(ve *ical.VEvent, prop ical.ComponentProperty) string {
	if p := ve.GetProperty(prop); p != nil {
		return p.Value
	}
	return ""
}
