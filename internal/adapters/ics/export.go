package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// ExportPlan renders a week plan as an iCalendar document. Sessions keep
// their ids as UIDs so a re-export updates rather than duplicates events
// in subscribing calendars.
func ExportPlan(plan domain.Plan) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//weekplaner//weekplaner//EN")

	for _, s := range plan.Sessions {
		start, err := sessionStart(s)
		if err != nil {
			return "", err
		}

		ev := cal.AddEvent(s.ID)
		ev.SetDtStampTime(time.Now().UTC())
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Duration(s.DurationMin) * time.Minute))
		ev.SetSummary(sessionSummary(s))
		if s.Location != "" {
			ev.SetLocation(s.Location)
		}
		if len(s.Participants) > 0 {
			ev.SetDescription(fmt.Sprintf("Participants: %s", strings.Join(s.Participants, ", ")))
		}
	}

	return cal.Serialize(), nil
}

func sessionStart(s domain.Session) (time.Time, error) {
	day, err := time.Parse(domain.DateLayout, s.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("session %s has unparseable date %q: %w", s.ID, s.Date, err)
	}
	return day.Add(time.Duration(s.StartMin) * time.Minute), nil
}

func sessionSummary(s domain.Session) string {
	teams := strings.Join(s.Teams, "/")
	if s.Info != "" {
		return strings.TrimSpace(teams + " " + s.Info)
	}
	if teams == "" {
		return "Training"
	}
	return teams + " training"
}
