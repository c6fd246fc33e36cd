package domain

import (
	"sort"
	"strings"
	"time"
)

// Game markers at the start of the Info field. "@ HSV II" is an away
// fixture, "vs HSV II" a home fixture; anything else is a training session.
const (
	AwayMarker = "@"
	HomeMarker = "vs"
)

// Default session times used when a legacy blob carries no parseable
// time range.
const (
	DefaultStartMin        = 18 * 60
	DefaultDurationMin     = 90
	DefaultGameDurationMin = 120
	MinDurationMin         = 15
	MinResizeDurationMin   = 30
	MaxPreBlockMin         = 240
)

// DateLayout is the calendar date encoding used across plans ("2026-02-24").
const DateLayout = "2006-01-02"

// Session is a scheduled activity on the week grid (domain entity).
// StartMin/DurationMin are the canonical time representation; Time is the
// derived legacy display string ("18:00–19:30").
type Session struct {
	ID                string
	Date              string
	Day               string
	StartMin          int
	DurationMin       int
	Time              string
	Teams             []string
	Location          string
	Info              string
	Participants      []string
	WarmupMin         int
	TravelMin         int
	ExcludeFromRoster bool
}

// Plan is one week's ordered collection of sessions. Plans are value
// snapshots: every mutation produces a new Plan, callers never share one.
type Plan struct {
	WeekID   string
	Sessions []Session
}

// IsGame reports whether the session is a fixture rather than training.
func (s Session) IsGame() bool {
	info := strings.TrimSpace(s.Info)
	if strings.HasPrefix(info, AwayMarker) {
		return true
	}
	return strings.HasPrefix(info, HomeMarker+" ") || strings.HasPrefix(info, HomeMarker+".")
}

// IsAwayGame reports whether the session is an away fixture. Only away
// games carry warm-up/travel pre-blocks.
func (s Session) IsAwayGame() bool {
	return strings.HasPrefix(strings.TrimSpace(s.Info), AwayMarker)
}

// EndMin returns the exclusive end minute of the session interval.
func (s Session) EndMin() int {
	return s.StartMin + s.DurationMin
}

// HasParticipant reports whether the person is assigned to the session.
func (s Session) HasParticipant(personID string) bool {
	for _, p := range s.Participants {
		if p == personID {
			return true
		}
	}
	return false
}

// Normalize coerces a session loaded from external or legacy data into
// canonical form: canonical minutes derived from the legacy string when
// absent, participants deduplicated, nil slices replaced, day label and
// display string re-derived. It never fails; unparseable input falls back
// to defaults.
func Normalize(s Session) Session {
	if s.DurationMin <= 0 {
		start, dur, err := ParseTimeRange(s.Time)
		if err != nil {
			s.StartMin = DefaultStartMin
			if s.IsGame() {
				s.DurationMin = DefaultGameDurationMin
			} else {
				s.DurationMin = DefaultDurationMin
			}
		} else {
			// A bare "HH:MM" placeholder keeps its zero duration.
			s.StartMin = start
			s.DurationMin = dur
		}
	}
	if s.StartMin < 0 {
		s.StartMin = 0
	}
	if s.StartMin > 1439 {
		s.StartMin = 1439
	}

	s.Time = FormatTimeRange(s.StartMin, s.DurationMin)
	s.Day = DayLabel(s.Date)
	s.Teams = copyStrings(s.Teams)
	s.Participants = dedupeStrings(s.Participants)
	if s.WarmupMin < 0 {
		s.WarmupMin = 0
	}
	if s.TravelMin < 0 {
		s.TravelMin = 0
	}
	return s
}

// NormalizePlan normalizes every session and re-establishes the
// (date, start) presentation ordering.
func NormalizePlan(p Plan) Plan {
	sessions := make([]Session, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		sessions = append(sessions, Normalize(s))
	}
	p.Sessions = sessions
	return SortPlan(p)
}

// SortPlan returns the plan with sessions ordered by (date, start minute).
// The ordering is re-established after every mutation.
func SortPlan(p Plan) Plan {
	sessions := make([]Session, len(p.Sessions))
	copy(sessions, p.Sessions)
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date < sessions[j].Date
		}
		return sessions[i].StartMin < sessions[j].StartMin
	})
	p.Sessions = sessions
	return p
}

// FindSession returns the index of the session with the given id, or -1.
func (p Plan) FindSession(id string) int {
	for i := range p.Sessions {
		if p.Sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// ReplaceSession returns a new plan with the session at index i replaced
// and the ordering re-established.
func (p Plan) ReplaceSession(i int, s Session) Plan {
	sessions := make([]Session, len(p.Sessions))
	copy(sessions, p.Sessions)
	sessions[i] = s
	return SortPlan(Plan{WeekID: p.WeekID, Sessions: sessions})
}

// SessionsForDate returns the sessions scheduled on the given date,
// preserving plan order.
func (p Plan) SessionsForDate(date string) []Session {
	var out []Session
	for _, s := range p.Sessions {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

// RosterSessions filters out sessions marked as roster-invisible.
func (p Plan) RosterSessions() []Session {
	var out []Session
	for _, s := range p.Sessions {
		if !s.ExcludeFromRoster {
			out = append(out, s)
		}
	}
	return out
}

// DayLabel returns the weekday name for an ISO date, or "" if the date
// does not parse.
func DayLabel(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func dedupeStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
