// Package blob reads and writes the interchange plan format: a JSON
// object {"weekId": ..., "sessions": [...]} as produced by the legacy
// planner. Files are flock-guarded because an export may run while the
// TUI or the share server is up.
package blob

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// planBlob mirrors the persisted JSON shape. Field names follow the
// legacy format exactly; canonical minutes may be absent in old blobs.
type planBlob struct {
	WeekID   string        `json:"weekId"`
	Sessions []sessionBlob `json:"sessions"`
}

type sessionBlob struct {
	ID                string   `json:"id"`
	Date              string   `json:"date"`
	Day               string   `json:"day,omitempty"`
	StartMin          *int     `json:"startMin,omitempty"`
	DurationMin       *int     `json:"durationMin,omitempty"`
	Time              string   `json:"time,omitempty"`
	Teams             []string `json:"teams"`
	Location          string   `json:"location,omitempty"`
	Info              string   `json:"info,omitempty"`
	Participants      []string `json:"participants"`
	WarmupMin         int      `json:"warmupMin,omitempty"`
	TravelMin         int      `json:"travelMin,omitempty"`
	ExcludeFromRoster bool     `json:"excludeFromRoster,omitempty"`
}

// ReadPlan loads a plan blob and runs every session through the domain
// reconstruction path (canonical fields derived, participants deduped,
// plan re-sorted).
func ReadPlan(path string) (domain.Plan, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("failed to open plan blob: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return domain.Plan{}, fmt.Errorf("failed to lock plan blob: %w", err)
	}
	defer unlockFile(file)

	var raw planBlob
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return domain.Plan{}, fmt.Errorf("failed to decode plan blob: %w", err)
	}

	plan := domain.Plan{WeekID: raw.WeekID}
	for _, sb := range raw.Sessions {
		plan.Sessions = append(plan.Sessions, blobToSession(sb))
	}
	return domain.NormalizePlan(plan), nil
}

// WritePlan writes a plan blob, creating or truncating the file.
func WritePlan(path string, plan domain.Plan) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create plan blob: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to lock plan blob: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate plan blob: %w", err)
	}

	raw := planBlob{WeekID: plan.WeekID, Sessions: []sessionBlob{}}
	for _, s := range plan.Sessions {
		raw.Sessions = append(raw.Sessions, sessionToBlob(s))
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&raw); err != nil {
		return fmt.Errorf("failed to encode plan blob: %w", err)
	}
	return nil
}

func blobToSession(sb sessionBlob) domain.Session {
	s := domain.Session{
		ID:                sb.ID,
		Date:              sb.Date,
		Day:               sb.Day,
		Time:              sb.Time,
		Teams:             sb.Teams,
		Location:          sb.Location,
		Info:              sb.Info,
		Participants:      sb.Participants,
		WarmupMin:         sb.WarmupMin,
		TravelMin:         sb.TravelMin,
		ExcludeFromRoster: sb.ExcludeFromRoster,
	}
	if sb.StartMin != nil {
		s.StartMin = *sb.StartMin
	}
	if sb.DurationMin != nil {
		s.DurationMin = *sb.DurationMin
	}
	return s
}

func sessionToBlob(s domain.Session) sessionBlob {
	startMin := s.StartMin
	durationMin := s.DurationMin
	return sessionBlob{
		ID:                s.ID,
		Date:              s.Date,
		Day:               s.Day,
		StartMin:          &startMin,
		DurationMin:       &durationMin,
		Time:              s.Time,
		Teams:             s.Teams,
		Location:          s.Location,
		Info:              s.Info,
		Participants:      s.Participants,
		WarmupMin:         s.WarmupMin,
		TravelMin:         s.TravelMin,
		ExcludeFromRoster: s.ExcludeFromRoster,
	}
}
