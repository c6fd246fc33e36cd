package storage

import (
	"encoding/json"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session.
// The result still goes through domain.Normalize on load so that rows
// written by the legacy planner (string time range only) reconstruct.
func sessionModelToDomain(m SessionModel) domain.Session {
	return domain.Session{
		ID:                m.ID,
		Date:              m.Date,
		Day:               m.Day,
		StartMin:          m.StartMin,
		DurationMin:       m.DurationMin,
		Time:              m.TimeRange,
		Teams:             decodeStrings(m.Teams),
		Location:          m.Location,
		Info:              m.Info,
		Participants:      decodeStrings(m.Participants),
		WarmupMin:         m.WarmupMin,
		TravelMin:         m.TravelMin,
		ExcludeFromRoster: m.ExcludeFromRoster,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM).
func domainToSessionModel(weekID string, s domain.Session) SessionModel {
	return SessionModel{
		ID:                s.ID,
		WeekID:            weekID,
		Date:              s.Date,
		Day:               s.Day,
		StartMin:          s.StartMin,
		DurationMin:       s.DurationMin,
		TimeRange:         s.Time,
		Teams:             encodeStrings(s.Teams),
		Location:          s.Location,
		Info:              s.Info,
		Participants:      encodeStrings(s.Participants),
		WarmupMin:         s.WarmupMin,
		TravelMin:         s.TravelMin,
		ExcludeFromRoster: s.ExcludeFromRoster,
	}
}

// personModelToDomain converts a PersonModel (GORM) to domain.Person.
func personModelToDomain(m PersonModel) domain.Person {
	return domain.Person{
		ID:        m.ID,
		Name:      m.Name,
		Group:     m.GroupName,
		LicenseNo: m.LicenseNo,
	}
}

// domainToPersonModel converts a domain.Person to PersonModel (GORM).
func domainToPersonModel(p domain.Person) PersonModel {
	return PersonModel{
		ID:        p.ID,
		Name:      p.Name,
		GroupName: p.Group,
		LicenseNo: p.LicenseNo,
	}
}

func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		// Partially corrupt rows are coerced, not rejected.
		return nil
	}
	return values
}
