package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

func TestSessionMapping_RoundTrip(t *testing.T) {
	session := domain.Session{
		ID:           "s1",
		Date:         "2026-02-28",
		Day:          "Saturday",
		StartMin:     15 * 60,
		DurationMin:  120,
		Time:         "15:00–17:00",
		Teams:        []string{"M1"},
		Location:     "Rivalenhalle",
		Info:         "@ TSV Rivalen",
		Participants: []string{"p1", "p2"},
		WarmupMin:    30,
		TravelMin:    60,
	}

	row := domainToSessionModel("2026-W09", session)
	assert.Equal(t, "2026-W09", row.WeekID)
	assert.Equal(t, `["M1"]`, row.Teams)
	assert.Equal(t, `["p1","p2"]`, row.Participants)

	back := sessionModelToDomain(row)
	assert.Equal(t, session, back)
}

func TestSessionMapping_EmptySlices(t *testing.T) {
	row := domainToSessionModel("2026-W09", domain.Session{ID: "s1", Date: "2026-02-24"})
	assert.Equal(t, "[]", row.Teams)
	assert.Equal(t, "[]", row.Participants)

	back := sessionModelToDomain(row)
	assert.Nil(t, back.Teams)
	assert.Nil(t, back.Participants)
}

func TestDecodeStrings_CorruptRowCoerced(t *testing.T) {
	assert.Nil(t, decodeStrings("not json"))
	assert.Nil(t, decodeStrings(""))
}

func TestPersonMapping_RoundTrip(t *testing.T) {
	person := domain.Person{ID: "p1", Name: "Anna Beispiel", Group: "W1", LicenseNo: "L-123"}

	row := domainToPersonModel(person)
	assert.Equal(t, "W1", row.GroupName)

	assert.Equal(t, person, personModelToDomain(row))
}
