package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

func TestRosterLine(t *testing.T) {
	people := map[string]domain.Person{
		"p1": {ID: "p1", Name: "Anna Beispiel", Group: "W1"},
		"p2": {ID: "p2", Name: "Ben Muster", Group: "M1"},
	}

	session := domain.Session{
		ID: "s1", Date: "2026-02-28", Time: "15:00–17:00",
		Teams: []string{"M1"}, Participants: []string{"p2", "p1", "ghost"},
	}

	line := rosterLine(session, people)
	assert.Contains(t, line, "2026-02-28")
	assert.Contains(t, line, "Ben Muster, Anna Beispiel, ghost")
}

func TestRosterLine_NoParticipants(t *testing.T) {
	session := domain.Session{ID: "s1", Date: "2026-02-24", Time: "18:00–19:30", Teams: []string{"M3"}}

	line := rosterLine(session, nil)
	assert.Contains(t, line, "M3")
	assert.Contains(t, line, "-")
}
