package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps_Basic(t *testing.T) {
	base := Session{Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90}

	tests := []struct {
		name     string
		other    Session
		expected bool
	}{
		{"contained", Session{Date: "2026-02-24", StartMin: 18*60 + 30, DurationMin: 60}, true},
		{"partial overlap", Session{Date: "2026-02-24", StartMin: 19 * 60, DurationMin: 90}, true},
		{"identical", Session{Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90}, true},
		{"back to back", Session{Date: "2026-02-24", StartMin: 19*60 + 30, DurationMin: 60}, false},
		{"different date", Session{Date: "2026-02-25", StartMin: 18 * 60, DurationMin: 90}, false},
		{"zero length never overlaps", Session{Date: "2026-02-24", StartMin: 18*60 + 30, DurationMin: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(base, tt.other))
			assert.Equal(t, tt.expected, Overlaps(tt.other, base), "Overlaps must be symmetric")
		})
	}
}

func TestConflicts_SharedParticipantSameDay(t *testing.T) {
	sessions := []Session{
		{ID: "a", Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90, Participants: []string{"p1", "p2"}},
		{ID: "b", Date: "2026-02-24", StartMin: 18*60 + 30, DurationMin: 60, Participants: []string{"p1", "p3"}},
	}

	conflicts := Conflicts(sessions)

	require.Len(t, conflicts["a"], 1)
	require.Len(t, conflicts["b"], 1)
	assert.Equal(t, Conflict{SessionID: "b", PersonID: "p1"}, conflicts["a"][0])
	assert.Equal(t, Conflict{SessionID: "a", PersonID: "p1"}, conflicts["b"][0])
}

func TestConflicts_NoSharedParticipants(t *testing.T) {
	sessions := []Session{
		{ID: "a", Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90, Participants: []string{"p1"}},
		{ID: "b", Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90, Participants: []string{"p2"}},
	}

	assert.Empty(t, Conflicts(sessions))
}

func TestConflicts_DifferentDaysNeverConflict(t *testing.T) {
	sessions := []Session{
		{ID: "a", Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90, Participants: []string{"p1"}},
		{ID: "b", Date: "2026-02-25", StartMin: 18 * 60, DurationMin: 90, Participants: []string{"p1"}},
	}

	assert.Empty(t, Conflicts(sessions))
}

func TestConflicts_MultipleSharedParticipants(t *testing.T) {
	sessions := []Session{
		{ID: "a", Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90, Participants: []string{"p1", "p2", "p3"}},
		{ID: "b", Date: "2026-02-24", StartMin: 18*60 + 30, DurationMin: 90, Participants: []string{"p2", "p3", "p4"}},
	}

	conflicts := Conflicts(sessions)
	assert.Len(t, conflicts["a"], 2)
	assert.Len(t, conflicts["b"], 2)
}

func TestConflicts_ThreeWayOverlap(t *testing.T) {
	// One player triple-booked: every pair is reported.
	sessions := []Session{
		{ID: "a", Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 120, Participants: []string{"p1"}},
		{ID: "b", Date: "2026-02-24", StartMin: 18*60 + 30, DurationMin: 60, Participants: []string{"p1"}},
		{ID: "c", Date: "2026-02-24", StartMin: 19 * 60, DurationMin: 60, Participants: []string{"p1"}},
	}

	conflicts := Conflicts(sessions)
	assert.Len(t, conflicts["a"], 2)
	assert.Len(t, conflicts["b"], 2)
	assert.Len(t, conflicts["c"], 2)
}
