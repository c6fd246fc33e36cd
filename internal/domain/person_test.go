package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_RequiresLicense(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		expected bool
	}{
		{"gated squad away game", Session{Info: "@ TSV Rivalen", Teams: []string{"M1"}}, true},
		{"gated squad home game", Session{Info: "vs TSV Rivalen", Teams: []string{"W1"}}, true},
		{"gated squad training", Session{Info: "Aufschlag", Teams: []string{"M1"}}, false},
		{"ungated squad game", Session{Info: "@ TSV Rivalen", Teams: []string{"M3"}}, false},
		{"mixed teams one gated", Session{Info: "@ TSV Rivalen", Teams: []string{"M3", "M2"}}, true},
		{"no teams", Session{Info: "@ TSV Rivalen"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.RequiresLicense())
		})
	}
}

func TestParticipantLess_GroupThenName(t *testing.T) {
	people := map[string]Person{
		"p1": {ID: "p1", Name: "Zoe", Group: "M1"},
		"p2": {ID: "p2", Name: "Anna", Group: "M2"},
		"p3": {ID: "p3", Name: "Ben", Group: "M1"},
	}

	sorted := SortParticipants([]string{"p2", "p1", "p3"}, ParticipantLess(people))
	assert.Equal(t, []string{"p3", "p1", "p2"}, sorted)
}

func TestParticipantLess_UnknownIDsSortLast(t *testing.T) {
	people := map[string]Person{
		"p1": {ID: "p1", Name: "Anna", Group: "M1"},
	}

	sorted := SortParticipants([]string{"ghost-b", "p1", "ghost-a"}, ParticipantLess(people))
	assert.Equal(t, []string{"p1", "ghost-a", "ghost-b"}, sorted)
}

func TestSortParticipants_NilComparatorKeepsOrder(t *testing.T) {
	ids := []string{"c", "a", "b"}
	sorted := SortParticipants(ids, nil)

	assert.Equal(t, []string{"c", "a", "b"}, sorted)
	// Input is never mutated.
	sorted[0] = "x"
	assert.Equal(t, "c", ids[0])
}
