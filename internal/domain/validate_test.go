package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_CompleteSessionHasNoFindings(t *testing.T) {
	s := Normalize(Session{
		ID:          "s1",
		Date:        "2026-02-24",
		StartMin:    18 * 60,
		DurationMin: 90,
		Teams:       []string{"M1"},
		Location:    "Halle Nord",
	})

	assert.Empty(t, Validate(s))
}

func TestValidate_ReportsEveryMissingField(t *testing.T) {
	findings := Validate(Session{StartMin: -10, DurationMin: 5})

	kinds := make(map[ValidationErrorKind]bool)
	for _, f := range findings {
		kinds[f.Kind] = true
	}

	assert.True(t, kinds[ValidationMissingID])
	assert.True(t, kinds[ValidationMissingDate])
	assert.True(t, kinds[ValidationMissingDay])
	assert.True(t, kinds[ValidationMissingLocation])
	assert.True(t, kinds[ValidationEmptyTeams])
	assert.True(t, kinds[ValidationInvalidStart])
	assert.True(t, kinds[ValidationInvalidDuration])
}

func TestValidate_FindingsCarrySessionID(t *testing.T) {
	findings := Validate(Session{ID: "s1", Date: "2026-02-24"})

	for _, f := range findings {
		assert.Equal(t, "s1", f.SessionID)
		assert.NotEmpty(t, f.Error())
	}
}

func TestValidatePlan_CollectsAcrossSessions(t *testing.T) {
	plan := Plan{Sessions: []Session{
		{ID: "", Date: "2026-02-24", Day: "Tuesday", Location: "x", Teams: []string{"M1"}, StartMin: 18 * 60, DurationMin: 90},
		{ID: "b", Date: "", Day: "Tuesday", Location: "x", Teams: []string{"M1"}, StartMin: 18 * 60, DurationMin: 90},
	}}

	findings := ValidatePlan(plan)
	assert.Len(t, findings, 2)
}
