package blob

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

func TestReadPlan_LegacyBlobWithoutCanonicalMinutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	payload := `{
  "weekId": "2026-W09",
  "sessions": [
    {
      "id": "s1",
      "date": "2026-02-24",
      "time": "18:00–19:30",
      "teams": ["M3"],
      "participants": ["p1", "p1", "p2"]
    }
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	plan, err := ReadPlan(path)
	require.NoError(t, err)

	require.Len(t, plan.Sessions, 1)
	s := plan.Sessions[0]
	assert.Equal(t, 18*60, s.StartMin)
	assert.Equal(t, 90, s.DurationMin)
	assert.Equal(t, "Tuesday", s.Day)
	assert.Equal(t, []string{"p1", "p2"}, s.Participants)
}

func TestWritePlan_ReadPlan_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	plan := domain.NormalizePlan(domain.Plan{
		WeekID: "2026-W09",
		Sessions: []domain.Session{
			{ID: "s2", Date: "2026-02-28", StartMin: 15 * 60, DurationMin: 120,
				Teams: []string{"M1"}, Info: "@ TSV Rivalen", Location: "Rivalenhalle",
				WarmupMin: 30, TravelMin: 60, Participants: []string{"p1"}},
			{ID: "s1", Date: "2026-02-24", StartMin: 18 * 60, DurationMin: 90,
				Teams: []string{"M3"}},
		},
	})

	require.NoError(t, WritePlan(path, plan))
	loaded, err := ReadPlan(path)
	require.NoError(t, err)

	assert.Equal(t, plan, loaded)
}

func TestReadPlan_MissingFile(t *testing.T) {
	_, err := ReadPlan(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReadPlan_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := ReadPlan(path)
	assert.Error(t, err)
}
