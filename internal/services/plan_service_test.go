package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/gesture"
)

// memoryPlanRepo is an in-memory ports.PlanRepository for service tests.
type memoryPlanRepo struct {
	plans map[string]domain.Plan
}

func newMemoryPlanRepo() *memoryPlanRepo {
	return &memoryPlanRepo{plans: make(map[string]domain.Plan)}
}

func (r *memoryPlanRepo) GetPlan(_ context.Context, weekID string) (*domain.Plan, error) {
	plan, ok := r.plans[weekID]
	if !ok {
		return nil, domain.ErrPlanNotFound
	}
	return &plan, nil
}

func (r *memoryPlanRepo) ListWeeks(_ context.Context) ([]string, error) {
	var weeks []string
	for week := range r.plans {
		weeks = append(weeks, week)
	}
	return weeks, nil
}

func (r *memoryPlanRepo) SavePlan(_ context.Context, plan domain.Plan) error {
	r.plans[plan.WeekID] = plan
	return nil
}

func (r *memoryPlanRepo) DeletePlan(_ context.Context, weekID string) error {
	delete(r.plans, weekID)
	return nil
}

func (r *memoryPlanRepo) Close() error { return nil }

// memoryPeople is an in-memory ports.PersonRepository.
type memoryPeople struct {
	people map[string]domain.Person
}

func newMemoryPeople(people ...domain.Person) *memoryPeople {
	m := &memoryPeople{people: make(map[string]domain.Person)}
	for _, p := range people {
		m.people[p.ID] = p
	}
	return m
}

func (m *memoryPeople) GetPerson(_ context.Context, id string) (*domain.Person, error) {
	p, ok := m.people[id]
	if !ok {
		return nil, domain.ErrPersonNotFound
	}
	return &p, nil
}

func (m *memoryPeople) ListPeople(_ context.Context) ([]domain.Person, error) {
	var out []domain.Person
	for _, p := range m.people {
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryPeople) PutPerson(_ context.Context, person domain.Person) error {
	m.people[person.ID] = person
	return nil
}

func (m *memoryPeople) SetLicense(_ context.Context, id, licenseNo string) error {
	p, ok := m.people[id]
	if !ok {
		return domain.ErrPersonNotFound
	}
	p.LicenseNo = licenseNo
	m.people[id] = p
	return nil
}

func (m *memoryPeople) DeletePerson(_ context.Context, id string) error {
	delete(m.people, id)
	return nil
}

// staticTravel is a fixed travel lookup.
type staticTravel map[string]int

func (s staticTravel) TravelMinutes(_ context.Context, location string) (int, bool) {
	m, ok := s[location]
	return m, ok
}

func newTestService(repo *memoryPlanRepo, people *memoryPeople, travel staticTravel) *PlanService {
	return NewPlanService(repo, people, travel)
}

func TestPlanService_LoadPlanMissingWeekIsEmpty(t *testing.T) {
	svc := newTestService(newMemoryPlanRepo(), newMemoryPeople(), nil)

	plan, err := svc.LoadPlan(context.Background(), "2026-W09")
	require.NoError(t, err)
	assert.Equal(t, "2026-W09", plan.WeekID)
	assert.Empty(t, plan.Sessions)
}

func TestPlanService_AddSessionGeneratesIDAndNormalizes(t *testing.T) {
	repo := newMemoryPlanRepo()
	svc := newTestService(repo, newMemoryPeople(), nil)

	plan, findings, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		Date:  "2026-02-24",
		Time:  "18:00–19:30",
		Teams: []string{"M3"},
	})
	require.NoError(t, err)

	require.Len(t, plan.Sessions, 1)
	s := plan.Sessions[0]
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 18*60, s.StartMin)
	assert.Equal(t, 90, s.DurationMin)
	assert.Equal(t, "Tuesday", s.Day)

	// No location is advisory, not fatal.
	var kinds []domain.ValidationErrorKind
	for _, f := range findings {
		kinds = append(kinds, f.Kind)
	}
	assert.Contains(t, kinds, domain.ValidationMissingLocation)

	stored, err := repo.GetPlan(context.Background(), "2026-W09")
	require.NoError(t, err)
	assert.Len(t, stored.Sessions, 1)
}

func TestPlanService_AddSessionFillsTravelDefaultForAwayGames(t *testing.T) {
	svc := newTestService(newMemoryPlanRepo(), newMemoryPeople(),
		staticTravel{"TSV Rivalen Halle": 75})

	plan, _, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		Date:     "2026-02-28",
		Time:     "15:00–17:00",
		Teams:    []string{"M3"},
		Info:     "@ TSV Rivalen",
		Location: "TSV Rivalen Halle",
	})
	require.NoError(t, err)
	assert.Equal(t, 75, plan.Sessions[0].TravelMin)
}

func TestPlanService_AddSessionKeepsExplicitTravel(t *testing.T) {
	svc := newTestService(newMemoryPlanRepo(), newMemoryPeople(),
		staticTravel{"TSV Rivalen Halle": 75})

	plan, _, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		Date:      "2026-02-28",
		Time:      "15:00–17:00",
		Teams:     []string{"M3"},
		Info:      "@ TSV Rivalen",
		Location:  "TSV Rivalen Halle",
		TravelMin: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, plan.Sessions[0].TravelMin)
}

func TestPlanService_DeleteSession(t *testing.T) {
	repo := newMemoryPlanRepo()
	svc := newTestService(repo, newMemoryPeople(), nil)

	added, _, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		Date: "2026-02-24", Time: "18:00–19:30", Teams: []string{"M3"},
	})
	require.NoError(t, err)

	plan, err := svc.DeleteSession(context.Background(), "2026-W09", added.Sessions[0].ID)
	require.NoError(t, err)
	assert.Empty(t, plan.Sessions)

	_, err = svc.DeleteSession(context.Background(), "2026-W09", "ghost")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestPlanService_DuplicateWeekShiftsDatesAndRegeneratesIDs(t *testing.T) {
	repo := newMemoryPlanRepo()
	svc := newTestService(repo, newMemoryPeople(), nil)

	source, _, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		Date: "2026-02-24", Time: "18:00–19:30", Teams: []string{"M3"},
	})
	require.NoError(t, err)

	target, err := svc.DuplicateWeek(context.Background(), "2026-W09", "2026-W10", 7)
	require.NoError(t, err)

	require.Len(t, target.Sessions, 1)
	assert.Equal(t, "2026-03-03", target.Sessions[0].Date)
	assert.NotEqual(t, source.Sessions[0].ID, target.Sessions[0].ID)
	assert.Equal(t, source.Sessions[0].Time, target.Sessions[0].Time)
}

func TestPlanService_DuplicateWeekRefusesExistingTarget(t *testing.T) {
	svc := newTestService(newMemoryPlanRepo(), newMemoryPeople(), nil)

	_, _, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		Date: "2026-02-24", Time: "18:00–19:30", Teams: []string{"M3"},
	})
	require.NoError(t, err)
	_, _, err = svc.AddSession(context.Background(), "2026-W10", domain.Session{
		Date: "2026-03-03", Time: "18:00–19:30", Teams: []string{"M3"},
	})
	require.NoError(t, err)

	_, err = svc.DuplicateWeek(context.Background(), "2026-W09", "2026-W10", 7)
	assert.ErrorIs(t, err, domain.ErrPlanExists)
}

func TestPlanService_ApplyDropPersistsChanges(t *testing.T) {
	repo := newMemoryPlanRepo()
	svc := newTestService(repo, newMemoryPeople(), nil)

	added, _, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		Date: "2026-02-24", Time: "18:00–19:30", Teams: []string{"M3"},
	})
	require.NoError(t, err)
	sessionID := added.Sessions[0].ID

	result, err := svc.ApplyDrop(context.Background(), "2026-W09",
		gesture.DragItem{Kind: gesture.DragEvent, SessionID: sessionID},
		gesture.DropTarget{Kind: gesture.TargetSlot, Date: "2026-02-25", StartMin: 17 * 60},
		nil)
	require.NoError(t, err)
	require.True(t, result.Changed)

	stored, err := repo.GetPlan(context.Background(), "2026-W09")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-25", stored.Sessions[0].Date)
	assert.Equal(t, "17:00–18:30", stored.Sessions[0].Time)
}

func TestPlanService_ApplyDropRejectionDoesNotPersist(t *testing.T) {
	repo := newMemoryPlanRepo()
	people := newMemoryPeople(
		domain.Person{ID: "p1", Name: "Anna"},
	)
	svc := newTestService(repo, people, nil)

	// Two overlapping sessions, p1 already in the second one.
	_, _, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		ID: "s1", Date: "2026-02-24", Time: "18:00–19:30", Teams: []string{"M3"},
	})
	require.NoError(t, err)
	_, _, err = svc.AddSession(context.Background(), "2026-W09", domain.Session{
		ID: "s2", Date: "2026-02-24", Time: "18:30–19:30", Teams: []string{"M4"},
		Participants: []string{"p1"},
	})
	require.NoError(t, err)

	result, err := svc.ApplyDrop(context.Background(), "2026-W09",
		gesture.DragItem{Kind: gesture.DragPlayer, SessionID: "s1", PersonID: "p1"},
		gesture.DropTarget{Kind: gesture.TargetSession, SessionID: "s1"},
		nil)
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.NotEmpty(t, result.Notice)

	stored, err := repo.GetPlan(context.Background(), "2026-W09")
	require.NoError(t, err)
	idx := stored.FindSession("s1")
	assert.Empty(t, stored.Sessions[idx].Participants)
}

func TestPlanService_ConflictsReportsDoubleBookings(t *testing.T) {
	svc := newTestService(newMemoryPlanRepo(), newMemoryPeople(), nil)

	_, _, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		ID: "s1", Date: "2026-02-24", Time: "18:00–19:30", Teams: []string{"M3"},
		Participants: []string{"p1"},
	})
	require.NoError(t, err)
	_, _, err = svc.AddSession(context.Background(), "2026-W09", domain.Session{
		ID: "s2", Date: "2026-02-24", Time: "18:30–19:30", Teams: []string{"M4"},
		Participants: []string{"p1"},
	})
	require.NoError(t, err)

	conflicts, err := svc.Conflicts(context.Background(), "2026-W09")
	require.NoError(t, err)
	assert.Len(t, conflicts["s1"], 1)
	assert.Len(t, conflicts["s2"], 1)
}

func TestPlanService_SetTravelUsesProviderCache(t *testing.T) {
	repo := newMemoryPlanRepo()
	svc := newTestService(repo, newMemoryPeople(), staticTravel{"TSV Rivalen Halle": 75})

	added, _, err := svc.AddSession(context.Background(), "2026-W09", domain.Session{
		Date: "2026-02-28", Time: "15:00–17:00", Teams: []string{"M3"},
		Info: "vs TSV Rivalen", Location: "TSV Rivalen Halle",
	})
	require.NoError(t, err)
	sessionID := added.Sessions[0].ID

	plan, changed, err := svc.SetTravel(context.Background(), "2026-W09", sessionID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 75, plan.Sessions[0].TravelMin)

	// Unknown location leaves the session untouched.
	added2, _, err := svc.AddSession(context.Background(), "2026-W10", domain.Session{
		Date: "2026-03-07", Time: "15:00–17:00", Teams: []string{"M3"}, Location: "Nirgendwo",
	})
	require.NoError(t, err)
	_, changed, err = svc.SetTravel(context.Background(), "2026-W10", added2.Sessions[0].ID)
	require.NoError(t, err)
	assert.False(t, changed)
}
