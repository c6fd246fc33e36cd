package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/gesture"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/ports"
)

// PlanService owns week plan lifecycle: loading, saving, session edits,
// conflict queries, and applying drop gestures. Every operation works on
// a plan snapshot and stores a new one; the service never keeps a plan
// across calls.
type PlanService struct {
	planRepo ports.PlanRepository
	people   ports.PersonRepository
	travel   ports.TravelTimeProvider
}

// NewPlanService creates a new PlanService.
func NewPlanService(planRepo ports.PlanRepository, people ports.PersonRepository, travel ports.TravelTimeProvider) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		people:   people,
		travel:   travel,
	}
}

// LoadPlan loads a week's plan. A missing week yields an empty plan
// rather than an error so the TUI can open any week.
func (s *PlanService) LoadPlan(ctx context.Context, weekID string) (domain.Plan, error) {
	plan, err := s.planRepo.GetPlan(ctx, weekID)
	if errors.Is(err, domain.ErrPlanNotFound) {
		return domain.Plan{WeekID: weekID}, nil
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("failed to load plan: %w", err)
	}
	return *plan, nil
}

// SavePlan normalizes and stores a plan snapshot.
func (s *PlanService) SavePlan(ctx context.Context, plan domain.Plan) error {
	plan = domain.NormalizePlan(plan)
	if err := s.planRepo.SavePlan(ctx, plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	logging.Logger.Info("plan saved", "week", plan.WeekID, "session_count", len(plan.Sessions))
	return nil
}

// ListWeeks returns all stored week ids.
func (s *PlanService) ListWeeks(ctx context.Context) ([]string, error) {
	return s.planRepo.ListWeeks(ctx)
}

// AddSession adds a session to a week. A missing id is generated; away
// games without a travel value pick up the cached default for their
// location. Validation findings are advisory and returned alongside the
// saved plan.
func (s *PlanService) AddSession(ctx context.Context, weekID string, session domain.Session) (domain.Plan, []domain.ValidationError, error) {
	plan, err := s.LoadPlan(ctx, weekID)
	if err != nil {
		return domain.Plan{}, nil, err
	}

	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session = domain.Normalize(session)

	if session.IsAwayGame() && session.TravelMin == 0 && s.travel != nil {
		if minutes, ok := s.travel.TravelMinutes(ctx, session.Location); ok {
			session.TravelMin = minutes
		}
	}

	findings := domain.Validate(session)
	for _, f := range findings {
		logging.Logger.Warn("session validation finding", "session", session.ID, "kind", f.Kind)
	}

	plan.Sessions = append(plan.Sessions, session)
	plan = domain.SortPlan(plan)
	if err := s.SavePlan(ctx, plan); err != nil {
		return domain.Plan{}, findings, err
	}
	return plan, findings, nil
}

// DeleteSession removes a session from a week.
func (s *PlanService) DeleteSession(ctx context.Context, weekID, sessionID string) (domain.Plan, error) {
	plan, err := s.LoadPlan(ctx, weekID)
	if err != nil {
		return domain.Plan{}, err
	}
	idx := plan.FindSession(sessionID)
	if idx == -1 {
		return domain.Plan{}, domain.ErrSessionNotFound
	}

	sessions := make([]domain.Session, 0, len(plan.Sessions)-1)
	sessions = append(sessions, plan.Sessions[:idx]...)
	sessions = append(sessions, plan.Sessions[idx+1:]...)
	plan.Sessions = sessions

	if err := s.SavePlan(ctx, plan); err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}

// DuplicateWeek copies one week's sessions into another week, shifting
// dates by offsetDays and regenerating every session id.
func (s *PlanService) DuplicateWeek(ctx context.Context, fromWeekID, toWeekID string, offsetDays int) (domain.Plan, error) {
	source, err := s.planRepo.GetPlan(ctx, fromWeekID)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("failed to load source week: %w", err)
	}
	if _, err := s.planRepo.GetPlan(ctx, toWeekID); err == nil {
		return domain.Plan{}, domain.ErrPlanExists
	} else if !errors.Is(err, domain.ErrPlanNotFound) {
		return domain.Plan{}, fmt.Errorf("failed to check target week: %w", err)
	}

	target := domain.Plan{WeekID: toWeekID}
	for _, session := range source.Sessions {
		session.ID = uuid.New().String()
		session.Date = shiftDate(session.Date, offsetDays)
		target.Sessions = append(target.Sessions, domain.Normalize(session))
	}
	target = domain.SortPlan(target)

	if err := s.SavePlan(ctx, target); err != nil {
		return domain.Plan{}, err
	}
	logging.Logger.Info("week duplicated",
		"from", fromWeekID,
		"to", toWeekID,
		"session_count", len(target.Sessions))
	return target, nil
}

// Conflicts returns the participant double-bookings of a week.
func (s *PlanService) Conflicts(ctx context.Context, weekID string) (map[string][]domain.Conflict, error) {
	plan, err := s.LoadPlan(ctx, weekID)
	if err != nil {
		return nil, err
	}
	return domain.Conflicts(plan.Sessions), nil
}

// Validate collects advisory findings for a week.
func (s *PlanService) Validate(ctx context.Context, weekID string) ([]domain.ValidationError, error) {
	plan, err := s.LoadPlan(ctx, weekID)
	if err != nil {
		return nil, err
	}
	return domain.ValidatePlan(plan), nil
}

// ApplyDrop runs a complete drag gesture against the stored plan: begin
// with the item, drop on the target, and persist the new snapshot when
// the drop produced a change. The prompt is only consulted for gated
// player assignments.
func (s *PlanService) ApplyDrop(ctx context.Context, weekID string, item gesture.DragItem, target gesture.DropTarget, prompt ports.IdentifierPrompt) (gesture.Result, error) {
	plan, err := s.LoadPlan(ctx, weekID)
	if err != nil {
		return gesture.Result{}, err
	}

	deps := gesture.Deps{
		Prompt: prompt,
		People: s.people,
		Less:   s.participantLess(ctx),
	}

	machine := gesture.NewMachine()
	if err := machine.Begin(item); err != nil {
		return gesture.Result{Plan: plan}, err
	}
	result, err := machine.Drop(ctx, plan, target, deps)
	if err != nil {
		return result, err
	}

	if result.Changed {
		if err := s.SavePlan(ctx, result.Plan); err != nil {
			return gesture.Result{Plan: plan}, err
		}
	}
	return result, nil
}

// SetTravel writes the provider's cached travel minutes onto an away
// game. Unknown locations leave the session untouched.
func (s *PlanService) SetTravel(ctx context.Context, weekID, sessionID string) (domain.Plan, bool, error) {
	plan, err := s.LoadPlan(ctx, weekID)
	if err != nil {
		return domain.Plan{}, false, err
	}
	idx := plan.FindSession(sessionID)
	if idx == -1 {
		return domain.Plan{}, false, domain.ErrSessionNotFound
	}
	session := plan.Sessions[idx]

	if s.travel == nil {
		return plan, false, nil
	}
	minutes, ok := s.travel.TravelMinutes(ctx, session.Location)
	if !ok {
		return plan, false, nil
	}

	session.TravelMin = minutes
	plan = plan.ReplaceSession(idx, session)
	if err := s.SavePlan(ctx, plan); err != nil {
		return domain.Plan{}, false, err
	}
	return plan, true, nil
}

// participantLess builds the group-then-name comparator from the roster.
// A failed roster read degrades to id ordering.
func (s *PlanService) participantLess(ctx context.Context) func(a, b string) bool {
	if s.people == nil {
		return nil
	}
	people, err := s.people.ListPeople(ctx)
	if err != nil {
		logging.Logger.Warn("failed to load roster for participant sort", "error", err)
		return nil
	}
	byID := make(map[string]domain.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}
	return domain.ParticipantLess(byID)
}

func shiftDate(date string, offsetDays int) string {
	t, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, offsetDays).Format(domain.DateLayout)
}
