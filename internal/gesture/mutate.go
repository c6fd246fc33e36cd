package gesture

import (
	"context"
	"fmt"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/ports"
)

// Deps carries the collaborators a drop may need. Prompt and People are
// only consulted for gated player assignments; Less orders a session's
// participant list after an assignment (nil keeps insertion order).
type Deps struct {
	Prompt ports.IdentifierPrompt
	People ports.PersonRepository
	Less   func(a, b string) bool
}

// Result is the outcome of a drop. Changed is false for rejected or
// no-op drops, in which case Plan is the unchanged input snapshot.
// Notice carries a short-lived, human-readable message for the UI.
type Result struct {
	Plan    domain.Plan
	Changed bool
	Notice  string
}

func assignPlayer(ctx context.Context, plan domain.Plan, item DragItem, target DropTarget, deps Deps) (Result, error) {
	idx := plan.FindSession(target.SessionID)
	if idx == -1 {
		return Result{Plan: plan}, domain.ErrSessionNotFound
	}
	session := plan.Sessions[idx]
	personID := item.PersonID

	// The candidate assignment has not happened yet, so the precomputed
	// conflict map cannot answer this; test the overlap directly.
	for _, other := range plan.Sessions {
		if other.ID == session.ID || !other.HasParticipant(personID) {
			continue
		}
		if domain.Overlaps(other, session) {
			return Result{
				Plan: plan,
				Notice: fmt.Sprintf("%s is already scheduled %s at %s",
					personID, other.Day, other.Time),
			}, nil
		}
	}

	if session.RequiresLicense() {
		licensed, err := hasLicense(ctx, deps.People, personID)
		if err != nil {
			return Result{Plan: plan}, err
		}
		if !licensed {
			outcome, err := collectLicense(ctx, deps, session, personID)
			if err != nil {
				return Result{Plan: plan}, err
			}
			switch outcome {
			case licenseAborted:
				return Result{Plan: plan}, nil
			case licenseDeclined:
				return removeParticipant(plan, idx, personID), nil
			}
		}
	}

	if session.HasParticipant(personID) {
		// Idempotent: re-assigning is not an error and not a change.
		return Result{Plan: plan}, nil
	}
	participants := make([]string, 0, len(session.Participants)+1)
	participants = append(participants, session.Participants...)
	participants = append(participants, personID)
	session.Participants = domain.SortParticipants(participants, deps.Less)
	return Result{Plan: plan.ReplaceSession(idx, session), Changed: true}, nil
}

type licenseOutcome int

const (
	licenseStored licenseOutcome = iota
	licenseDeclined
	licenseAborted
)

func hasLicense(ctx context.Context, people ports.PersonRepository, personID string) (bool, error) {
	if people == nil {
		return false, nil
	}
	person, err := people.GetPerson(ctx, personID)
	if err != nil {
		return false, fmt.Errorf("failed to look up person: %w", err)
	}
	return person.LicenseNo != "", nil
}

// collectLicense runs the externally supplied identifier prompt. An empty
// value is treated as a decline (the participant is removed instead of
// assigned); a cancelled prompt aborts without any mutation.
func collectLicense(ctx context.Context, deps Deps, session domain.Session, personID string) (licenseOutcome, error) {
	if deps.Prompt == nil {
		return licenseAborted, nil
	}
	title := "License number required"
	message := fmt.Sprintf("A license number is needed to field %s in %q.", personID, session.Info)
	value, ok, err := deps.Prompt.Prompt(ctx, title, message)
	if err != nil {
		return licenseAborted, fmt.Errorf("license prompt failed: %w", err)
	}
	if !ok {
		logging.Logger.Debug("license prompt cancelled", "person", personID)
		return licenseAborted, nil
	}
	if value == "" {
		return licenseDeclined, nil
	}
	if deps.People != nil {
		if err := deps.People.SetLicense(ctx, personID, value); err != nil {
			return licenseAborted, fmt.Errorf("failed to store license: %w", err)
		}
	}
	return licenseStored, nil
}

func removeParticipant(plan domain.Plan, idx int, personID string) Result {
	session := plan.Sessions[idx]
	if !session.HasParticipant(personID) {
		return Result{Plan: plan}
	}
	var kept []string
	for _, p := range session.Participants {
		if p != personID {
			kept = append(kept, p)
		}
	}
	session.Participants = kept
	return Result{Plan: plan.ReplaceSession(idx, session), Changed: true}
}

func relocateSession(plan domain.Plan, item DragItem, target DropTarget) (Result, error) {
	idx := plan.FindSession(item.SessionID)
	if idx == -1 {
		return Result{Plan: plan}, domain.ErrSessionNotFound
	}
	session := plan.Sessions[idx]
	session.Date = target.Date
	session.Day = domain.DayLabel(target.Date)
	session.StartMin = target.StartMin
	session.Time = domain.FormatTimeRange(session.StartMin, session.DurationMin)
	return Result{Plan: plan.ReplaceSession(idx, session), Changed: true}, nil
}

func resizeSession(plan domain.Plan, item DragItem, target DropTarget) (Result, error) {
	idx := plan.FindSession(item.SessionID)
	if idx == -1 {
		return Result{Plan: plan}, domain.ErrSessionNotFound
	}
	session := plan.Sessions[idx]
	if session.IsGame() {
		return Result{Plan: plan, Notice: "games have a fixed duration"}, nil
	}
	if target.Date != "" && target.Date != session.Date {
		return Result{Plan: plan, Notice: "sessions cannot be resized across days"}, nil
	}

	duration := target.StartMin - session.StartMin
	if duration < domain.MinResizeDurationMin {
		duration = domain.MinResizeDurationMin
	}
	session.DurationMin = duration
	session.Time = domain.FormatTimeRange(session.StartMin, session.DurationMin)
	return Result{Plan: plan.ReplaceSession(idx, session), Changed: true}, nil
}

// resizePreBlock recomputes warm-up or travel minutes from the block's
// dragged boundary. Travel precedes warm-up, so a travel resize measures
// from the session start minus the warm-up block.
func resizePreBlock(plan domain.Plan, item DragItem, target DropTarget) (Result, error) {
	idx := plan.FindSession(item.SessionID)
	if idx == -1 {
		return Result{Plan: plan}, domain.ErrSessionNotFound
	}
	session := plan.Sessions[idx]
	if target.Date != "" && target.Date != session.Date {
		return Result{Plan: plan, Notice: "pre-activity blocks stay on the session's day"}, nil
	}

	switch item.PreBlock {
	case PreBlockWarmup:
		session.WarmupMin = clampPreBlock(session.StartMin - target.StartMin)
	case PreBlockTravel:
		session.TravelMin = clampPreBlock(session.StartMin - session.WarmupMin - target.StartMin)
	default:
		return Result{Plan: plan}, nil
	}
	return Result{Plan: plan.ReplaceSession(idx, session), Changed: true}, nil
}

// clampPreBlock rounds to five-minute steps and clamps to [0, 240].
func clampPreBlock(minutes int) int {
	rounded := (minutes + 2) / 5 * 5
	if rounded < 0 {
		return 0
	}
	if rounded > domain.MaxPreBlockMin {
		return domain.MaxPreBlockMin
	}
	return rounded
}
