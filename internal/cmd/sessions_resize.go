package cmd

import (
	"context"
	"fmt"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/gesture"
)

// SessionsResizeCmd changes a training session's duration
type SessionsResizeCmd struct {
	Week string `arg:"" help:"Week the session belongs to"`
	ID   string `arg:"" help:"Session id"`
	End  string `arg:"" help:"New end time (19:30)"`
}

// Run executes the resize command
func (s *SessionsResizeCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(s.Week)
	if err != nil {
		return err
	}

	ctx := context.Background()
	plan, err := cli.Container.PlanService.LoadPlan(ctx, weekID)
	if err != nil {
		return err
	}
	idx := plan.FindSession(s.ID)
	if idx == -1 {
		return domain.ErrSessionNotFound
	}
	session := plan.Sessions[idx]

	endMin, _, err := domain.ParseTimeRange(s.End)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", s.End, err)
	}

	item := gesture.DragItem{Kind: gesture.DragResize, SessionID: s.ID}
	target := gesture.DropTarget{Kind: gesture.TargetSlot, Date: session.Date, StartMin: endMin}

	result, err := cli.Container.PlanService.ApplyDrop(ctx, weekID, item, target, nil)
	if err != nil {
		return fmt.Errorf("failed to resize session: %w", err)
	}
	if result.Notice != "" {
		fmt.Println(result.Notice)
	}
	if result.Changed {
		updated := result.Plan.Sessions[result.Plan.FindSession(s.ID)]
		fmt.Printf("Session %s now runs %s\n", s.ID, updated.Time)
	}
	return nil
}
