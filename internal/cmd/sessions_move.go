package cmd

import (
	"context"
	"fmt"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/gesture"
)

// SessionsMoveCmd moves a session to another day or time
type SessionsMoveCmd struct {
	Week string `arg:"" help:"Week the session belongs to"`
	ID   string `arg:"" help:"Session id"`
	Date string `arg:"" help:"Target date (2026-02-25)"`
	Time string `arg:"" help:"Target start time (17:00)"`
}

// Run executes the move command
func (s *SessionsMoveCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(s.Week)
	if err != nil {
		return err
	}
	if _, err := domain.ParseDate(s.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", s.Date, err)
	}
	startMin, _, err := domain.ParseTimeRange(s.Time)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", s.Time, err)
	}

	item := gesture.DragItem{Kind: gesture.DragEvent, SessionID: s.ID}
	target := gesture.DropTarget{Kind: gesture.TargetSlot, Date: s.Date, StartMin: startMin}

	result, err := cli.Container.PlanService.ApplyDrop(context.Background(), weekID, item, target, nil)
	if err != nil {
		return fmt.Errorf("failed to move session: %w", err)
	}
	if result.Notice != "" {
		fmt.Println(result.Notice)
	}
	if result.Changed {
		fmt.Printf("Session %s moved to %s %s\n", s.ID, s.Date, s.Time)
	}
	return nil
}
