package cmd

import (
	"context"
	"fmt"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// PlansDuplicateCmd copies a week's sessions into another week
type PlansDuplicateCmd struct {
	From string `arg:"" help:"Source week (2026-W09 or any date of the week)"`
	To   string `arg:"" help:"Target week"`
}

// Run executes the duplicate command
func (p *PlansDuplicateCmd) Run(cli *CLI) error {
	fromWeek, err := resolveWeek(p.From)
	if err != nil {
		return err
	}
	toWeek, err := resolveWeek(p.To)
	if err != nil {
		return err
	}

	fromStart, err := domain.WeekStart(fromWeek)
	if err != nil {
		return err
	}
	toStart, err := domain.WeekStart(toWeek)
	if err != nil {
		return err
	}
	offsetDays := int(toStart.Sub(fromStart).Hours() / 24)

	plan, err := cli.Container.PlanService.DuplicateWeek(context.Background(), fromWeek, toWeek, offsetDays)
	if err != nil {
		return fmt.Errorf("failed to duplicate week: %w", err)
	}

	fmt.Printf("Week %s duplicated to %s (%d sessions)\n", fromWeek, toWeek, len(plan.Sessions))
	return nil
}
