package cmd

import (
	"context"
	"fmt"
)

// SessionsSetTravelCmd fills a session's travel minutes from the cached
// location table
type SessionsSetTravelCmd struct {
	Week string `arg:"" help:"Week the session belongs to"`
	ID   string `arg:"" help:"Session id"`
}

// Run executes the set-travel command
func (s *SessionsSetTravelCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(s.Week)
	if err != nil {
		return err
	}

	plan, changed, err := cli.Container.PlanService.SetTravel(context.Background(), weekID, s.ID)
	if err != nil {
		return fmt.Errorf("failed to set travel minutes: %w", err)
	}
	if !changed {
		fmt.Println("No cached travel minutes for this session's location")
		return nil
	}

	idx := plan.FindSession(s.ID)
	fmt.Printf("Travel set to %d minutes for session %s\n", plan.Sessions[idx].TravelMin, s.ID)
	return nil
}
