package cmd

import (
	"context"
	"fmt"
)

// SessionsDelCmd deletes a session
type SessionsDelCmd struct {
	Week string `arg:"" help:"Week the session belongs to"`
	ID   string `arg:"" help:"Session id"`
}

// Run executes the del command
func (s *SessionsDelCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(s.Week)
	if err != nil {
		return err
	}

	if _, err := cli.Container.PlanService.DeleteSession(context.Background(), weekID, s.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Printf("Session %s deleted from %s\n", s.ID, weekID)
	return nil
}
