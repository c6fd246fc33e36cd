package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/gesture"
)

// SessionsAssignCmd assigns a roster member to a session
type SessionsAssignCmd struct {
	Week    string `arg:"" help:"Week the session belongs to"`
	ID      string `arg:"" help:"Session id"`
	Person  string `arg:"" help:"Person id"`
	License string `help:"License number to store if the game requires one (skips the prompt)" default:""`
}

// Run executes the assign command
func (s *SessionsAssignCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(s.Week)
	if err != nil {
		return err
	}

	item := gesture.DragItem{Kind: gesture.DragPlayer, SessionID: s.ID, PersonID: s.Person}
	target := gesture.DropTarget{Kind: gesture.TargetSession, SessionID: s.ID}

	var prompt terminalPrompt
	prompt.preset = s.License

	result, err := cli.Container.PlanService.ApplyDrop(context.Background(), weekID, item, target, prompt)
	if err != nil {
		return fmt.Errorf("failed to assign person: %w", err)
	}
	if result.Notice != "" {
		fmt.Println(result.Notice)
	}
	if msg := assignOutcome(result.Plan, s.ID, s.Person, result.Changed); msg != "" {
		fmt.Println(msg)
	}
	return nil
}

// assignOutcome describes what a player drop did to the plan. A gated
// drop that was declined removes the participant instead of assigning,
// so the resulting plan decides the wording, not the changed flag alone.
func assignOutcome(plan domain.Plan, sessionID, personID string, changed bool) string {
	if !changed {
		return ""
	}
	idx := plan.FindSession(sessionID)
	if idx != -1 && plan.Sessions[idx].HasParticipant(personID) {
		return fmt.Sprintf("Person %s assigned to session %s", personID, sessionID)
	}
	return fmt.Sprintf("Person %s removed from session %s (license declined)", personID, sessionID)
}

// terminalPrompt collects a license number interactively, or replays a
// value given on the command line.
type terminalPrompt struct {
	preset string
}

func (p terminalPrompt) Prompt(ctx context.Context, title, message string) (string, bool, error) {
	if p.preset != "" {
		return p.preset, true, nil
	}

	var value string
	input := huh.NewInput().
		Title(title).
		Description(message).
		Value(&value)

	if err := input.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}
