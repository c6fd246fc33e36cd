package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// SessionsAddCmd adds a session to a week
type SessionsAddCmd struct {
	Date     string `arg:"" help:"Session date (2026-02-24)"`
	Time     string `help:"Time as HH:MM or HH:MM–HH:MM" default:""`
	Teams    string `help:"Comma-separated teams" default:""`
	Location string `help:"Location" default:""`
	Info     string `help:"Free-form note; \"@ Opponent\" or \"vs Opponent\" marks a game" default:""`
	Warmup   int    `help:"Warm-up minutes before an away game" default:"0"`
	Travel   int    `help:"Travel minutes before an away game" default:"0"`
}

// Run executes the add command
func (s *SessionsAddCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(s.Date)
	if err != nil {
		return err
	}

	var teams []string
	for _, team := range strings.Split(s.Teams, ",") {
		if team = strings.TrimSpace(team); team != "" {
			teams = append(teams, team)
		}
	}

	session := domain.Session{
		Date:      s.Date,
		Time:      s.Time,
		Teams:     teams,
		Location:  s.Location,
		Info:      s.Info,
		WarmupMin: s.Warmup,
		TravelMin: s.Travel,
	}

	plan, findings, err := cli.Container.PlanService.AddSession(context.Background(), weekID, session)
	if err != nil {
		return fmt.Errorf("failed to add session: %w", err)
	}

	for _, f := range findings {
		fmt.Printf("warning: %s\n", f.Kind)
	}
	fmt.Printf("Session added to %s (%d sessions)\n", plan.WeekID, len(plan.Sessions))
	return nil
}
