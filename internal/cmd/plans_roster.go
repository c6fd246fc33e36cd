package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// PlansRosterCmd lists a week's roster-relevant sessions with their
// assigned people
type PlansRosterCmd struct {
	Week string `arg:"" optional:"" help:"Week to list, defaults to the current week"`
}

// Run executes the roster command
func (p *PlansRosterCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(p.Week)
	if err != nil {
		return err
	}

	ctx := context.Background()
	plan, err := cli.Container.PlanService.LoadPlan(ctx, weekID)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	people, err := cli.Container.RosterService.PeopleByID(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	sessions := plan.RosterSessions()
	fmt.Printf("Week: %s\n", plan.WeekID)
	if len(sessions) == 0 {
		fmt.Println("No sessions")
		return nil
	}
	for _, s := range sessions {
		fmt.Println(rosterLine(s, people))
	}
	return nil
}

// rosterLine renders one roster row: session summary plus participant
// names, falling back to the raw id for unknown people.
func rosterLine(s domain.Session, people map[string]domain.Person) string {
	names := make([]string, 0, len(s.Participants))
	for _, id := range s.Participants {
		if person, ok := people[id]; ok && person.Name != "" {
			names = append(names, person.Name)
			continue
		}
		names = append(names, id)
	}
	who := "-"
	if len(names) > 0 {
		who = strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s %-13s %-24s %s", s.Date, s.Time, strings.Join(s.Teams, " "), who)
}
