package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// PlansViewCmd views a week's sessions and conflicts
type PlansViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Week   string `arg:"" optional:"" help:"Week to view, defaults to the current week"`
}

// Run executes the view command
func (p *PlansViewCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(p.Week)
	if err != nil {
		return err
	}

	ctx := context.Background()
	plan, err := cli.Container.PlanService.LoadPlan(ctx, weekID)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	if p.Format == "json" {
		return p.printJSON(plan)
	}
	return p.printTable(plan)
}

func (p *PlansViewCmd) printJSON(plan domain.Plan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (p *PlansViewCmd) printTable(plan domain.Plan) error {
	fmt.Printf("Week: %s\n", plan.WeekID)
	if len(plan.Sessions) == 0 {
		fmt.Println("No sessions")
		return nil
	}

	conflicts := domain.Conflicts(plan.Sessions)

	for _, s := range plan.Sessions {
		marker := " "
		if len(conflicts[s.ID]) > 0 {
			marker = "!"
		}
		fmt.Printf("%s %s %-9s %-13s %-24s %s\n",
			marker, s.Date, domain.DayLabel(s.Date), s.Time,
			strings.Join(s.Teams, " "), s.Location)
	}

	for id, cs := range conflicts {
		idx := plan.FindSession(id)
		if idx == -1 {
			continue
		}
		for _, c := range cs {
			fmt.Printf("conflict: %s overlaps %s (shared: %s)\n",
				describeSession(plan.Sessions[idx]),
				describeConflictPeer(plan, c.SessionID),
				c.PersonID)
		}
	}
	return nil
}

func describeSession(s domain.Session) string {
	return fmt.Sprintf("%s %s %s", s.Date, s.Time, strings.Join(s.Teams, " "))
}

func describeConflictPeer(plan domain.Plan, id string) string {
	idx := plan.FindSession(id)
	if idx == -1 {
		return id
	}
	return describeSession(plan.Sessions[idx])
}
