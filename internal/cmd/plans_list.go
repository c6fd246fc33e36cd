package cmd

import (
	"context"
	"fmt"
)

// PlansListCmd lists stored weeks
type PlansListCmd struct{}

// Run executes the list command
func (p *PlansListCmd) Run(cli *CLI) error {
	weeks, err := cli.Container.PlanService.ListWeeks(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list weeks: %w", err)
	}

	if len(weeks) == 0 {
		fmt.Println("No weeks stored")
		return nil
	}
	for _, week := range weeks {
		fmt.Println(week)
	}
	return nil
}
