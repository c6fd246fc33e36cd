package cmd

import (
	"context"
	"fmt"
)

// PeopleDelCmd deletes a roster member
type PeopleDelCmd struct {
	ID string `arg:"" help:"Person id"`
}

// Run executes the del command
func (p *PeopleDelCmd) Run(cli *CLI) error {
	if err := cli.Container.RosterService.DeletePerson(context.Background(), p.ID); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	fmt.Printf("Person %s deleted\n", p.ID)
	return nil
}
