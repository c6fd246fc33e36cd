package cmd

import (
	"context"
	"fmt"
)

// PeopleListCmd lists roster members
type PeopleListCmd struct{}

// Run executes the list command
func (p *PeopleListCmd) Run(cli *CLI) error {
	people, err := cli.Container.RosterService.ListPeople(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list people: %w", err)
	}

	if len(people) == 0 {
		fmt.Println("No roster members")
		return nil
	}
	for _, person := range people {
		license := "-"
		if person.LicenseNo != "" {
			license = person.LicenseNo
		}
		fmt.Printf("%-12s %-24s %-6s %s\n", person.ID, person.Name, person.Group, license)
	}
	return nil
}
