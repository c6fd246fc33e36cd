package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// PeopleAddCmd adds a roster member
type PeopleAddCmd struct {
	Name    string `arg:"" help:"Person's name"`
	Group   string `help:"Squad the person belongs to (M1, W2, ...)" default:""`
	ID      string `help:"Explicit person id (generated if omitted)" default:""`
	License string `help:"License number" default:""`
}

// Run executes the add command
func (p *PeopleAddCmd) Run(cli *CLI) error {
	id := p.ID
	if id == "" {
		id = uuid.New().String()
	}

	person := domain.Person{
		ID:        id,
		Name:      p.Name,
		Group:     p.Group,
		LicenseNo: p.License,
	}

	if err := cli.Container.RosterService.AddPerson(context.Background(), person); err != nil {
		return err
	}

	fmt.Printf("Person '%s' added with id %s\n", p.Name, id)
	return nil
}
