package cmd

import (
	"context"
	"fmt"
)

// PeopleSetLicenseCmd stores a license number for a roster member
type PeopleSetLicenseCmd struct {
	ID      string `arg:"" help:"Person id"`
	License string `arg:"" help:"License number (empty string removes it)"`
}

// Run executes the set-license command
func (p *PeopleSetLicenseCmd) Run(cli *CLI) error {
	if err := cli.Container.RosterService.SetLicense(context.Background(), p.ID, p.License); err != nil {
		return err
	}

	if p.License == "" {
		fmt.Printf("License removed for %s\n", p.ID)
	} else {
		fmt.Printf("License stored for %s\n", p.ID)
	}
	return nil
}
