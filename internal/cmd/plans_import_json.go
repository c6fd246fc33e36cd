package cmd

import (
	"context"
	"fmt"
)

// PlansImportJsonCmd imports a legacy plan blob
type PlansImportJsonCmd struct {
	Path string `arg:"" help:"Path of the plan blob to import"`
}

// Run executes the import-json command
func (p *PlansImportJsonCmd) Run(cli *CLI) error {
	plan, err := cli.Container.ImportService.ImportBlob(context.Background(), p.Path)
	if err != nil {
		return fmt.Errorf("failed to import plan blob: %w", err)
	}

	fmt.Printf("Imported week %s (%d sessions)\n", plan.WeekID, len(plan.Sessions))
	return nil
}
