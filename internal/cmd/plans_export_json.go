package cmd

import (
	"context"
	"fmt"
)

// PlansExportJsonCmd exports a week as a legacy plan blob
type PlansExportJsonCmd struct {
	Week string `arg:"" help:"Week to export"`
	Path string `arg:"" help:"Target file path"`
}

// Run executes the export-json command
func (p *PlansExportJsonCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(p.Week)
	if err != nil {
		return err
	}

	if err := cli.Container.ImportService.ExportBlob(context.Background(), weekID, p.Path); err != nil {
		return fmt.Errorf("failed to export plan blob: %w", err)
	}

	fmt.Printf("Week %s exported to %s\n", weekID, p.Path)
	return nil
}
