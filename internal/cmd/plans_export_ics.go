package cmd

import (
	"context"
	"fmt"
	"os"
)

// PlansExportIcsCmd writes a week as an iCalendar document
type PlansExportIcsCmd struct {
	Week   string `arg:"" optional:"" help:"Week to export, defaults to the current week"`
	Output string `help:"Output file (stdout if omitted)" short:"o"`
}

// Run executes the export-ics command
func (p *PlansExportIcsCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(p.Week)
	if err != nil {
		return err
	}

	document, err := cli.Container.ImportService.ExportICS(context.Background(), weekID)
	if err != nil {
		return fmt.Errorf("failed to export week: %w", err)
	}

	if p.Output == "" {
		fmt.Print(document)
		return nil
	}
	if err := os.WriteFile(p.Output, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.Output, err)
	}
	fmt.Printf("Week %s exported to %s\n", weekID, p.Output)
	return nil
}
