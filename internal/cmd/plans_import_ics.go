package cmd

import (
	"context"
	"fmt"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/config"
)

// PlansImportIcsCmd merges fixture feed events into a week
type PlansImportIcsCmd struct {
	Week string `arg:"" optional:"" help:"Week to import into, defaults to the current week"`
}

// Run executes the import-ics command
func (p *PlansImportIcsCmd) Run(cli *CLI) error {
	weekID, err := resolveWeek(p.Week)
	if err != nil {
		return err
	}

	feeds, err := config.LoadFeeds()
	if err != nil {
		return fmt.Errorf("failed to load feeds: %w", err)
	}
	if len(feeds.Feeds) == 0 {
		return fmt.Errorf("no feeds configured in %s", config.GetFeedsPath())
	}

	added, err := cli.Container.ImportService.ImportFeeds(context.Background(), weekID, feeds.Feeds)
	if err != nil {
		return fmt.Errorf("failed to import feeds: %w", err)
	}

	fmt.Printf("Imported %d new sessions into %s\n", added, weekID)
	return nil
}
