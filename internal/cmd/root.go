package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/config"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the weekplaner TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Share the planner read-only over SSH"`
	Plans    PlansCmd    `cmd:"plans" help:"Manage week plans (list, view, duplicate, import, export)"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage sessions of a week (add, del, move, resize, assign)"`
	People   PeopleCmd   `cmd:"people" help:"Manage the roster (list, add, set-license, del)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("WEEKPLANER_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("WEEKPLANER_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("WEEKPLANER_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("WEEKPLANER_DEBUG_FILE", logFilePath)
		}
	}

	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Week            string `arg:"" optional:"" help:"Week to open (2026-W09 or any date of the week), defaults to the current week"`
	ErrorClearDelay int    `help:"Seconds before notices auto-clear" default:"5"`
	Granularity     int    `help:"Grid granularity in minutes" default:"30"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if r.ErrorClearDelay == 5 {
			if cli.settings.ErrorClearDelay != nil {
				r.ErrorClearDelay = *cli.settings.ErrorClearDelay
			}
		}
		if r.Granularity == 30 {
			r.Granularity = cli.settings.GranularityOrDefault()
		}
	}

	weekID, err := resolveWeek(r.Week)
	if err != nil {
		return err
	}

	model := ui.NewModel(
		weekID,
		r.Granularity,
		time.Duration(r.ErrorClearDelay)*time.Second,
		false,
		cli.Container.PlanService,
		cli.Container.RosterService,
	)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveWeek turns a week id or any date of a week into a week id.
// Empty input means the current week.
func resolveWeek(arg string) (string, error) {
	if arg == "" {
		return domain.WeekID(time.Now()), nil
	}
	if _, err := domain.WeekStart(arg); err == nil {
		return arg, nil
	}
	if t, err := domain.ParseDate(arg); err == nil {
		return domain.WeekID(t), nil
	}
	return "", fmt.Errorf("unrecognized week %q (want 2026-W09 or 2026-02-24)", arg)
}
