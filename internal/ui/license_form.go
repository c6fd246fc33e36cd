package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// licenseForm collects a license number before a gated game assignment.
// Submitting an empty value is a deliberate decline (the player keeps no
// license and is not assigned); escape aborts the whole assignment.
type licenseForm struct {
	form      *huh.Form
	value     string
	cancelled bool
	completed bool
}

func newLicenseForm(personName, sessionInfo string) *licenseForm {
	lf := &licenseForm{}

	description := fmt.Sprintf("%s needs a license number for this game", personName)
	if sessionInfo != "" {
		description = fmt.Sprintf("%s needs a license number for %s", personName, sessionInfo)
	}

	lf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("License number").
				Description(description).
				Placeholder("leave empty to remove the stored license").
				Value(&lf.value),
		),
	)

	return lf
}

func (lf *licenseForm) Init() tea.Cmd {
	return lf.form.Init()
}

func (lf *licenseForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			lf.cancelled = true
			return nil
		}
	}

	form, cmd := lf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		lf.form = f
	}

	if lf.form.State == huh.StateCompleted {
		lf.completed = true
	}
	return cmd
}

func (lf *licenseForm) View() string {
	if lf.form != nil {
		return lf.form.View()
	}
	return ""
}

func (lf *licenseForm) Cancelled() bool {
	return lf.cancelled
}

// Value returns the entered license number once the form completed.
func (lf *licenseForm) Value() (string, bool) {
	return lf.value, lf.completed
}

// collectedPrompt replays a value the UI already collected. The drop
// pipeline asks its prompt for the license number; in the TUI the form
// ran first, so the prompt just hands the captured input through.
type collectedPrompt struct {
	value string
}

func (p collectedPrompt) Prompt(ctx context.Context, title, message string) (string, bool, error) {
	return p.value, true, nil
}
