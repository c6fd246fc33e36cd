package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// sessionForm creates a new session on the current week. The time field
// takes either a bare "HH:MM" or a full "HH:MM–HH:MM" range; the hyphen
// works as a separator too.
type sessionForm struct {
	form      *huh.Form
	cancelled bool
	completed bool

	date     string
	timeStr  string
	teams    string
	location string
	info     string
}

func newSessionForm(dates []string) *sessionForm {
	sf := &sessionForm{}
	if len(dates) > 0 {
		sf.date = dates[0]
	}

	options := make([]huh.Option[string], 0, len(dates))
	for _, date := range dates {
		label := date
		if day := domain.DayLabel(date); day != "" {
			label = fmt.Sprintf("%s %s", day, date)
		}
		options = append(options, huh.NewOption(label, date))
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Day").
				Options(options...).
				Value(&sf.date),
			huh.NewInput().
				Title("Time").
				Description("HH:MM or HH:MM–HH:MM").
				Placeholder("18:00–19:30").
				Value(&sf.timeStr).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, _, err := domain.ParseTimeRange(s); err != nil {
						return fmt.Errorf("unrecognized time: %s", s)
					}
					return nil
				}),
			huh.NewInput().
				Title("Teams").
				Description("comma separated").
				Placeholder("M1, M2").
				Value(&sf.teams),
			huh.NewInput().
				Title("Location").
				Value(&sf.location),
			huh.NewInput().
				Title("Info").
				Description("\"@ Opponent\" or \"vs Opponent\" marks a game").
				Placeholder("@ SC Rivals").
				Value(&sf.info),
		),
	)

	return sf
}

func (sf *sessionForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *sessionForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.cancelled = true
			return nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.completed = true
	}
	return cmd
}

func (sf *sessionForm) View() string {
	if sf.form != nil {
		return sf.form.View()
	}
	return ""
}

func (sf *sessionForm) Cancelled() bool {
	return sf.cancelled
}

// Session returns the entered session once the form completed. The
// session still goes through normalization on save, so defaults for a
// missing time or duration apply there.
func (sf *sessionForm) Session() (domain.Session, bool) {
	if !sf.completed {
		return domain.Session{}, false
	}

	var teams []string
	for _, team := range strings.Split(sf.teams, ",") {
		if team = strings.TrimSpace(team); team != "" {
			teams = append(teams, team)
		}
	}

	return domain.Session{
		Date:     sf.date,
		Time:     strings.TrimSpace(sf.timeStr),
		Teams:    teams,
		Location: strings.TrimSpace(sf.location),
		Info:     strings.TrimSpace(sf.info),
	}, true
}
