package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorNotice)

	DayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSubtle)
)

// Block styles on the week grid
var (
	TrainingStyle = lipgloss.NewStyle().
			Foreground(ColorTraining)

	HomeGameStyle = lipgloss.NewStyle().
			Foreground(ColorHomeGame)

	AwayGameStyle = lipgloss.NewStyle().
			Foreground(ColorAwayGame)

	PreBlockStyle = lipgloss.NewStyle().
			Foreground(ColorPreBlock)

	ConflictStyle = lipgloss.NewStyle().
			Foreground(ColorConflict).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorSelected).
			Bold(true)
)
