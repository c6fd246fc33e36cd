package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session kind colors
const (
	ColorTraining Color = "2"   // Green - training sessions
	ColorHomeGame Color = "4"   // Blue - home fixtures
	ColorAwayGame Color = "5"   // Magenta - away fixtures
	ColorPreBlock Color = "3"   // Yellow - warm-up/travel blocks
	ColorConflict Color = "196" // Bright red - double-booked sessions
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorNotice    Color = "214" // Orange - transient drop notices
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSelected  Color = "226" // Yellow - selected block
)
