package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/gesture"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/layout"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/theme"
)

const (
	timeGutterWidth = 6
	minDayColWidth  = 10
)

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpView()
	case stateLicense:
		if m.licenseForm != nil {
			return lipgloss.JoinVertical(lipgloss.Left,
				theme.TitleStyle.Render("Assign player"),
				m.licenseForm.View())
		}
	case stateCreating:
		if m.sessionForm != nil {
			return lipgloss.JoinVertical(lipgloss.Left,
				theme.TitleStyle.Render("New session"),
				m.sessionForm.View())
		}
	case statePicking:
		return m.pickerView()
	}
	return m.weekView()
}

func (m *Model) weekView() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Weekplaner " + m.weekID))
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

// renderGrid draws the seven day columns over a shared time window. Each
// day cell is split into the lanes its overlap cluster needs, so
// conflicting blocks sit side by side instead of on top of each other.
func (m *Model) renderGrid() string {
	dayItems := make([][]layout.Item, len(m.dates))
	for i, date := range m.dates {
		dayItems[i] = layout.ItemsForDay(m.plan.Sessions, date)
	}
	window := layout.WeekWindow(dayItems, m.granularity)
	for i := range dayItems {
		dayItems[i] = layout.Assign(dayItems[i], window)
	}

	colWidth := minDayColWidth
	if m.width > 0 {
		if w := (m.width - timeGutterWidth) / len(m.dates); w > colWidth {
			colWidth = w
		}
	}

	sessions := make(map[string]domain.Session, len(m.plan.Sessions))
	for _, s := range m.plan.Sessions {
		sessions[s.ID] = s
	}

	var b strings.Builder

	// Day header row.
	b.WriteString(strings.Repeat(" ", timeGutterWidth))
	for i, date := range m.dates {
		header := m.dayHeader(date)
		style := theme.DayHeaderStyle
		if i == m.dayIdx {
			style = theme.SelectedStyle
		}
		b.WriteString(style.Render(pad(header, colWidth)))
	}
	b.WriteString("\n")

	rows := (window.EndMin - window.StartMin + m.granularity - 1) / m.granularity
	for row := 0; row < rows; row++ {
		slotStart := window.StartMin + row*m.granularity

		label := fmt.Sprintf("%02d:%02d ", slotStart/60, slotStart%60)
		if m.state == stateDragging && m.slotRow(window) == row {
			b.WriteString(theme.SelectedStyle.Render(label))
		} else {
			b.WriteString(theme.MutedStyle.Render(label))
		}

		for day, date := range m.dates {
			b.WriteString(m.renderCell(dayItems[day], sessions, date, slotStart, colWidth))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCell draws one day's slot: every lane of the covering cluster
// gets an equal share of the cell width.
func (m *Model) renderCell(items []layout.Item, sessions map[string]domain.Session, date string, slotStart, colWidth int) string {
	slotEnd := slotStart + m.granularity

	lanes := 1
	covering := make([]*layout.Item, 0, 2)
	for i := range items {
		it := &items[i]
		if it.StartMin < slotEnd && it.EndMin > slotStart {
			covering = append(covering, it)
			if it.Columns > lanes {
				lanes = it.Columns
			}
		}
	}
	if len(covering) == 0 {
		if m.dragTargets(date, slotStart, slotEnd) {
			return theme.SelectedStyle.Render(pad("◆", colWidth))
		}
		return pad("", colWidth)
	}

	laneWidth := colWidth / lanes
	if laneWidth < 2 {
		laneWidth = 2
	}

	var b strings.Builder
	used := 0
	for lane := 0; lane < lanes && used+laneWidth <= colWidth; lane++ {
		var it *layout.Item
		for _, c := range covering {
			if c.Column == lane {
				it = c
				break
			}
		}
		if it == nil {
			b.WriteString(strings.Repeat(" ", laneWidth))
			used += laneWidth
			continue
		}

		text := "│"
		if it.StartMin >= slotStart {
			// First slot of the block carries its label.
			text = m.itemLabel(*it, sessions)
		}
		b.WriteString(m.itemStyle(*it, sessions).Render(pad(text, laneWidth)))
		used += laneWidth
	}
	if used < colWidth {
		b.WriteString(strings.Repeat(" ", colWidth-used))
	}
	return b.String()
}

func (m *Model) itemLabel(it layout.Item, sessions map[string]domain.Session) string {
	switch it.Kind {
	case layout.KindWarmup:
		return "warm-up"
	case layout.KindTravel:
		return "travel"
	}
	s, ok := sessions[it.SessionID]
	if !ok {
		return "?"
	}
	label := strings.Join(s.Teams, " ")
	if label == "" {
		label = s.Info
	}
	return label
}

func (m *Model) itemStyle(it layout.Item, sessions map[string]domain.Session) lipgloss.Style {
	if it.Kind != layout.KindSession {
		return theme.PreBlockStyle
	}
	s, ok := sessions[it.SessionID]
	if !ok {
		return theme.NormalStyle
	}
	if selected, found := m.selectedSession(); found && selected.ID == s.ID {
		return theme.SelectedStyle
	}
	if len(m.conflicts[s.ID]) > 0 {
		return theme.ConflictStyle
	}
	switch {
	case s.IsAwayGame():
		return theme.AwayGameStyle
	case s.IsGame():
		return theme.HomeGameStyle
	default:
		return theme.TrainingStyle
	}
}

func (m *Model) dayHeader(date string) string {
	day := domain.DayLabel(date)
	if len(day) > 3 {
		day = day[:3]
	}
	if len(date) >= 10 {
		return fmt.Sprintf("%s %s", day, date[5:])
	}
	return day
}

// slotRow maps the drag cursor to its grid row, or -1 when off-window.
func (m *Model) slotRow(w layout.Window) int {
	if m.slot.StartMin < w.StartMin || m.slot.StartMin >= w.EndMin {
		return -1
	}
	return (m.slot.StartMin - w.StartMin) / m.granularity
}

func (m *Model) dragTargets(date string, slotStart, slotEnd int) bool {
	return m.state == stateDragging &&
		m.slot.Date == date &&
		m.slot.StartMin >= slotStart && m.slot.StartMin < slotEnd
}

func (m *Model) pickerView() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Assign player"))
	b.WriteString("\n")

	session, _ := m.selectedSession()
	for i, p := range m.people {
		line := p.Name
		if p.Group != "" {
			line = fmt.Sprintf("%s (%s)", p.Name, p.Group)
		}
		if session.HasParticipant(p.ID) {
			line += " ✓"
		}
		if i == m.pickIdx {
			b.WriteString(theme.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(theme.NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString(theme.HelpStyle.Render("enter assign · esc cancel"))
	return b.String()
}

func (m *Model) footerView() string {
	if text, isError := m.notices.Line(); text != "" {
		if isError {
			return theme.ErrorStyle.Render(text)
		}
		return theme.NoticeStyle.Render(text)
	}

	if m.state == stateDragging {
		item, _ := m.machine.Dragging()
		verb := "move to"
		switch item.Kind {
		case gesture.DragResize:
			verb = "resize to"
		case gesture.DragPreBlock:
			verb = "extend to"
		}
		return theme.HelpStyle.Render(fmt.Sprintf(
			"%s %s %s · enter drop · esc cancel",
			verb, domain.DayLabel(m.slot.Date), minuteClock(m.slot.StartMin)))
	}

	if m.readOnly {
		return theme.HelpStyle.Render("h/l day · j/k session · [/] week · q quit")
	}
	return theme.HelpStyle.Render("h/l day · j/k session · [/] week · m move · r resize · a assign · n new · ? help")
}

func (m *Model) helpView() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Weekplaner keys"))
	b.WriteString("\n")
	lines := []string{
		"h / l      previous / next day",
		"j / k      next / previous session",
		"[ / ]      previous / next week",
		"m          move the selected session",
		"r          resize the selected session (trainings only)",
		"w          resize the warm-up block (away games)",
		"t          resize the travel block (away games)",
		"a          assign a player",
		"n          new session",
		"d          delete the selected session",
		"q          quit",
	}
	for _, line := range lines {
		b.WriteString(theme.NormalStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(theme.HelpStyle.Render("any key to close"))
	return b.String()
}

func minuteClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// pad truncates or right-pads s to width cells, keeping a one cell gap.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}
