package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/gesture"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/ports"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/services"
)

type uiState int

const (
	stateWeek uiState = iota
	stateDragging
	statePicking
	stateLicense
	stateCreating
	stateHelp
)

// Model is the week-view TUI. The selected day/session drive a keyboard
// "drag": Move/Resize keys begin a gesture on the gesture machine, the
// arrow keys steer the slot cursor, and enter drops. Only the drop
// mutates the plan; everything before it is visual feedback.
type Model struct {
	weekID    string
	dates     []string
	plan      domain.Plan
	people    []domain.Person
	conflicts map[string][]domain.Conflict

	planService   *services.PlanService
	rosterService *services.RosterService

	keys        KeyMap
	notices     *noticeManager
	granularity int
	readOnly    bool

	state   uiState
	dayIdx  int
	itemIdx int

	machine *gesture.Machine
	slot    gesture.DropTarget

	pickIdx       int
	pendingPerson string
	licenseForm   *licenseForm
	sessionForm   *sessionForm

	width  int
	height int
}

// NewModel creates the week-view model for one week.
func NewModel(
	weekID string,
	granularity int,
	errorClearDelay time.Duration,
	readOnly bool,
	planService *services.PlanService,
	rosterService *services.RosterService,
) *Model {
	dates, err := domain.WeekDates(weekID)
	if err != nil {
		// An unparseable week id still gets a usable (empty) grid.
		logging.Logger.Warn("invalid week id", "week", weekID, "error", err)
		dates = make([]string, 7)
	}

	return &Model{
		weekID:        weekID,
		dates:         dates,
		conflicts:     map[string][]domain.Conflict{},
		planService:   planService,
		rosterService: rosterService,
		keys:          DefaultKeyMap(),
		notices:       newNoticeManager(errorClearDelay),
		granularity:   granularity,
		readOnly:      readOnly,
		machine:       gesture.NewMachine(),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.loadPlanCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case planLoadedMsg:
		if msg.err != nil {
			m.notices.SetError(msg.err)
			return m, nil
		}
		m.plan = msg.plan
		m.people = msg.people
		m.conflicts = domain.Conflicts(m.plan.Sessions)
		m.clampCursor()
		return m, nil

	case dropAppliedMsg:
		m.state = stateWeek
		m.machine.Cancel()
		if msg.err != nil {
			m.notices.SetError(msg.err)
			return m, nil
		}
		m.plan = msg.result.Plan
		m.conflicts = domain.Conflicts(m.plan.Sessions)
		m.clampCursor()
		if msg.result.Notice != "" {
			return m, m.notices.SetNotice(msg.result.Notice)
		}
		return m, nil

	case sessionSavedMsg:
		m.state = stateWeek
		if msg.err != nil {
			m.notices.SetError(msg.err)
			return m, nil
		}
		m.plan = msg.plan
		m.conflicts = domain.Conflicts(m.plan.Sessions)
		m.clampCursor()
		return m, nil

	case clearNoticeMsg:
		m.notices.Clear()
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateForms(msg)
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateWeek:
		return m.updateWeekKeys(msg)
	case stateDragging:
		return m.updateDraggingKeys(msg)
	case statePicking:
		return m.updatePickingKeys(msg)
	case stateLicense, stateCreating:
		return m.updateForms(msg)
	case stateHelp:
		m.state = stateWeek
		return m, nil
	}
	return m, nil
}

func (m *Model) updateWeekKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.state = stateHelp
		return m, nil
	case key.Matches(msg, keys.PrevDay):
		m.moveDay(-1)
		return m, nil
	case key.Matches(msg, keys.NextDay):
		m.moveDay(1)
		return m, nil
	case key.Matches(msg, keys.PrevItem):
		m.moveItem(-1)
		return m, nil
	case key.Matches(msg, keys.NextItem):
		m.moveItem(1)
		return m, nil
	case key.Matches(msg, keys.PrevWeek):
		return m, m.switchWeek(-7)
	case key.Matches(msg, keys.NextWeek):
		return m, m.switchWeek(7)
	}

	if m.readOnly {
		return m, nil
	}

	session, ok := m.selectedSession()
	switch {
	case key.Matches(msg, keys.Move):
		if ok {
			m.beginDrag(gesture.DragItem{Kind: gesture.DragEvent, SessionID: session.ID},
				gesture.DropTarget{Kind: gesture.TargetSlot, Date: session.Date, StartMin: session.StartMin})
		}
	case key.Matches(msg, keys.Resize):
		if ok {
			m.beginDrag(gesture.DragItem{Kind: gesture.DragResize, SessionID: session.ID},
				gesture.DropTarget{Kind: gesture.TargetSlot, Date: session.Date, StartMin: session.EndMin()})
		}
	case key.Matches(msg, keys.Warmup):
		if ok && session.IsAwayGame() {
			m.beginDrag(gesture.DragItem{Kind: gesture.DragPreBlock, SessionID: session.ID, PreBlock: gesture.PreBlockWarmup},
				gesture.DropTarget{Kind: gesture.TargetSlot, Date: session.Date, StartMin: session.StartMin - session.WarmupMin})
		}
	case key.Matches(msg, keys.Travel):
		if ok && session.IsAwayGame() {
			m.beginDrag(gesture.DragItem{Kind: gesture.DragPreBlock, SessionID: session.ID, PreBlock: gesture.PreBlockTravel},
				gesture.DropTarget{Kind: gesture.TargetSlot, Date: session.Date, StartMin: session.StartMin - session.WarmupMin - session.TravelMin})
		}
	case key.Matches(msg, keys.Assign):
		if ok && len(m.people) > 0 {
			m.state = statePicking
			m.pickIdx = 0
		}
	case key.Matches(msg, keys.NewSession):
		m.sessionForm = newSessionForm(m.dates)
		m.state = stateCreating
		return m, m.sessionForm.Init()
	case key.Matches(msg, keys.Delete):
		if ok {
			return m, m.deleteSessionCmd(session.ID)
		}
	}
	return m, nil
}

func (m *Model) updateDraggingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Quit):
		m.machine.Cancel()
		m.state = stateWeek
		return m, nil
	case key.Matches(msg, keys.PrevDay):
		m.moveSlotDay(-1)
	case key.Matches(msg, keys.NextDay):
		m.moveSlotDay(1)
	case key.Matches(msg, keys.PrevItem):
		m.moveSlotTime(-m.granularity)
	case key.Matches(msg, keys.NextItem):
		m.moveSlotTime(m.granularity)
	case key.Matches(msg, keys.Confirm):
		item, dragging := m.machine.Dragging()
		if !dragging {
			m.state = stateWeek
			return m, nil
		}
		return m, m.applyDropCmd(item, m.slot, nil)
	}
	if err := m.machine.Move(m.slot); err != nil {
		m.notices.SetError(err)
	}
	return m, nil
}

func (m *Model) updatePickingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Quit):
		m.state = stateWeek
		return m, nil
	case key.Matches(msg, keys.PrevItem):
		if m.pickIdx > 0 {
			m.pickIdx--
		}
		return m, nil
	case key.Matches(msg, keys.NextItem):
		if m.pickIdx < len(m.people)-1 {
			m.pickIdx++
		}
		return m, nil
	case key.Matches(msg, keys.Confirm):
		session, ok := m.selectedSession()
		if !ok || m.pickIdx >= len(m.people) {
			m.state = stateWeek
			return m, nil
		}
		person := m.people[m.pickIdx]
		if session.RequiresLicense() && person.LicenseNo == "" {
			// Collect the license number first; the drop re-runs the
			// gating check with the collected value.
			m.pendingPerson = person.ID
			m.licenseForm = newLicenseForm(person.Name, session.Info)
			m.state = stateLicense
			return m, m.licenseForm.Init()
		}
		return m, m.assignCmd(session.ID, person.ID, nil)
	}
	return m, nil
}

func (m *Model) updateForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLicense:
		if m.licenseForm == nil {
			m.state = stateWeek
			return m, nil
		}
		cmd := m.licenseForm.Update(msg)
		if m.licenseForm.Cancelled() {
			// Gating abort: no mutation at all.
			m.licenseForm = nil
			m.pendingPerson = ""
			m.state = stateWeek
			return m, nil
		}
		if value, done := m.licenseForm.Value(); done {
			session, ok := m.selectedSession()
			personID := m.pendingPerson
			m.licenseForm = nil
			m.pendingPerson = ""
			if !ok {
				m.state = stateWeek
				return m, nil
			}
			return m, m.assignCmd(session.ID, personID, collectedPrompt{value: value})
		}
		return m, cmd

	case stateCreating:
		if m.sessionForm == nil {
			m.state = stateWeek
			return m, nil
		}
		cmd := m.sessionForm.Update(msg)
		if m.sessionForm.Cancelled() {
			m.sessionForm = nil
			m.state = stateWeek
			return m, nil
		}
		if session, done := m.sessionForm.Session(); done {
			m.sessionForm = nil
			return m, m.addSessionCmd(session)
		}
		return m, cmd
	}
	return m, nil
}

// beginDrag starts a gesture and places the slot cursor.
func (m *Model) beginDrag(item gesture.DragItem, slot gesture.DropTarget) {
	if err := m.machine.Begin(item); err != nil {
		m.notices.SetError(err)
		return
	}
	m.slot = slot
	m.state = stateDragging
}

func (m *Model) moveDay(delta int) {
	m.dayIdx = clamp(m.dayIdx+delta, 0, len(m.dates)-1)
	m.itemIdx = 0
	m.clampCursor()
}

func (m *Model) moveItem(delta int) {
	m.itemIdx += delta
	m.clampCursor()
}

func (m *Model) moveSlotDay(delta int) {
	for i, date := range m.dates {
		if date == m.slot.Date {
			m.slot.Date = m.dates[clamp(i+delta, 0, len(m.dates)-1)]
			return
		}
	}
	if len(m.dates) > 0 {
		m.slot.Date = m.dates[0]
	}
}

func (m *Model) moveSlotTime(delta int) {
	m.slot.StartMin = clamp(m.slot.StartMin+delta, 0, 24*60)
}

func (m *Model) clampCursor() {
	sessions := m.daySessions()
	if len(sessions) == 0 {
		m.itemIdx = 0
		return
	}
	m.itemIdx = clamp(m.itemIdx, 0, len(sessions)-1)
}

func (m *Model) daySessions() []domain.Session {
	if m.dayIdx < 0 || m.dayIdx >= len(m.dates) {
		return nil
	}
	return m.plan.SessionsForDate(m.dates[m.dayIdx])
}

func (m *Model) selectedSession() (domain.Session, bool) {
	sessions := m.daySessions()
	if m.itemIdx < 0 || m.itemIdx >= len(sessions) {
		return domain.Session{}, false
	}
	return sessions[m.itemIdx], true
}

func (m *Model) switchWeek(offsetDays int) tea.Cmd {
	start, err := domain.WeekStart(m.weekID)
	if err != nil {
		m.notices.SetError(err)
		return nil
	}
	m.weekID = domain.WeekID(start.AddDate(0, 0, offsetDays))
	dates, err := domain.WeekDates(m.weekID)
	if err != nil {
		m.notices.SetError(err)
		return nil
	}
	m.dates = dates
	m.dayIdx = 0
	m.itemIdx = 0
	return m.loadPlanCmd()
}

// Commands

func (m *Model) loadPlanCmd() tea.Cmd {
	weekID := m.weekID
	return func() tea.Msg {
		ctx := context.Background()
		plan, err := m.planService.LoadPlan(ctx, weekID)
		if err != nil {
			return planLoadedMsg{err: err}
		}
		people, err := m.rosterService.ListPeople(ctx)
		if err != nil {
			return planLoadedMsg{err: err}
		}
		return planLoadedMsg{plan: plan, people: people}
	}
}

func (m *Model) applyDropCmd(item gesture.DragItem, target gesture.DropTarget, prompt ports.IdentifierPrompt) tea.Cmd {
	weekID := m.weekID
	return func() tea.Msg {
		result, err := m.planService.ApplyDrop(context.Background(), weekID, item, target, prompt)
		return dropAppliedMsg{result: result, err: err}
	}
}

func (m *Model) assignCmd(sessionID, personID string, prompt ports.IdentifierPrompt) tea.Cmd {
	item := gesture.DragItem{Kind: gesture.DragPlayer, SessionID: sessionID, PersonID: personID}
	target := gesture.DropTarget{Kind: gesture.TargetSession, SessionID: sessionID}
	return m.applyDropCmd(item, target, prompt)
}

func (m *Model) addSessionCmd(session domain.Session) tea.Cmd {
	weekID := m.weekID
	return func() tea.Msg {
		plan, _, err := m.planService.AddSession(context.Background(), weekID, session)
		return sessionSavedMsg{plan: plan, err: err}
	}
}

func (m *Model) deleteSessionCmd(sessionID string) tea.Cmd {
	weekID := m.weekID
	return func() tea.Msg {
		plan, err := m.planService.DeleteSession(context.Background(), weekID, sessionID)
		return sessionSavedMsg{plan: plan, err: err}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
