package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/adapters/storage"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/adapters/travel"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/services"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/ui"
)

// sessionModel wraps ui.Model to close the session's database handle on
// quit.
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
	repo      *storage.SQLiteRepository
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.repo.Close(); err != nil {
			logging.Logger.Error("failed to close database for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a read-only week view model for each SSH session.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("new SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	repo, err := storage.NewSQLiteRepository(s.dbPath)
	if err != nil {
		logging.Logger.Error("failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	travelProvider := travel.NewStaticProvider(s.settings.TravelDefaults)
	planService := services.NewPlanService(repo, repo, travelProvider)
	rosterService := services.NewRosterService(repo)

	errorClearDelay := 10 * time.Second
	if s.settings.ErrorClearDelay != nil {
		errorClearDelay = time.Duration(*s.settings.ErrorClearDelay) * time.Second
	}

	model := ui.NewModel(
		domain.WeekID(time.Now()),
		s.settings.GranularityOrDefault(),
		errorClearDelay,
		true, // remote viewers never mutate
		planService,
		rosterService,
	)

	wrappedModel := &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
		repo:      repo,
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
