package cmd

import (
	adapterstorage "github.com/ClutchChemist/Weekplaner-sub000/internal/adapters/storage"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/adapters/ics"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/adapters/travel"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/config"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/ports"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	PlanService   *services.PlanService
	RosterService *services.RosterService
	ImportService *services.ImportService

	// Internal - for cleanup only
	planRepo ports.PlanRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	var travelDefaults map[string]int
	if settings != nil {
		travelDefaults = settings.TravelDefaults
	}
	travelProvider := travel.NewStaticProvider(travelDefaults)

	planService := services.NewPlanService(repo, repo, travelProvider)
	rosterService := services.NewRosterService(repo)
	importService := services.NewImportService(repo, ics.NewFetcher())

	return &Container{
		PlanService:   planService,
		RosterService: rosterService,
		ImportService: importService,
		planRepo:      repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.planRepo != nil {
		return c.planRepo.Close()
	}
	return nil
}
