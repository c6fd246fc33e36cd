package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/adapters/blob"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/adapters/ics"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/config"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/ports"
)

// ImportService moves plans across formats: legacy JSON blobs and ICS
// fixture feeds in, ICS documents out.
type ImportService struct {
	planRepo ports.PlanRepository
	fetcher  *ics.Fetcher
}

// NewImportService creates a new ImportService.
func NewImportService(planRepo ports.PlanRepository, fetcher *ics.Fetcher) *ImportService {
	return &ImportService{planRepo: planRepo, fetcher: fetcher}
}

// ImportBlob loads a legacy plan blob and stores it. Sessions go through
// the domain reconstruction path, so blobs carrying only the string time
// range load fine.
func (s *ImportService) ImportBlob(ctx context.Context, path string) (domain.Plan, error) {
	plan, err := blob.ReadPlan(path)
	if err != nil {
		return domain.Plan{}, err
	}
	if plan.WeekID == "" {
		return domain.Plan{}, fmt.Errorf("plan blob %s has no weekId", path)
	}
	if err := s.planRepo.SavePlan(ctx, plan); err != nil {
		return domain.Plan{}, fmt.Errorf("failed to store imported plan: %w", err)
	}
	logging.Logger.Info("plan blob imported", "path", path, "week", plan.WeekID)
	return plan, nil
}

// ExportBlob writes a stored week as a legacy plan blob.
func (s *ImportService) ExportBlob(ctx context.Context, weekID, path string) error {
	plan, err := s.planRepo.GetPlan(ctx, weekID)
	if err != nil {
		return err
	}
	return blob.WritePlan(path, *plan)
}

// ImportFeeds fetches the configured ICS fixture feeds and merges the
// week's events into the plan as game sessions. Returns how many new
// sessions were added.
func (s *ImportService) ImportFeeds(ctx context.Context, weekID string, feeds []config.Feed) (int, error) {
	weekStart, err := domain.WeekStart(weekID)
	if err != nil {
		return 0, err
	}

	results, err := s.fetcher.FetchAll(ctx, feeds)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch feeds: %w", err)
	}

	var imported []domain.Session
	for _, res := range results {
		sessions, err := ics.SessionsFromFeed(res, weekStart)
		if err != nil {
			logging.Logger.Warn("feed skipped", "feed", res.Feed.ID, "error", err)
			continue
		}
		imported = append(imported, sessions...)
	}

	plan, err := s.planRepo.GetPlan(ctx, weekID)
	if errors.Is(err, domain.ErrPlanNotFound) {
		plan = &domain.Plan{WeekID: weekID}
	} else if err != nil {
		return 0, err
	}

	merged := ics.MergeImported(*plan, imported)
	added := len(merged.Sessions) - len(plan.Sessions)
	if added > 0 {
		if err := s.planRepo.SavePlan(ctx, merged); err != nil {
			return 0, fmt.Errorf("failed to store merged plan: %w", err)
		}
	}
	return added, nil
}

// ExportICS renders a stored week as an iCalendar document.
func (s *ImportService) ExportICS(ctx context.Context, weekID string) (string, error) {
	plan, err := s.planRepo.GetPlan(ctx, weekID)
	if err != nil {
		return "", err
	}
	return ics.ExportPlan(*plan)
}
