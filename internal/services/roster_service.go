package services

import (
	"context"
	"fmt"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/ports"
)

// RosterService manages the people who can be assigned to sessions.
type RosterService struct {
	people ports.PersonRepository
}

// NewRosterService creates a new RosterService.
func NewRosterService(people ports.PersonRepository) *RosterService {
	return &RosterService{people: people}
}

// ListPeople returns the roster ordered by group, then name.
func (s *RosterService) ListPeople(ctx context.Context) ([]domain.Person, error) {
	return s.people.ListPeople(ctx)
}

// GetPerson loads one roster member.
func (s *RosterService) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	return s.people.GetPerson(ctx, id)
}

// AddPerson stores a roster member.
func (s *RosterService) AddPerson(ctx context.Context, person domain.Person) error {
	if person.ID == "" {
		return fmt.Errorf("person has no id")
	}
	if err := s.people.PutPerson(ctx, person); err != nil {
		return fmt.Errorf("failed to add person: %w", err)
	}
	logging.Logger.Info("person added", "person", person.ID, "group", person.Group)
	return nil
}

// SetLicense stores a license number for a roster member.
func (s *RosterService) SetLicense(ctx context.Context, id, licenseNo string) error {
	if err := s.people.SetLicense(ctx, id, licenseNo); err != nil {
		return fmt.Errorf("failed to set license: %w", err)
	}
	logging.Logger.Info("license stored", "person", id)
	return nil
}

// DeletePerson removes a roster member.
func (s *RosterService) DeletePerson(ctx context.Context, id string) error {
	return s.people.DeletePerson(ctx, id)
}

// PeopleByID returns the roster indexed by id, for display lookups.
func (s *RosterService) PeopleByID(ctx context.Context) (map[string]domain.Person, error) {
	people, err := s.people.ListPeople(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}
	return byID, nil
}
