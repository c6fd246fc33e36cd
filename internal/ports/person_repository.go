package ports

import (
	"context"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// PersonReader reads roster members.
type PersonReader interface {
	GetPerson(ctx context.Context, id string) (*domain.Person, error)
	ListPeople(ctx context.Context) ([]domain.Person, error)
}

// PersonWriter creates and updates roster members.
type PersonWriter interface {
	PutPerson(ctx context.Context, person domain.Person) error
	SetLicense(ctx context.Context, id, licenseNo string) error
	DeletePerson(ctx context.Context, id string) error
}

// PersonRepository is the composite interface.
type PersonRepository interface {
	PersonReader
	PersonWriter
}
