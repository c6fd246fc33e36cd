package ports

import (
	"context"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/domain"
)

// PlanReader reads week plans.
type PlanReader interface {
	GetPlan(ctx context.Context, weekID string) (*domain.Plan, error)
	ListWeeks(ctx context.Context) ([]string, error)
}

// PlanWriter stores and removes week plans.
type PlanWriter interface {
	SavePlan(ctx context.Context, plan domain.Plan) error
	DeletePlan(ctx context.Context, weekID string) error
}

// PlanRepository is the composite interface.
type PlanRepository interface {
	PlanReader
	PlanWriter
	Close() error
}
