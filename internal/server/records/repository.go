// Package records provides PostgreSQL-backed storage and business rules for
// vaccination-type rows.
package records

import (
	"context"

	"vaxreg/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.VaccinationType, error)
	GetByID(ctx context.Context, id string) (*models.VaccinationType, error)
	Create(ctx context.Context, rec *models.VaccinationType) (*models.VaccinationType, error)
	UpdateDescription(ctx context.Context, id, description string) (*models.VaccinationType, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]*models.VaccinationType, error)
}
