// Package users provides storage and business rules for application
// profile rows. Profiles are inserted once at sign-up and read afterwards;
// the application never updates or deletes them.
package users

import (
	"context"

	"vaxreg/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
