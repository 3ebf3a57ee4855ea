package api

import (
	"context"

	"vaxreg/internal/models"
)

// Client is the transport-agnostic contract to talk to the registry
// backend: identity and session management, profile lookups, the
// vaccination-type catalogue, and the change feed.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	CreateIdentity(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	InvalidateSession(ctx context.Context) error
	GetSession(ctx context.Context) (string, error)

	CreateProfile(ctx context.Context, id, email, displayName string, role models.Role) (*models.User, error)
	GetProfile(ctx context.Context, id string) (*models.User, error)

	ListVaccinationTypes(ctx context.Context) ([]*models.VaccinationType, error)
	GetVaccinationType(ctx context.Context, id string) (*models.VaccinationType, error)
	CreateVaccinationType(ctx context.Context, title, description, createdBy string) (*models.VaccinationType, error)
	UpdateVaccinationType(ctx context.Context, id, description string) (*models.VaccinationType, error)
	DeleteVaccinationType(ctx context.Context, id string) error
	SearchVaccinationTypes(ctx context.Context, query string) ([]*models.VaccinationType, error)

	Subscribe(ctx context.Context) (*Subscription, error)

	// AccessToken returns the access token from the last successful
	// authentication, or "" when no session is held.
	AccessToken() string
	// ClearTokens drops the held token pair.
	ClearTokens()
}
