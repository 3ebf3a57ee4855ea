package users

import (
	"context"
	"errors"
	"fmt"

	"vaxreg/internal/common"
	"vaxreg/internal/models"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateProfile inserts the profile row for an already-created identity.
// The id must be the identity id; role must be a member of the closed
// role enumeration.
func (s *Service) CreateProfile(ctx context.Context, id, email, displayName, role string) (*models.User, error) {
	if id == "" || email == "" {
		return nil, fmt.Errorf("id and email are required")
	}

	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &models.User{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Role:        parsed,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fmt.Errorf("profile already exists: %w", err)
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return user, nil
}

// GetByID returns the profile row keyed by identity id, or
// common.ErrorNotFound when the row does not exist (a valid state during
// the sign-up two-step).
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}
	return user, nil
}
