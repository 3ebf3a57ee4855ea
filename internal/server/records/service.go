package records

import (
	"context"
	"fmt"

	"vaxreg/internal/models"
	"vaxreg/internal/server/feed"
)

// Service owns the vaccination-type business rules and publishes a change
// event to the feed hub after every successful mutation. The publish happens
// after the transaction commits, so a subscriber may observe the
// notification before or after a concurrent reader sees the row.
type Service struct {
	repo Repository
	hub  *feed.Hub
}

func NewService(repo Repository, hub *feed.Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) List(ctx context.Context) ([]*models.VaccinationType, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.VaccinationType, error) {
	return s.repo.GetByID(ctx, id)
}

// Search matches the query case-insensitively against titles. An empty query
// matches every record.
func (s *Service) Search(ctx context.Context, query string) ([]*models.VaccinationType, error) {
	return s.repo.Search(ctx, query)
}

func (s *Service) Create(ctx context.Context, title, description, createdBy string) (*models.VaccinationType, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if createdBy == "" {
		return nil, fmt.Errorf("creator is required")
	}

	rec, err := s.repo.Create(ctx, &models.VaccinationType{
		Title:       title,
		Description: description,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return nil, err
	}

	s.hub.Publish(ctx, models.ChangeEvent{
		Type:     models.ChangeInsert,
		Record:   rec,
		RecordID: rec.ID,
	})

	return rec, nil
}

// Update mutates the description only; the title is immutable after
// creation and is not part of this operation's contract.
func (s *Service) Update(ctx context.Context, id, description string) (*models.VaccinationType, error) {
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}

	rec, err := s.repo.UpdateDescription(ctx, id, description)
	if err != nil {
		return nil, err
	}

	s.hub.Publish(ctx, models.ChangeEvent{
		Type:     models.ChangeUpdate,
		Record:   rec,
		RecordID: rec.ID,
	})

	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Publish(ctx, models.ChangeEvent{
		Type:     models.ChangeDelete,
		RecordID: id,
	})

	return nil
}
