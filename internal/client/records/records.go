// Package records is the client-side access layer for the
// vaccination-type catalogue. It is stateless: every call goes to the
// backend, no caching, and results are returned as-is.
package records

import (
	"context"
	"errors"

	"vaxreg/internal/client/api"
	"vaxreg/internal/models"
)

// RecordError is returned by all operations of the access layer. It
// keeps the backend's message verbatim and unwraps to the api sentinel
// so callers can discriminate, e.g. errors.Is(err, api.ErrNotFound).
type RecordError struct {
	Message string
	err     error
}

func (e *RecordError) Error() string { return e.Message }

func (e *RecordError) Unwrap() error { return e.err }

// IsNotFound reports whether err denotes a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, api.ErrNotFound)
}

// Service exposes the catalogue operations over an API client.
type Service struct {
	api api.Client
}

func NewService(client api.Client) *Service {
	return &Service{api: client}
}

func (s *Service) wrap(err error) error {
	if err == nil {
		return nil
	}
	return &RecordError{Message: err.Error(), err: err}
}

// ListAll returns every record, newest first. An empty catalogue is an
// empty slice, not an error.
func (s *Service) ListAll(ctx context.Context) ([]*models.VaccinationType, error) {
	recs, err := s.api.ListVaccinationTypes(ctx)
	if err != nil {
		return nil, s.wrap(err)
	}
	return recs, nil
}

// GetByID returns a single record. A missing id yields a RecordError
// matching api.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*models.VaccinationType, error) {
	rec, err := s.api.GetVaccinationType(ctx, id)
	if err != nil {
		return nil, s.wrap(err)
	}
	return rec, nil
}

// Create inserts a new record attributed to createdBy. Title and
// description are required; the backend assigns id and timestamps.
func (s *Service) Create(ctx context.Context, title, description, createdBy string) (*models.VaccinationType, error) {
	rec, err := s.api.CreateVaccinationType(ctx, title, description, createdBy)
	if err != nil {
		return nil, s.wrap(err)
	}
	return rec, nil
}

// Update replaces the description of an existing record. The title is
// immutable after create, so nothing else can be changed here.
func (s *Service) Update(ctx context.Context, id, description string) (*models.VaccinationType, error) {
	rec, err := s.api.UpdateVaccinationType(ctx, id, description)
	if err != nil {
		return nil, s.wrap(err)
	}
	return rec, nil
}

// Delete removes a record permanently. Deleting an already-deleted
// record fails with a not-found RecordError.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.wrap(s.api.DeleteVaccinationType(ctx, id))
}

// Search returns records whose title contains the query, matched
// case-insensitively. An empty query returns everything.
func (s *Service) Search(ctx context.Context, query string) ([]*models.VaccinationType, error) {
	recs, err := s.api.SearchVaccinationTypes(ctx, query)
	if err != nil {
		return nil, s.wrap(err)
	}
	return recs, nil
}

// Subscribe opens a live change feed. The handle's Events channel
// yields inserts, updates and deletes until Close is called. No replay:
// only changes after the call are delivered.
func (s *Service) Subscribe(ctx context.Context) (*api.Subscription, error) {
	sub, err := s.api.Subscribe(ctx)
	if err != nil {
		return nil, s.wrap(err)
	}
	return sub, nil
}
