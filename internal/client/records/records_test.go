package records

import (
	"context"
	"testing"

	"vaxreg/internal/client/api"
	"vaxreg/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	api.Client

	listResp []*models.VaccinationType
	listErr  error

	getResp *models.VaccinationType
	getErr  error

	createResp *models.VaccinationType
	createErr  error

	updateResp *models.VaccinationType
	updateErr  error

	deleteErr error

	searchResp  []*models.VaccinationType
	searchErr   error
	searchQuery string

	updateID          string
	updateDescription string
}

func (f *fakeClient) ListVaccinationTypes(ctx context.Context) ([]*models.VaccinationType, error) {
	return f.listResp, f.listErr
}

func (f *fakeClient) GetVaccinationType(ctx context.Context, id string) (*models.VaccinationType, error) {
	return f.getResp, f.getErr
}

func (f *fakeClient) CreateVaccinationType(ctx context.Context, title, description, createdBy string) (*models.VaccinationType, error) {
	return f.createResp, f.createErr
}

func (f *fakeClient) UpdateVaccinationType(ctx context.Context, id, description string) (*models.VaccinationType, error) {
	f.updateID = id
	f.updateDescription = description
	return f.updateResp, f.updateErr
}

func (f *fakeClient) DeleteVaccinationType(ctx context.Context, id string) error {
	return f.deleteErr
}

func (f *fakeClient) SearchVaccinationTypes(ctx context.Context, query string) ([]*models.VaccinationType, error) {
	f.searchQuery = query
	return f.searchResp, f.searchErr
}

func TestListAll_EmptyCatalogueIsEmptySlice(t *testing.T) {
	f := &fakeClient{listResp: []*models.VaccinationType{}}
	s := NewService(f)

	recs, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestGetByID_NotFoundDiscriminated(t *testing.T) {
	f := &fakeClient{getErr: &api.Error{Message: "record not found", Kind: api.ErrNotFound}}
	s := NewService(f)

	_, err := s.GetByID(context.Background(), "nope")
	require.Error(t, err)

	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "record not found", recErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestUpdate_PassesIDAndDescriptionOnly(t *testing.T) {
	f := &fakeClient{updateResp: &models.VaccinationType{ID: "r1", Title: "BCG", Description: "v2"}}
	s := NewService(f)

	rec, err := s.Update(context.Background(), "r1", "v2")
	require.NoError(t, err)

	assert.Equal(t, "r1", f.updateID)
	assert.Equal(t, "v2", f.updateDescription)
	assert.Equal(t, "BCG", rec.Title)
}

func TestDelete_OfDeletedRecordIsNotFound(t *testing.T) {
	f := &fakeClient{deleteErr: &api.Error{Message: "record not found", Kind: api.ErrNotFound}}
	s := NewService(f)

	err := s.Delete(context.Background(), "gone")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSearch_PassesQueryThrough(t *testing.T) {
	f := &fakeClient{searchResp: []*models.VaccinationType{{ID: "r1", Title: "Hepatitis B"}}}
	s := NewService(f)

	recs, err := s.Search(context.Background(), "hep")
	require.NoError(t, err)
	assert.Equal(t, "hep", f.searchQuery)
	require.Len(t, recs, 1)
	assert.Equal(t, "Hepatitis B", recs[0].Title)
}

func TestSearch_EmptyQueryReturnsEverything(t *testing.T) {
	all := []*models.VaccinationType{{ID: "r1"}, {ID: "r2"}}
	f := &fakeClient{searchResp: all}
	s := NewService(f)

	recs, err := s.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", f.searchQuery)
	assert.Len(t, recs, 2)
}

func TestCreate_WrapsBackendMessage(t *testing.T) {
	f := &fakeClient{createErr: &api.Error{Message: "title is required"}}
	s := NewService(f)

	_, err := s.Create(context.Background(), "", "", "id-1")
	require.Error(t, err)
	assert.Equal(t, "title is required", err.Error())
	assert.False(t, IsNotFound(err))
}
