package grpc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vaxreg/internal/common"
	"vaxreg/internal/models"
	pb "vaxreg/internal/proto"
	"vaxreg/internal/server/feed"
	"vaxreg/internal/server/identity"
)

// ---- fakes ----

type fakeIdentity struct {
	registerID  string
	registerErr error

	authPair *identity.TokenPair
	authID   string
	authErr  error

	refreshPair *identity.TokenPair
	refreshErr  error

	invalidateErr error
}

func (f *fakeIdentity) Register(ctx context.Context, email, password string) (string, error) {
	return f.registerID, f.registerErr
}

func (f *fakeIdentity) Authenticate(ctx context.Context, email, password string) (*identity.TokenPair, string, error) {
	return f.authPair, f.authID, f.authErr
}

func (f *fakeIdentity) Refresh(ctx context.Context, refreshToken string) (*identity.TokenPair, error) {
	return f.refreshPair, f.refreshErr
}

func (f *fakeIdentity) Invalidate(ctx context.Context, refreshToken string) error {
	return f.invalidateErr
}

type fakeUsers struct {
	createResp *models.User
	createErr  error

	getResp *models.User
	getErr  error
}

func (f *fakeUsers) CreateProfile(ctx context.Context, id, email, displayName, role string) (*models.User, error) {
	return f.createResp, f.createErr
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.getResp, f.getErr
}

type fakeRecords struct {
	listResp []*models.VaccinationType
	listErr  error

	getResp *models.VaccinationType
	getErr  error

	searchResp  []*models.VaccinationType
	searchErr   error
	searchQuery string

	createResp *models.VaccinationType
	createErr  error

	updateResp *models.VaccinationType
	updateErr  error
	updatedID  string
	updatedDsc string

	deleteErr error
	deletedID string
}

func (f *fakeRecords) List(ctx context.Context) ([]*models.VaccinationType, error) {
	return f.listResp, f.listErr
}

func (f *fakeRecords) GetByID(ctx context.Context, id string) (*models.VaccinationType, error) {
	return f.getResp, f.getErr
}

func (f *fakeRecords) Search(ctx context.Context, query string) ([]*models.VaccinationType, error) {
	f.searchQuery = query
	return f.searchResp, f.searchErr
}

func (f *fakeRecords) Create(ctx context.Context, title, description, createdBy string) (*models.VaccinationType, error) {
	return f.createResp, f.createErr
}

func (f *fakeRecords) Update(ctx context.Context, id, description string) (*models.VaccinationType, error) {
	f.updatedID = id
	f.updatedDsc = description
	return f.updateResp, f.updateErr
}

func (f *fakeRecords) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

// ---- helpers ----

func newServer(i identitySvc, u userSvc, r recordSvc) *GRPCServer {
	return &GRPCServer{
		address:    "127.0.0.1:0",
		logger:     nopLogger{},
		identities: i,
		users:      u,
		records:    r,
		hub:        feed.NewHub(nopLogger{}),
		jwtSecret:  []byte("k"),
		apiKey:     "k",
	}
}

func ctxWithIdentity(id string) context.Context {
	return context.WithValue(context.Background(), identityIDKey, id)
}

func adminUsers(id string) *fakeUsers {
	return &fakeUsers{getResp: &models.User{ID: id, Email: "admin@clinic.test", Role: models.RoleAdmin}}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeIdentity{}, &fakeUsers{}, &fakeRecords{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestCreateIdentity_OK(t *testing.T) {
	s := newServer(&fakeIdentity{registerID: "id-42"}, &fakeUsers{}, &fakeRecords{})
	resp, err := s.CreateIdentity(context.Background(), &pb.CreateIdentityRequest{Email: "a@b.test", Password: "pw"})
	if err != nil {
		t.Fatalf("CreateIdentity error: %v", err)
	}
	if resp.GetIdentityId() != "id-42" {
		t.Fatalf("unexpected identity id: %q", resp.GetIdentityId())
	}
}

func TestCreateIdentity_DuplicateEmail(t *testing.T) {
	s := newServer(&fakeIdentity{registerErr: common.ErrorAlreadyExists}, &fakeUsers{}, &fakeRecords{})
	_, err := s.CreateIdentity(context.Background(), &pb.CreateIdentityRequest{Email: "a@b.test", Password: "pw"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
}

func TestAuthenticate_OK(t *testing.T) {
	i := &fakeIdentity{
		authPair: &identity.TokenPair{AccessToken: "A", RefreshToken: "R"},
		authID:   "id-1",
	}
	s := newServer(i, &fakeUsers{}, &fakeRecords{})

	resp, err := s.Authenticate(context.Background(), &pb.AuthenticateRequest{Email: "a@b.test", Password: "pw"})
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if resp.GetAccessToken() != "A" || resp.GetRefreshToken() != "R" || resp.GetIdentityId() != "id-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthenticate_BadCredentialsAndInternal(t *testing.T) {
	s := newServer(&fakeIdentity{authErr: common.ErrorUnauthorized}, &fakeUsers{}, &fakeRecords{})
	_, err := s.Authenticate(context.Background(), &pb.AuthenticateRequest{Email: "a@b.test", Password: "no"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "invalid email or password" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}

	s2 := newServer(&fakeIdentity{authErr: errors.New("db down")}, &fakeUsers{}, &fakeRecords{})
	_, err = s2.Authenticate(context.Background(), &pb.AuthenticateRequest{Email: "a@b.test", Password: "pw"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestRefreshSession_OKAndExpired(t *testing.T) {
	i := &fakeIdentity{refreshPair: &identity.TokenPair{AccessToken: "A2", RefreshToken: "R2"}}
	s := newServer(i, &fakeUsers{}, &fakeRecords{})

	resp, err := s.RefreshSession(context.Background(), &pb.RefreshSessionRequest{RefreshToken: "R1"})
	if err != nil {
		t.Fatalf("RefreshSession error: %v", err)
	}
	if resp.GetAccessToken() != "A2" || resp.GetRefreshToken() != "R2" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}

	s2 := newServer(&fakeIdentity{refreshErr: common.ErrRefreshTokenExpired}, &fakeUsers{}, &fakeRecords{})
	_, err = s2.RefreshSession(context.Background(), &pb.RefreshSessionRequest{RefreshToken: "R1"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestInvalidateSession_OKAndUnknownToken(t *testing.T) {
	s := newServer(&fakeIdentity{}, &fakeUsers{}, &fakeRecords{})
	if _, err := s.InvalidateSession(context.Background(), &pb.InvalidateSessionRequest{RefreshToken: "R"}); err != nil {
		t.Fatalf("InvalidateSession error: %v", err)
	}

	s2 := newServer(&fakeIdentity{invalidateErr: common.ErrorNotFound}, &fakeUsers{}, &fakeRecords{})
	_, err := s2.InvalidateSession(context.Background(), &pb.InvalidateSessionRequest{RefreshToken: "R"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestGetSession_ReturnsResolvedIdentity(t *testing.T) {
	s := newServer(&fakeIdentity{}, &fakeUsers{}, &fakeRecords{})

	resp, err := s.GetSession(ctxWithIdentity("id-7"), &pb.GetSessionRequest{})
	if err != nil {
		t.Fatalf("GetSession error: %v", err)
	}
	if resp.GetIdentityId() != "id-7" {
		t.Fatalf("unexpected identity id: %q", resp.GetIdentityId())
	}

	_, err = s.GetSession(context.Background(), &pb.GetSessionRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without resolved identity, got %v", status.Code(err))
	}
}

func TestCreateProfile_OK(t *testing.T) {
	u := &fakeUsers{createResp: &models.User{ID: "id-1", Email: "a@b.test", DisplayName: "Ann", Role: models.RoleUser}}
	s := newServer(&fakeIdentity{}, u, &fakeRecords{})

	resp, err := s.CreateProfile(context.Background(), &pb.CreateProfileRequest{
		Id: "id-1", Email: "a@b.test", DisplayName: "Ann", Role: "user",
	})
	if err != nil {
		t.Fatalf("CreateProfile error: %v", err)
	}
	if resp.GetUser().GetId() != "id-1" || resp.GetUser().GetRole() != "user" {
		t.Fatalf("unexpected user: %+v", resp.GetUser())
	}
}

func TestCreateProfile_Duplicate(t *testing.T) {
	s := newServer(&fakeIdentity{}, &fakeUsers{createErr: common.ErrorAlreadyExists}, &fakeRecords{})
	_, err := s.CreateProfile(context.Background(), &pb.CreateProfileRequest{Id: "id-1", Email: "a@b.test", Role: "user"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	s := newServer(&fakeIdentity{}, &fakeUsers{getErr: common.ErrorNotFound}, &fakeRecords{})
	_, err := s.GetProfile(context.Background(), &pb.GetProfileRequest{Id: "nope"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestListVaccinationTypes_MapsRecords(t *testing.T) {
	r := &fakeRecords{listResp: []*models.VaccinationType{
		{ID: "v1", Title: "Measles", Description: "MMR", CreatedBy: "id-1"},
		{ID: "v2", Title: "Tetanus", Description: "DTaP", CreatedBy: "id-1"},
	}}
	s := newServer(&fakeIdentity{}, &fakeUsers{}, r)

	resp, err := s.ListVaccinationTypes(context.Background(), &pb.ListVaccinationTypesRequest{})
	if err != nil {
		t.Fatalf("ListVaccinationTypes error: %v", err)
	}
	if len(resp.GetRecords()) != 2 || resp.GetRecords()[0].GetTitle() != "Measles" {
		t.Fatalf("unexpected records: %+v", resp.GetRecords())
	}
}

func TestGetVaccinationType_NotFound(t *testing.T) {
	s := newServer(&fakeIdentity{}, &fakeUsers{}, &fakeRecords{getErr: common.ErrorNotFound})
	_, err := s.GetVaccinationType(context.Background(), &pb.GetVaccinationTypeRequest{Id: "nope"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestSearchVaccinationTypes_PassesQuery(t *testing.T) {
	r := &fakeRecords{searchResp: []*models.VaccinationType{{ID: "v1", Title: "Polio"}}}
	s := newServer(&fakeIdentity{}, &fakeUsers{}, r)

	resp, err := s.SearchVaccinationTypes(context.Background(), &pb.SearchVaccinationTypesRequest{Query: "pol"})
	if err != nil {
		t.Fatalf("SearchVaccinationTypes error: %v", err)
	}
	if r.searchQuery != "pol" {
		t.Fatalf("query not forwarded: %q", r.searchQuery)
	}
	if len(resp.GetRecords()) != 1 {
		t.Fatalf("unexpected records: %+v", resp.GetRecords())
	}
}

func TestCreateVaccinationType_RequiresAdmin(t *testing.T) {
	s := newServer(&fakeIdentity{}, &fakeUsers{}, &fakeRecords{})
	_, err := s.CreateVaccinationType(context.Background(), &pb.CreateVaccinationTypeRequest{Title: "t"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without identity, got %v", status.Code(err))
	}

	regular := &fakeUsers{getResp: &models.User{ID: "id-1", Role: models.RoleUser}}
	s2 := newServer(&fakeIdentity{}, regular, &fakeRecords{})
	_, err = s2.CreateVaccinationType(ctxWithIdentity("id-1"), &pb.CreateVaccinationTypeRequest{Title: "t", CreatedBy: "id-1"})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied for non-admin, got %v", status.Code(err))
	}

	orphan := &fakeUsers{getErr: common.ErrorNotFound}
	s3 := newServer(&fakeIdentity{}, orphan, &fakeRecords{})
	_, err = s3.CreateVaccinationType(ctxWithIdentity("id-1"), &pb.CreateVaccinationTypeRequest{Title: "t", CreatedBy: "id-1"})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied for missing profile, got %v", status.Code(err))
	}
}

func TestCreateVaccinationType_RejectsForeignCreator(t *testing.T) {
	s := newServer(&fakeIdentity{}, adminUsers("id-1"), &fakeRecords{})
	_, err := s.CreateVaccinationType(ctxWithIdentity("id-1"), &pb.CreateVaccinationTypeRequest{
		Title: "Measles", CreatedBy: "someone-else",
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", status.Code(err))
	}
}

func TestCreateVaccinationType_OK(t *testing.T) {
	r := &fakeRecords{createResp: &models.VaccinationType{ID: "v1", Title: "Measles", CreatedBy: "id-1"}}
	s := newServer(&fakeIdentity{}, adminUsers("id-1"), r)

	resp, err := s.CreateVaccinationType(ctxWithIdentity("id-1"), &pb.CreateVaccinationTypeRequest{
		Title: "Measles", Description: "MMR", CreatedBy: "id-1",
	})
	if err != nil {
		t.Fatalf("CreateVaccinationType error: %v", err)
	}
	if resp.GetRecord().GetId() != "v1" {
		t.Fatalf("unexpected record: %+v", resp.GetRecord())
	}
}

func TestUpdateVaccinationType_AdminOnlyAndDescriptionOnly(t *testing.T) {
	r := &fakeRecords{updateResp: &models.VaccinationType{ID: "v1", Title: "Measles", Description: "new"}}
	s := newServer(&fakeIdentity{}, adminUsers("id-1"), r)

	resp, err := s.UpdateVaccinationType(ctxWithIdentity("id-1"), &pb.UpdateVaccinationTypeRequest{Id: "v1", Description: "new"})
	if err != nil {
		t.Fatalf("UpdateVaccinationType error: %v", err)
	}
	if r.updatedID != "v1" || r.updatedDsc != "new" {
		t.Fatalf("update args not forwarded: id=%q desc=%q", r.updatedID, r.updatedDsc)
	}
	if resp.GetRecord().GetDescription() != "new" {
		t.Fatalf("unexpected record: %+v", resp.GetRecord())
	}

	s2 := newServer(&fakeIdentity{}, &fakeUsers{getResp: &models.User{ID: "id-2", Role: models.RoleUser}}, &fakeRecords{})
	_, err = s2.UpdateVaccinationType(ctxWithIdentity("id-2"), &pb.UpdateVaccinationTypeRequest{Id: "v1", Description: "x"})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", status.Code(err))
	}
}

func TestDeleteVaccinationType_OKAndMissing(t *testing.T) {
	r := &fakeRecords{}
	s := newServer(&fakeIdentity{}, adminUsers("id-1"), r)

	if _, err := s.DeleteVaccinationType(ctxWithIdentity("id-1"), &pb.DeleteVaccinationTypeRequest{Id: "v1"}); err != nil {
		t.Fatalf("DeleteVaccinationType error: %v", err)
	}
	if r.deletedID != "v1" {
		t.Fatalf("delete id not forwarded: %q", r.deletedID)
	}

	s2 := newServer(&fakeIdentity{}, adminUsers("id-1"), &fakeRecords{deleteErr: common.ErrorNotFound})
	_, err := s2.DeleteVaccinationType(ctxWithIdentity("id-1"), &pb.DeleteVaccinationTypeRequest{Id: "gone"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestStatusFromError_DefaultsToInvalidArgument(t *testing.T) {
	err := statusFromError(errors.New("title is required"))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "title is required" {
		t.Fatalf("message not forwarded verbatim: %q", status.Convert(err).Message())
	}
}

type fakeEventStream struct {
	fakeServerStream
	mu   sync.Mutex
	sent []*pb.ChangeEvent
}

func (f *fakeEventStream) Send(ev *pb.ChangeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, ev)
	return nil
}

func (f *fakeEventStream) events() []*pb.ChangeEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*pb.ChangeEvent(nil), f.sent...)
}

func TestSubscribe_ForwardsEventsUntilCancel(t *testing.T) {
	s := newServer(&fakeIdentity{}, &fakeUsers{}, &fakeRecords{})

	ctx, cancel := context.WithCancel(ctxWithIdentity("id-1"))
	stream := &fakeEventStream{fakeServerStream: fakeServerStream{ctx: ctx}}

	done := make(chan error, 1)
	go func() {
		done <- s.Subscribe(&pb.SubscribeRequest{}, stream)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for s.hub.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber never attached")
		}
		time.Sleep(5 * time.Millisecond)
	}

	s.hub.Publish(context.Background(), models.ChangeEvent{
		Type:     models.ChangeInsert,
		RecordID: "v1",
		Record:   &models.VaccinationType{ID: "v1", Title: "Measles"},
	})
	s.hub.Publish(context.Background(), models.ChangeEvent{Type: models.ChangeDelete, RecordID: "v1"})

	for len(stream.events()) < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("events not forwarded, got %d", len(stream.events()))
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Subscribe returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe did not return after cancel")
	}

	sent := stream.events()
	if sent[0].GetType() != "insert" || sent[0].GetRecord().GetId() != "v1" {
		t.Fatalf("unexpected first event: %+v", sent[0])
	}
	if sent[1].GetType() != "delete" || sent[1].GetRecord() != nil {
		t.Fatalf("delete event should carry no record: %+v", sent[1])
	}
}
