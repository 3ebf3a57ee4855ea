package grpc

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"vaxreg/internal/common"
	pb "vaxreg/internal/proto"
	"vaxreg/internal/server/auth"
)

func newAuthServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte(secret),
		apiKey:    "public-key",
	}
}

func ctxWithMetadata(kv ...string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(kv...))
}

func TestAPIKeyInterceptor_RejectsMissingOrWrongKey(t *testing.T) {
	s := newAuthServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaxRegistry_Ping_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called without a valid api key")
		return nil, nil
	}

	_, err := s.apiKeyInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated for missing key, got %v", status.Code(err))
	}

	_, err = s.apiKeyInterceptor(ctxWithMetadata(common.APIKeyHeaderName, "wrong"), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated for wrong key, got %v", status.Code(err))
	}
}

func TestAPIKeyInterceptor_AcceptsMatchingKey(t *testing.T) {
	s := newAuthServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaxRegistry_Ping_FullMethodName}

	handlerCalled := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.apiKeyInterceptor(ctxWithMetadata(common.APIKeyHeaderName, "public-key"), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled || resp != "ok" {
		t.Fatalf("handler not invoked correctly: called=%v resp=%v", handlerCalled, resp)
	}
}

func TestAccessTokenInterceptor_OpenMethodAllowsWithoutToken(t *testing.T) {
	s := newAuthServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaxRegistry_CreateIdentity_FullMethodName}

	handlerCalled := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	if _, err := s.accessTokenInterceptor(context.Background(), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
}

func TestAccessTokenInterceptor_MissingToken(t *testing.T) {
	s := newAuthServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaxRegistry_GetSession_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestAccessTokenInterceptor_InvalidToken(t *testing.T) {
	s := newAuthServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaxRegistry_GetSession_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	ctx := ctxWithMetadata(common.AccessTokenHeaderName, "not-a-jwt")
	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "invalid token" {
		t.Fatalf("expected 'invalid token', got %q", status.Convert(err).Message())
	}
}

func TestAccessTokenInterceptor_ExpiredTokenKeepsSentinelMessage(t *testing.T) {
	secret := "secret"
	s := newAuthServer(secret)
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaxRegistry_GetSession_FullMethodName}

	token, err := auth.GenerateToken("id-1", []byte(secret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for expired token")
		return nil, nil
	}

	ctx := ctxWithMetadata(common.AccessTokenHeaderName, token)
	_, err = s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
	// Clients trigger a transparent refresh off this exact message.
	if status.Convert(err).Message() != common.ErrTokenExpired.Error() {
		t.Fatalf("expected %q, got %q", common.ErrTokenExpired.Error(), status.Convert(err).Message())
	}
}

func TestAccessTokenInterceptor_ValidTokenSetsIdentityID(t *testing.T) {
	secret := "super-secret"
	s := newAuthServer(secret)
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaxRegistry_GetSession_FullMethodName}

	token, err := auth.GenerateToken("identity-123", []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	var gotID string
	var gotOK bool
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotID, gotOK = identityIDFromContext(ctx)
		return "ok", nil
	}

	ctx := ctxWithMetadata(common.AccessTokenHeaderName, token)
	if _, err := s.accessTokenInterceptor(ctx, nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotOK || gotID != "identity-123" {
		t.Fatalf("identity id not propagated: got %q ok=%v", gotID, gotOK)
	}
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeServerStream) Context() context.Context { return f.ctx }

func TestAccessTokenStreamInterceptor_WrapsContext(t *testing.T) {
	secret := "secret"
	s := newAuthServer(secret)
	info := &grpc.StreamServerInfo{FullMethod: pb.VaxRegistry_Subscribe_FullMethodName}

	token, err := auth.GenerateToken("identity-9", []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	ss := &fakeServerStream{ctx: ctxWithMetadata(common.AccessTokenHeaderName, token)}

	var gotID string
	h := func(srv interface{}, stream grpc.ServerStream) error {
		gotID, _ = identityIDFromContext(stream.Context())
		return nil
	}

	if err := s.accessTokenStreamInterceptor(nil, ss, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "identity-9" {
		t.Fatalf("identity id not on stream context: got %q", gotID)
	}
}

func TestAccessTokenStreamInterceptor_RejectsMissingToken(t *testing.T) {
	s := newAuthServer("secret")
	info := &grpc.StreamServerInfo{FullMethod: pb.VaxRegistry_Subscribe_FullMethodName}

	ss := &fakeServerStream{ctx: context.Background()}
	h := func(srv interface{}, stream grpc.ServerStream) error {
		t.Fatal("handler should not run without a token")
		return nil
	}

	err := s.accessTokenStreamInterceptor(nil, ss, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestProtectedMethods_CoverExpectedRPCs(t *testing.T) {
	open := []string{
		pb.VaxRegistry_Ping_FullMethodName,
		pb.VaxRegistry_CreateIdentity_FullMethodName,
		pb.VaxRegistry_Authenticate_FullMethodName,
		pb.VaxRegistry_RefreshSession_FullMethodName,
		pb.VaxRegistry_InvalidateSession_FullMethodName,
		pb.VaxRegistry_CreateProfile_FullMethodName,
	}
	for _, m := range open {
		if protectedMethods[m] {
			t.Errorf("%s should not require an access token", m)
		}
	}

	protected := []string{
		pb.VaxRegistry_GetSession_FullMethodName,
		pb.VaxRegistry_GetProfile_FullMethodName,
		pb.VaxRegistry_ListVaccinationTypes_FullMethodName,
		pb.VaxRegistry_GetVaccinationType_FullMethodName,
		pb.VaxRegistry_CreateVaccinationType_FullMethodName,
		pb.VaxRegistry_UpdateVaccinationType_FullMethodName,
		pb.VaxRegistry_DeleteVaccinationType_FullMethodName,
		pb.VaxRegistry_SearchVaccinationTypes_FullMethodName,
		pb.VaxRegistry_Subscribe_FullMethodName,
	}
	for _, m := range protected {
		if !protectedMethods[m] {
			t.Errorf("%s should require an access token", m)
		}
	}
}
