package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"vaxreg/internal/common"
	pb "vaxreg/internal/proto"
	"vaxreg/internal/server/auth"
)

type ctxKey string

const identityIDKey ctxKey = "identityID"

// identityIDFromContext returns the identity id stashed by the access-token
// interceptor. It is only present on protected methods.
func identityIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityIDKey).(string)
	return id, ok
}

// protectedMethods are the RPCs that require a valid access token. Identity
// bootstrap calls (create, authenticate, refresh, invalidate) and the profile
// insert that completes sign-up stay open: sign-up does not authenticate.
var protectedMethods = map[string]bool{
	pb.VaxRegistry_GetSession_FullMethodName:             true,
	pb.VaxRegistry_GetProfile_FullMethodName:             true,
	pb.VaxRegistry_ListVaccinationTypes_FullMethodName:   true,
	pb.VaxRegistry_GetVaccinationType_FullMethodName:     true,
	pb.VaxRegistry_CreateVaccinationType_FullMethodName:  true,
	pb.VaxRegistry_UpdateVaccinationType_FullMethodName:  true,
	pb.VaxRegistry_DeleteVaccinationType_FullMethodName:  true,
	pb.VaxRegistry_SearchVaccinationTypes_FullMethodName: true,
	pb.VaxRegistry_Subscribe_FullMethodName:              true,
}

func metadataValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(key)
		if len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) checkAPIKey(ctx context.Context) error {
	if metadataValue(ctx, common.APIKeyHeaderName) != s.apiKey {
		return status.Error(codes.Unauthenticated, "invalid api key")
	}
	return nil
}

func (s *GRPCServer) resolveIdentity(ctx context.Context) (context.Context, error) {
	accessToken := metadataValue(ctx, common.AccessTokenHeaderName)
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	identityID, err := auth.GetIdentityIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return context.WithValue(ctx, identityIDKey, identityID), nil
}

func (s *GRPCServer) apiKeyInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if err := s.checkAPIKey(ctx); err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if protectedMethods[info.FullMethod] {
		var err error
		ctx, err = s.resolveIdentity(ctx)
		if err != nil {
			return nil, err
		}
	}
	return handler(ctx, req)
}

func (s *GRPCServer) apiKeyStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if err := s.checkAPIKey(ss.Context()); err != nil {
		return err
	}
	return handler(srv, ss)
}

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if !protectedMethods[info.FullMethod] {
		return handler(srv, ss)
	}

	ctx, err := s.resolveIdentity(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})
}

// wrappedStream overrides the stream context so handlers see the resolved
// identity.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}
