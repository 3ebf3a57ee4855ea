package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vaxreg/internal/common"
	pb "vaxreg/internal/proto"
)

// statusFromError maps service-layer sentinels onto gRPC status codes.
// The error text is forwarded verbatim; clients surface it as-is.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorInternal):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.InvalidArgument, err.Error())
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CreateIdentity(ctx context.Context, req *pb.CreateIdentityRequest) (*pb.CreateIdentityResponse, error) {
	s.logger.Info(ctx, "Identity creation request")

	id, err := s.identities.Register(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Identity created", "email", req.Email)
	return &pb.CreateIdentityResponse{IdentityId: id}, nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {
	pair, identityID, err := s.identities.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "invalid email or password")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AuthenticateResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		IdentityId:   identityID,
	}, nil
}

func (s *GRPCServer) RefreshSession(ctx context.Context, req *pb.RefreshSessionRequest) (*pb.RefreshSessionResponse, error) {
	pair, err := s.identities.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RefreshSessionResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func (s *GRPCServer) InvalidateSession(ctx context.Context, req *pb.InvalidateSessionRequest) (*pb.InvalidateSessionResponse, error) {
	if err := s.identities.Invalidate(ctx, req.RefreshToken); err != nil {
		return nil, statusFromError(err)
	}

	return &pb.InvalidateSessionResponse{}, nil
}

func (s *GRPCServer) GetSession(ctx context.Context, req *pb.GetSessionRequest) (*pb.GetSessionResponse, error) {
	// The interceptor already validated the token for this method.
	identityID, ok := identityIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	return &pb.GetSessionResponse{IdentityId: identityID}, nil
}

func (s *GRPCServer) CreateProfile(ctx context.Context, req *pb.CreateProfileRequest) (*pb.CreateProfileResponse, error) {
	user, err := s.users.CreateProfile(ctx, req.Id, req.Email, req.DisplayName, req.Role)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Profile created", "id", user.ID, "role", user.Role)
	return &pb.CreateProfileResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	user, err := s.users.GetByID(ctx, req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetProfileResponse{User: toProtoUser(user)}, nil
}

// requireAdmin resolves the calling identity's profile and rejects the call
// unless the profile carries the admin role.
func (s *GRPCServer) requireAdmin(ctx context.Context) (string, error) {
	identityID, ok := identityIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}

	user, err := s.users.GetByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", status.Error(codes.PermissionDenied, "no profile for identity")
		}
		return "", status.Error(codes.Internal, "internal error")
	}

	if !user.Role.IsAdmin() {
		return "", status.Error(codes.PermissionDenied, "admin role required")
	}

	return identityID, nil
}

func (s *GRPCServer) ListVaccinationTypes(ctx context.Context, req *pb.ListVaccinationTypesRequest) (*pb.ListVaccinationTypesResponse, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.ListVaccinationTypesResponse{Records: toProtoRecords(recs)}, nil
}

func (s *GRPCServer) GetVaccinationType(ctx context.Context, req *pb.GetVaccinationTypeRequest) (*pb.GetVaccinationTypeResponse, error) {
	rec, err := s.records.GetByID(ctx, req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetVaccinationTypeResponse{Record: toProtoRecord(rec)}, nil
}

func (s *GRPCServer) SearchVaccinationTypes(ctx context.Context, req *pb.SearchVaccinationTypesRequest) (*pb.SearchVaccinationTypesResponse, error) {
	recs, err := s.records.Search(ctx, req.Query)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.SearchVaccinationTypesResponse{Records: toProtoRecords(recs)}, nil
}

func (s *GRPCServer) CreateVaccinationType(ctx context.Context, req *pb.CreateVaccinationTypeRequest) (*pb.CreateVaccinationTypeResponse, error) {
	identityID, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != identityID {
		return nil, status.Error(codes.PermissionDenied, "creator must be the calling identity")
	}

	rec, err := s.records.Create(ctx, req.Title, req.Description, req.CreatedBy)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Vaccination type created", "id", rec.ID, "title", rec.Title)
	return &pb.CreateVaccinationTypeResponse{Record: toProtoRecord(rec)}, nil
}

func (s *GRPCServer) UpdateVaccinationType(ctx context.Context, req *pb.UpdateVaccinationTypeRequest) (*pb.UpdateVaccinationTypeResponse, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	rec, err := s.records.Update(ctx, req.Id, req.Description)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.UpdateVaccinationTypeResponse{Record: toProtoRecord(rec)}, nil
}

func (s *GRPCServer) DeleteVaccinationType(ctx context.Context, req *pb.DeleteVaccinationTypeRequest) (*pb.DeleteVaccinationTypeResponse, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := s.records.Delete(ctx, req.Id); err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Vaccination type deleted", "id", req.Id)
	return &pb.DeleteVaccinationTypeResponse{}, nil
}

func (s *GRPCServer) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.ChangeEvent]) error {
	ctx := stream.Context()

	events, cancel := s.hub.Subscribe()
	defer cancel()

	s.logger.Info(ctx, "Change feed subscriber attached")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Change feed subscriber detached")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := stream.Send(toProtoEvent(ev)); err != nil {
				return err
			}
		}
	}
}
