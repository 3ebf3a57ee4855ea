// Package grpc exposes the registry services over the VaxRegistry gRPC API.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"vaxreg/internal/logging"
	"vaxreg/internal/models"
	pb "vaxreg/internal/proto"
	"vaxreg/internal/server/feed"
	"vaxreg/internal/server/identity"
	"vaxreg/internal/server/records"
	"vaxreg/internal/server/users"
)

// Service interfaces the handlers depend on. The concrete implementations
// live in internal/server/{identity,users,records}.
type identitySvc interface {
	Register(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (*identity.TokenPair, string, error)
	Refresh(ctx context.Context, refreshToken string) (*identity.TokenPair, error)
	Invalidate(ctx context.Context, refreshToken string) error
}

type userSvc interface {
	CreateProfile(ctx context.Context, id, email, displayName, role string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type recordSvc interface {
	List(ctx context.Context) ([]*models.VaccinationType, error)
	GetByID(ctx context.Context, id string) (*models.VaccinationType, error)
	Search(ctx context.Context, query string) ([]*models.VaccinationType, error)
	Create(ctx context.Context, title, description, createdBy string) (*models.VaccinationType, error)
	Update(ctx context.Context, id, description string) (*models.VaccinationType, error)
	Delete(ctx context.Context, id string) error
}

type GRPCServer struct {
	pb.UnimplementedVaxRegistryServer
	address    string
	logger     logging.Logger
	identities identitySvc
	users      userSvc
	records    recordSvc
	hub        *feed.Hub
	jwtSecret  []byte
	apiKey     string
}

func NewGRPCServer(address string, l logging.Logger, is *identity.Service, us *users.Service, rs *records.Service, hub *feed.Hub, secretKey, apiKey string) *GRPCServer {
	return &GRPCServer{
		address:    address,
		logger:     l.With("module", "grpc_server"),
		identities: is,
		users:      us,
		records:    rs,
		hub:        hub,
		jwtSecret:  []byte(secretKey),
		apiKey:     apiKey,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.apiKeyInterceptor, s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.apiKeyStreamInterceptor, s.accessTokenStreamInterceptor),
	)

	pb.RegisterVaxRegistryServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
