package api

import (
	"context"

	"vaxreg/internal/common"
	"vaxreg/internal/models"
	pb "vaxreg/internal/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCClient is the gRPC implementation of Client. It owns the
// connection, injects the API key and access token via interceptors,
// transparently refreshes an expired access token and maps status codes
// to sentinel kinds.
type GRPCClient struct {
	endpointURL  string
	apiKey       string
	conn         *grpc.ClientConn
	client       pb.VaxRegistryClient
	accessToken  string
	refreshToken string
}

func withMetadataValue(ctx context.Context, key, value string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(key)
	md.Set(key, value)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) apiKeyInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withMetadataValue(ctx, common.APIKeyHeaderName, s.apiKey)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withMetadataValue(ctx, common.AccessTokenHeaderName, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		resp, err := s.client.RefreshSession(ctx, &pb.RefreshSessionRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = resp.AccessToken
		s.refreshToken = resp.RefreshToken

		// tokens refreshed, retry once with the new access token
		ctx = withMetadataValue(ctx, common.AccessTokenHeaderName, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewRegistryClient(endpointURL, apiKey string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, apiKey: apiKey}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(s.apiKeyInterceptor, s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVaxRegistryClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) AccessToken() string {
	return s.accessToken
}

func (s *GRPCClient) ClearTokens() {
	s.accessToken = ""
	s.refreshToken = ""
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	resp, err := s.client.CreateIdentity(ctx, &pb.CreateIdentityRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.IdentityId, nil
}

func (s *GRPCClient) Authenticate(ctx context.Context, email, password string) (string, error) {
	resp, err := s.client.Authenticate(ctx, &pb.AuthenticateRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return resp.IdentityId, nil
}

func (s *GRPCClient) InvalidateSession(ctx context.Context) error {
	_, err := s.client.InvalidateSession(ctx, &pb.InvalidateSessionRequest{RefreshToken: s.refreshToken})
	if err != nil {
		return s.mapError(err)
	}

	s.ClearTokens()
	return nil
}

func (s *GRPCClient) GetSession(ctx context.Context) (string, error) {
	resp, err := s.client.GetSession(ctx, &pb.GetSessionRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.IdentityId, nil
}

func (s *GRPCClient) CreateProfile(ctx context.Context, id, email, displayName string, role models.Role) (*models.User, error) {
	req := &pb.CreateProfileRequest{Id: id, Email: email, DisplayName: displayName, Role: string(role)}

	resp, err := s.client.CreateProfile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoUser(resp.User)
}

func (s *GRPCClient) GetProfile(ctx context.Context, id string) (*models.User, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoUser(resp.User)
}

func (s *GRPCClient) ListVaccinationTypes(ctx context.Context) ([]*models.VaccinationType, error) {
	resp, err := s.client.ListVaccinationTypes(ctx, &pb.ListVaccinationTypesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoRecords(resp.Records)
}

func (s *GRPCClient) GetVaccinationType(ctx context.Context, id string) (*models.VaccinationType, error) {
	resp, err := s.client.GetVaccinationType(ctx, &pb.GetVaccinationTypeRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoRecord(resp.Record)
}

func (s *GRPCClient) CreateVaccinationType(ctx context.Context, title, description, createdBy string) (*models.VaccinationType, error) {
	req := &pb.CreateVaccinationTypeRequest{Title: title, Description: description, CreatedBy: createdBy}

	resp, err := s.client.CreateVaccinationType(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoRecord(resp.Record)
}

func (s *GRPCClient) UpdateVaccinationType(ctx context.Context, id, description string) (*models.VaccinationType, error) {
	req := &pb.UpdateVaccinationTypeRequest{Id: id, Description: description}

	resp, err := s.client.UpdateVaccinationType(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoRecord(resp.Record)
}

func (s *GRPCClient) DeleteVaccinationType(ctx context.Context, id string) error {
	_, err := s.client.DeleteVaccinationType(ctx, &pb.DeleteVaccinationTypeRequest{Id: id})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) SearchVaccinationTypes(ctx context.Context, query string) ([]*models.VaccinationType, error) {
	resp, err := s.client.SearchVaccinationTypes(ctx, &pb.SearchVaccinationTypesRequest{Query: query})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoRecords(resp.Records)
}

// Subscribe opens the change feed stream. Stream RPCs bypass the unary
// interceptors, so both metadata keys are attached here directly.
func (s *GRPCClient) Subscribe(ctx context.Context) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	md := metadata.Pairs(
		common.APIKeyHeaderName, s.apiKey,
		common.AccessTokenHeaderName, s.accessToken,
	)

	stream, err := s.client.Subscribe(metadata.NewOutgoingContext(ctx, md), &pb.SubscribeRequest{})
	if err != nil {
		cancel()
		return nil, s.mapError(err)
	}

	sub := newSubscription(cancel)

	go func() {
		defer close(sub.events)
		for {
			ev, err := stream.Recv()
			if err != nil {
				return
			}

			event, err := fromProtoEvent(ev)
			if err != nil {
				continue
			}

			select {
			case sub.events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return sub, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return &Error{Message: st.Message(), Kind: ErrUnauthorized}
	case codes.Unavailable, codes.DeadlineExceeded:
		return &Error{Message: st.Message(), Kind: ErrUnavailable}
	case codes.NotFound:
		return &Error{Message: st.Message(), Kind: ErrNotFound}
	case codes.AlreadyExists:
		return &Error{Message: st.Message(), Kind: ErrAlreadyExists}
	default:
		return &Error{Message: st.Message()}
	}
}
