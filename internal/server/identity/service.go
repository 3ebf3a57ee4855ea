package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"vaxreg/internal/common"
	"vaxreg/internal/server/auth"
	"vaxreg/internal/server/sessions"
)

// Service implements the identity side of the backend contract: account
// creation, credential exchange, refresh-token rotation and session
// invalidation.
type Service struct {
	repo            Repository
	sessionRepo     sessions.Repository
	jwtSecret       []byte
	accessValidity  time.Duration
	refreshValidity time.Duration
}

func NewService(repo Repository, sessionRepo sessions.Repository, jwtSecret []byte, accessValidity, refreshValidity time.Duration) *Service {
	return &Service{
		repo:            repo,
		sessionRepo:     sessionRepo,
		jwtSecret:       jwtSecret,
		accessValidity:  accessValidity,
		refreshValidity: refreshValidity,
	}
}

// Register creates a new identity with a bcrypt-hashed credential and
// returns its id. A duplicate email maps to common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	ident, err := s.repo.Create(ctx, &Identity{Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", fmt.Errorf("email already registered: %w", err)
		}
		return "", fmt.Errorf("error creating identity: %w", err)
	}

	return ident.ID, nil
}

// Authenticate exchanges credentials for a token pair. Unknown emails and
// wrong passwords both map to common.ErrorUnauthorized so callers cannot
// probe for registered addresses.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*TokenPair, string, error) {
	ident, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(password)) != nil {
		return nil, "", common.ErrorUnauthorized
	}

	pair, err := s.issueTokens(ctx, ident.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return pair, ident.ID, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Expired or unknown tokens are rejected.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	sess, err := s.sessionRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = s.sessionRepo.Delete(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	accessToken, err := auth.GenerateToken(sess.IdentityID, s.jwtSecret, s.accessValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	newRefresh, err := common.MakeRandHexString(refreshTokenBytes)
	if err != nil {
		return nil, common.ErrorInternal
	}

	// revoke-and-replace runs in one transaction: a concurrent refresh of
	// the same token loses the race and gets Unauthorized
	if err := s.sessionRepo.Rotate(ctx, refreshToken, sess.IdentityID, newRefresh, s.refreshValidity); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefresh}, nil
}

// Invalidate revokes the session behind the given refresh token.
func (s *Service) Invalidate(ctx context.Context, refreshToken string) error {
	err := s.sessionRepo.Delete(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}
	return nil
}

const refreshTokenBytes = 32

func (s *Service) issueTokens(ctx context.Context, identityID string) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(identityID, s.jwtSecret, s.accessValidity)
	if err != nil {
		return nil, err
	}

	refreshToken, err := common.MakeRandHexString(refreshTokenBytes)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Create(ctx, identityID, refreshToken, s.refreshValidity); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
