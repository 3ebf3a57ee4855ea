// Package sessions persists refresh tokens, which stand in for server-side
// sessions: a row exists while the session is valid and is removed on
// sign-out or rotation.
package sessions

import (
	"context"
	"time"
)

type Session struct {
	Token      string
	IdentityID string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

type Repository interface {
	Create(ctx context.Context, identityID, token string, validity time.Duration) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	Rotate(ctx context.Context, oldToken, identityID, newToken string, validity time.Duration) error
}
