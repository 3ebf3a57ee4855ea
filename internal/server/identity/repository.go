package identity

import "context"

type Repository interface {
	Create(ctx context.Context, ident *Identity) (*Identity, error)
	GetByEmail(ctx context.Context, email string) (*Identity, error)
}
