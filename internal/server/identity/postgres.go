// Package identity manages authentication records and session issuance.
package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"vaxreg/internal/common"
	"vaxreg/internal/dbx"
)

const uniqueViolation = "23505"

// PostgresRepository implements identity storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ident *Identity) (*Identity, error) {
	query := `
		INSERT INTO identities (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	ident.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, query,
		ident.ID, ident.Email, ident.PasswordHash).Scan(&ident.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ident, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*Identity, error) {
	query := `
		SELECT id, email, password_hash, created_at FROM identities
		WHERE email = $1
	`

	ident := &Identity{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&ident.ID, &ident.Email, &ident.PasswordHash, &ident.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ident, nil
}
