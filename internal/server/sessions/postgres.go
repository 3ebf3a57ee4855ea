package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vaxreg/internal/common"
	"vaxreg/internal/dbx"
)

type PostgresRepository struct {
	conn *sql.DB
	db   dbx.DBTX
}

func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{conn: conn, db: conn}
}

func (r *PostgresRepository) Create(ctx context.Context, identityID, token string, validity time.Duration) error {
	query := `
		INSERT INTO sessions (token, identity_id, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, token, identityID, time.Now().Add(validity))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*Session, error) {
	query := `
		SELECT token, identity_id, expires_at, created_at FROM sessions
		WHERE token = $1
	`

	s := &Session{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&s.Token, &s.IdentityID, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	return deleteToken(ctx, r.db, token)
}

func deleteToken(ctx context.Context, db dbx.DBTX, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`

	res, err := db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// Rotate revokes oldToken and installs newToken for the same identity in a
// single transaction. If oldToken is already gone the transaction aborts
// with common.ErrorNotFound, so a token rotates at most once even when two
// refresh attempts race.
func (r *PostgresRepository) Rotate(ctx context.Context, oldToken, identityID, newToken string, validity time.Duration) error {
	return dbx.WithTx(ctx, r.conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := deleteToken(ctx, tx, oldToken); err != nil {
			return err
		}

		query := `
			INSERT INTO sessions (token, identity_id, expires_at)
			VALUES ($1, $2, $3)
		`

		if _, err := tx.ExecContext(ctx, query, newToken, identityID, time.Now().Add(validity)); err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		return nil
	})
}
