package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"vaxreg/internal/common"
	"vaxreg/internal/dbx"
	"vaxreg/internal/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, display_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	displayName := sql.NullString{String: user.DisplayName, Valid: user.DisplayName != ""}
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, displayName, user.Role.String()).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, display_name, role, created_at, last_login FROM users
		WHERE id = $1
	`

	user := &models.User{}
	var displayName sql.NullString
	var lastLogin sql.NullTime
	var role string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &displayName, &role, &user.CreatedAt, &lastLogin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.DisplayName = displayName.String
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}
	user.Role, err = models.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("corrupt profile row %s: %w", id, err)
	}

	return user, nil
}
