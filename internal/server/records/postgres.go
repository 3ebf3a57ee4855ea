package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vaxreg/internal/common"
	"vaxreg/internal/dbx"
	"vaxreg/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const recordColumns = `id, title, description, created_by, created_at, updated_at`

func scanRecord(row interface{ Scan(...any) error }) (*models.VaccinationType, error) {
	rec := &models.VaccinationType{}
	err := row.Scan(&rec.ID, &rec.Title, &rec.Description,
		&rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.VaccinationType, error) {
	query := `
		SELECT ` + recordColumns + ` FROM vaccination_types
		ORDER BY created_at DESC
	`
	return r.queryMany(ctx, query)
}

func (r *PostgresRepository) Search(ctx context.Context, q string) ([]*models.VaccinationType, error) {
	query := `
		SELECT ` + recordColumns + ` FROM vaccination_types
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	return r.queryMany(ctx, query, q)
}

func (r *PostgresRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.VaccinationType, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.VaccinationType
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.VaccinationType, error) {
	query := `
		SELECT ` + recordColumns + ` FROM vaccination_types
		WHERE id = $1
	`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.VaccinationType) (*models.VaccinationType, error) {
	query := `
		INSERT INTO vaccination_types (id, title, description, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	rec.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, query,
		rec.ID, rec.Title, rec.Description, rec.CreatedBy).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

// UpdateDescription mutates only the description and bumps updated_at.
// Title, created_by and created_at are deliberately absent from the query.
func (r *PostgresRepository) UpdateDescription(ctx context.Context, id, description string) (*models.VaccinationType, error) {
	query := `
		UPDATE vaccination_types
		SET description = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + recordColumns + `
	`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id, description))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM vaccination_types WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
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
