// Package storage wires the PostgreSQL connection, goose migrations and the
// per-domain repositories together behind a single manager.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"vaxreg/internal/server/identity"
	"vaxreg/internal/server/migrations"
	"vaxreg/internal/server/records"
	"vaxreg/internal/server/sessions"
	"vaxreg/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Close() error
	Identities() identity.Repository
	Sessions() sessions.Repository
	Users() users.Repository
	Records() records.Repository
}

type PostgresRepositoryManager struct {
	db         *sql.DB
	identities identity.Repository
	sessions   sessions.Repository
	users      users.Repository
	records    records.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Identities() identity.Repository {
	return m.identities
}

func (m *PostgresRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Records() records.Repository {
	return m.records
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:         db,
		identities: identity.NewPostgresRepository(db),
		sessions:   sessions.NewPostgresRepository(db),
		users:      users.NewPostgresRepository(db),
		records:    records.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
