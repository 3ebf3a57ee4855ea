package records

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"vaxreg/internal/common"
	"vaxreg/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func recordRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "created_by", "created_at", "updated_at"})
}

func TestList_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*title,.*FROM\s+vaccination_types\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	now := time.Now()
	rows := recordRows().
		AddRow("r2", "Hepatitis B", "second dose", "u-1", now, now).
		AddRow("r1", "BCG", "", "u-1", now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "r2" || got[1].ID != "r1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM\s+vaccination_types`).WillReturnRows(recordRows())

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestSearch_UsesCaseInsensitiveSubstring(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE\s+title\s+ILIKE\s+'%'\s*\|\|\s*\$1\s*\|\|\s*'%'\s+ORDER\s+BY\s+created_at\s+DESC`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs("hep").
		WillReturnRows(recordRows().AddRow("r2", "Hepatitis B", "", "u-1", now, now))

	got, err := repo.Search(context.Background(), "hep")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Hepatitis B" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM\s+vaccination_types\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestCreate_AssignsIDAndReadsTimestamps(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+vaccination_types\s*\(id,\s*title,\s*description,\s*created_by\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+created_at,\s*updated_at\s*$`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "BCG", "tuberculosis vaccine", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	rec := &models.VaccinationType{Title: "BCG", Description: "tuberculosis vaccine", CreatedBy: "u-1"}
	got, err := repo.Create(context.Background(), rec)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatal("expected a generated id")
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not read back: %+v", got)
	}
}

func TestUpdateDescription_TouchesDescriptionOnly(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+vaccination_types\s+SET\s+description\s*=\s*\$2,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$1\s+RETURNING`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs("r1", "new text").
		WillReturnRows(recordRows().AddRow("r1", "BCG", "new text", "u-1", now.Add(-time.Hour), now))

	got, err := repo.UpdateDescription(context.Background(), "r1", "new text")
	if err != nil {
		t.Fatalf("UpdateDescription error: %v", err)
	}
	if got.Title != "BCG" || got.Description != "new text" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("updated_at not bumped: %+v", got)
	}
}

func TestUpdateDescription_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)UPDATE\s+vaccination_types`).
		WithArgs("ghost", "x").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateDescription(context.Background(), "ghost", "x")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+vaccination_types\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "r1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_AlreadyGone(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)DELETE\s+FROM\s+vaccination_types`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "r1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM\s+vaccination_types`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
