package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lifetracker/internal/common"
	"github.com/dmitrijs2005/lifetracker/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var userColumns = []string{"id", "username", "email", "password", "first_name", "last_name", "created_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*password,\s*first_name,\s*last_name,\s*email\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id,\s*created_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now)
	mock.ExpectQuery(q).
		WithArgs("alice", "hash", "Alice", "Smith", "alice@example.com").
		WillReturnRows(rows)

	u := &models.User{Username: "alice", Password: "hash", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Username != "alice" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WithArgs("alice", "hash", "Alice", "Smith", "alice@example.com").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "hash", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetUserByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*email,\s*password,\s*first_name,\s*last_name,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows(userColumns).
		AddRow(int64(1), "alice", "alice@example.com", "hash", "Alice", "Smith", time.Now())
	mock.ExpectQuery(q).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	got, err := repo.GetUserByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail error: %v", err)
	}
	if got.ID != 1 || got.Email != "alice@example.com" || got.Password != "hash" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+users\s+WHERE\s+email`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetUserByEmailOrUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*email,\s*password,\s*first_name,\s*last_name,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s+OR\s+username\s*=\s*\$2\s*$`

	rows := sqlmock.NewRows(userColumns).
		AddRow(int64(7), "bob", "bob@example.com", "hash", "Bob", "Jones", time.Now())
	mock.ExpectQuery(q).
		WithArgs("other@example.com", "bob").
		WillReturnRows(rows)

	got, err := repo.GetUserByEmailOrUsername(context.Background(), "other@example.com", "bob")
	if err != nil {
		t.Fatalf("GetUserByEmailOrUsername error: %v", err)
	}
	if got.Username != "bob" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetUserByEmailOrUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+users\s+WHERE\s+email.*OR\s+username`).
		WithArgs("ghost@example.com", "ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByEmailOrUsername(context.Background(), "ghost@example.com", "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
