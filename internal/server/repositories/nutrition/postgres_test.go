package nutrition

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

var entryColumns = []string{"id", "name", "category", "calories", "image_url", "user_id", "created_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+nutrition\s*\(name,\s*category,\s*calories,\s*image_url,\s*user_id,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*COALESCE\(\$6,\s*now\(\)\)\)\s*RETURNING\s+id,\s*created_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now)
	mock.ExpectQuery(q).
		WithArgs("Apple", "fruit", 95, "http://img/apple.png", int64(1), sql.NullTime{}).
		WillReturnRows(rows)

	e := &models.Nutrition{Name: "Apple", Category: "fruit", Calories: 95, ImageURL: "http://img/apple.png", UserID: 1}
	got, err := repo.Create(context.Background(), e)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestCreate_ExplicitTimestamp(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	supplied := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(6), supplied)
	mock.ExpectQuery(`INSERT\s+INTO\s+nutrition`).
		WithArgs("Apple", "fruit", 95, "http://img/apple.png", int64(1), sql.NullTime{Time: supplied, Valid: true}).
		WillReturnRows(rows)

	e := &models.Nutrition{Name: "Apple", Category: "fruit", Calories: 95, ImageURL: "http://img/apple.png", UserID: 1, CreatedAt: supplied}
	got, err := repo.Create(context.Background(), e)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CreatedAt.Equal(supplied) {
		t.Fatalf("want supplied timestamp, got %v", got.CreatedAt)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+nutrition`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Nutrition{Name: "Apple", Category: "fruit", Calories: 95, ImageURL: "u", UserID: 1})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(entryColumns).
		AddRow(int64(5), "Apple", "fruit", 95, "http://img/apple.png", int64(1), time.Now())
	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+nutrition\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != 5 || got.UserID != 1 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+nutrition\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListForUser_ScopedToOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*name,\s*category,\s*calories,\s*image_url,\s*user_id,\s*created_at\s+FROM\s+nutrition\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows(entryColumns).
		AddRow(int64(1), "Apple", "fruit", 95, "u1", int64(1), time.Now()).
		AddRow(int64(2), "Bread", "grain", 200, "u2", int64(1), time.Now())
	mock.ExpectQuery(q).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListForUser error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Apple" || got[1].Name != "Bread" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestListForUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,.*FROM\s+nutrition\s+WHERE\s+user_id`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	got, err := repo.ListForUser(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListForUser error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}
