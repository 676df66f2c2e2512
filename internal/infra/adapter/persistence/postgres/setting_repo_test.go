package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/infra/adapter/persistence/postgres"
)

func TestSettingRepo_Get(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("SELECT.*FROM settings").
		WithArgs("max_input_words").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("max_input_words", "5000", now))

	repo := postgres.NewSettingRepo(db)
	got, err := repo.Get(context.Background(), "max_input_words")
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got == nil || got.Value != "5000" {
		t.Fatalf("Get = %+v, want value 5000", got)
	}
}

func TestSettingRepo_Get_Missing(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT.*FROM settings").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"key"}))

	repo := postgres.NewSettingRepo(db)
	got, err := repo.Get(context.Background(), "nope")
	if err != nil || got != nil {
		t.Fatalf("Get = %+v err=%v, want nil, nil", got, err)
	}
}

func TestSettingRepo_Upsert(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("short_percentage", "15").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewSettingRepo(db)
	err := repo.Upsert(context.Background(), &entity.Setting{Key: "short_percentage", Value: "15"})
	if err != nil {
		t.Fatalf("Upsert err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestNotificationRepo_CreateAndList(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs("Report ready", "Weekly usage report generated").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
	mock.ExpectQuery("SELECT.*FROM notifications").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "message", "read", "created_at"}).
			AddRow(int64(1), "Report ready", "Weekly usage report generated", false, now))

	repo := postgres.NewNotificationRepo(db)
	n := &entity.Notification{Title: "Report ready", Message: "Weekly usage report generated"}
	if err := repo.Create(context.Background(), n); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if n.ID != 1 {
		t.Fatalf("Create did not populate ID: %d", n.ID)
	}

	list, err := repo.ListPaginated(context.Background(), 0, 10)
	if err != nil || len(list) != 1 || list[0].Read {
		t.Fatalf("ListPaginated err=%v len=%d", err, len(list))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
