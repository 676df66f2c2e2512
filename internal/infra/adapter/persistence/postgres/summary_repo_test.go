package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/infra/adapter/persistence/postgres"
	"smart-summarizer/internal/repository"
)

func summaryRow(s *entity.Summary) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "input_text", "summary_text", "summary_type",
		"summary_length", "target_percentage", "input_word_count",
		"summary_word_count", "actual_percentage", "compression_ratio",
		"created_at", "deleted_at",
	}).AddRow(
		s.ID, s.Title, s.InputText, s.SummaryText, s.SummaryType,
		s.SummaryLength, s.TargetPercentage, s.InputWordCount,
		s.SummaryWordCount, s.ActualPercentage, s.CompressionRatio,
		s.CreatedAt, s.DeletedAt,
	)
}

func sampleSummary(now time.Time) *entity.Summary {
	return &entity.Summary{
		ID: 1, Title: "Quarterly report",
		InputText: "long input", SummaryText: "short output",
		SummaryType: "extractive", SummaryLength: "medium",
		TargetPercentage: 40, InputWordCount: 200, SummaryWordCount: 80,
		ActualPercentage: 40.0, CompressionRatio: 60.0,
		CreatedAt: now,
	}
}

func TestSummaryRepo_Create(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO summaries").
		WithArgs("Quarterly report", "long input", "short output",
			"extractive", "medium", 40, 200, 80, 40.0, 60.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	repo := postgres.NewSummaryRepo(db)
	s := sampleSummary(time.Time{})
	s.ID = 0
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if s.ID != 7 || !s.CreatedAt.Equal(now) {
		t.Fatalf("Create did not populate ID/CreatedAt: id=%d created=%v", s.ID, s.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_Get(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	want := sampleSummary(now)

	mock.ExpectQuery("SELECT.*FROM summaries").
		WithArgs(int64(1)).
		WillReturnRows(summaryRow(want))

	repo := postgres.NewSummaryRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_Get_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT.*FROM summaries").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := postgres.NewSummaryRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get = %+v, want nil for missing row", got)
	}
}

func TestSummaryRepo_ListPaginated(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("SELECT.*FROM summaries").
		WithArgs(10, 20).
		WillReturnRows(summaryRow(sampleSummary(now)))

	repo := postgres.NewSummaryRepo(db)
	list, err := repo.ListPaginated(context.Background(), 20, 10, repository.SummaryFilters{})
	if err != nil || len(list) != 1 {
		t.Fatalf("ListPaginated err=%v len=%d", err, len(list))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_ListPaginated_WithFilters(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	summaryType := "abstractive"
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT.*FROM summaries.*summary_type = \\$1.*created_at >= \\$2").
		WithArgs(summaryType, from, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := postgres.NewSummaryRepo(db)
	list, err := repo.ListPaginated(context.Background(), 0, 10, repository.SummaryFilters{
		SummaryType: &summaryType,
		From:        &from,
	})
	if err != nil {
		t.Fatalf("ListPaginated err=%v", err)
	}
	if len(list) != 0 {
		t.Fatalf("len=%d, want 0", len(list))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_Count(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT COUNT.*FROM summaries").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	repo := postgres.NewSummaryRepo(db)
	count, err := repo.Count(context.Background(), repository.SummaryFilters{})
	if err != nil || count != 42 {
		t.Fatalf("Count=%d err=%v", count, err)
	}
}

func TestSummaryRepo_SoftDelete(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE summaries").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewSummaryRepo(db)
	if err := repo.SoftDelete(context.Background(), 3); err != nil {
		t.Fatalf("SoftDelete err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryRepo_PurgeDeleted(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM summaries").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 5))

	repo := postgres.NewSummaryRepo(db)
	purged, err := repo.PurgeDeleted(context.Background(), cutoff)
	if err != nil || purged != 5 {
		t.Fatalf("PurgeDeleted=%d err=%v", purged, err)
	}
}

func TestSummaryRepo_UsageReport(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	from := day.AddDate(0, 0, -7)
	mock.ExpectQuery("SELECT date_trunc").
		WithArgs(from, day).
		WillReturnRows(sqlmock.NewRows([]string{
			"day", "count", "input_words", "summary_words", "avg_actual",
		}).AddRow(day, int64(3), int64(600), int64(240), 40.0))

	repo := postgres.NewSummaryRepo(db)
	stats, err := repo.UsageReport(context.Background(), from, day)
	if err != nil || len(stats) != 1 {
		t.Fatalf("UsageReport err=%v len=%d", err, len(stats))
	}
	if stats[0].SummaryCount != 3 || stats[0].InputWords != 600 {
		t.Fatalf("unexpected stat: %+v", stats[0])
	}
}
