// Package postgres provides PostgreSQL implementations of repository
// interfaces. It includes repositories for summaries, settings and
// notifications built on database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/repository"
)

// SummaryRepo implements the SummaryRepository interface using PostgreSQL.
type SummaryRepo struct{ db *sql.DB }

// NewSummaryRepo creates a new PostgreSQL-backed summary repository.
func NewSummaryRepo(db *sql.DB) repository.SummaryRepository {
	return &SummaryRepo{db: db}
}

const summaryColumns = `id, title, input_text, summary_text, summary_type, summary_length,
target_percentage, input_word_count, summary_word_count, actual_percentage,
compression_ratio, created_at, deleted_at`

func (repo *SummaryRepo) Create(ctx context.Context, summary *entity.Summary) error {
	const query = `
INSERT INTO summaries (title, input_text, summary_text, summary_type, summary_length,
    target_percentage, input_word_count, summary_word_count, actual_percentage, compression_ratio)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, created_at
`
	err := repo.db.QueryRowContext(ctx, query,
		summary.Title, summary.InputText, summary.SummaryText,
		summary.SummaryType, summary.SummaryLength, summary.TargetPercentage,
		summary.InputWordCount, summary.SummaryWordCount,
		summary.ActualPercentage, summary.CompressionRatio,
	).Scan(&summary.ID, &summary.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

func (repo *SummaryRepo) Get(ctx context.Context, id int64) (*entity.Summary, error) {
	query := `
SELECT ` + summaryColumns + `
FROM summaries
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1
`
	var summary entity.Summary
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&summary.ID, &summary.Title, &summary.InputText, &summary.SummaryText,
		&summary.SummaryType, &summary.SummaryLength, &summary.TargetPercentage,
		&summary.InputWordCount, &summary.SummaryWordCount,
		&summary.ActualPercentage, &summary.CompressionRatio,
		&summary.CreatedAt, &summary.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &summary, nil
}

// ListPaginated retrieves non-deleted summaries ordered by creation date
// (newest first) with LIMIT/OFFSET pagination.
func (repo *SummaryRepo) ListPaginated(ctx context.Context, offset, limit int, filters repository.SummaryFilters) ([]*entity.Summary, error) {
	where, args := buildSummaryFilters(filters)
	query := fmt.Sprintf(`
SELECT `+summaryColumns+`
FROM summaries
%s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d
`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]*entity.Summary, 0, limit)
	for rows.Next() {
		var summary entity.Summary
		err := rows.Scan(
			&summary.ID, &summary.Title, &summary.InputText, &summary.SummaryText,
			&summary.SummaryType, &summary.SummaryLength, &summary.TargetPercentage,
			&summary.InputWordCount, &summary.SummaryWordCount,
			&summary.ActualPercentage, &summary.CompressionRatio,
			&summary.CreatedAt, &summary.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPaginated: rows.Err: %w", err)
	}
	return summaries, nil
}

func (repo *SummaryRepo) Count(ctx context.Context, filters repository.SummaryFilters) (int64, error) {
	where, args := buildSummaryFilters(filters)
	query := "SELECT COUNT(*) FROM summaries " + where

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}

func (repo *SummaryRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `
UPDATE summaries
SET deleted_at = now()
WHERE id = $1 AND deleted_at IS NULL
`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("SoftDelete: ExecContext: %w", err)
	}
	return nil
}

func (repo *SummaryRepo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	const query = `
DELETE FROM summaries
WHERE deleted_at IS NOT NULL AND deleted_at < $1
`
	res, err := repo.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("PurgeDeleted: ExecContext: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("PurgeDeleted: RowsAffected: %w", err)
	}
	return affected, nil
}

func (repo *SummaryRepo) UsageReport(ctx context.Context, from, to time.Time) ([]repository.UsageStat, error) {
	const query = `
SELECT date_trunc('day', created_at) AS day,
       COUNT(*),
       COALESCE(SUM(input_word_count), 0),
       COALESCE(SUM(summary_word_count), 0),
       COALESCE(AVG(actual_percentage), 0)
FROM summaries
WHERE deleted_at IS NULL AND created_at >= $1 AND created_at <= $2
GROUP BY day
ORDER BY day
`
	rows, err := repo.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("UsageReport: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats := make([]repository.UsageStat, 0, 31)
	for rows.Next() {
		var stat repository.UsageStat
		err := rows.Scan(&stat.Day, &stat.SummaryCount,
			&stat.InputWords, &stat.SummaryWords, &stat.AvgActualPercent)
		if err != nil {
			return nil, fmt.Errorf("UsageReport: Scan: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("UsageReport: rows.Err: %w", err)
	}
	return stats, nil
}

// buildSummaryFilters assembles the WHERE clause and argument list for the
// optional listing filters. Non-deleted rows are always required.
func buildSummaryFilters(filters repository.SummaryFilters) (string, []any) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any

	if filters.SummaryType != nil {
		args = append(args, *filters.SummaryType)
		conditions = append(conditions, fmt.Sprintf("summary_type = $%d", len(args)))
	}
	if filters.From != nil {
		args = append(args, *filters.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
