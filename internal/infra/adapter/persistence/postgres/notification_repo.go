package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/repository"
)

// NotificationRepo implements the NotificationRepository interface using PostgreSQL.
type NotificationRepo struct{ db *sql.DB }

// NewNotificationRepo creates a new PostgreSQL-backed notification repository.
func NewNotificationRepo(db *sql.DB) repository.NotificationRepository {
	return &NotificationRepo{db: db}
}

func (repo *NotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	const query = `
INSERT INTO notifications (title, message)
VALUES ($1, $2)
RETURNING id, created_at
`
	err := repo.db.QueryRowContext(ctx, query, notification.Title, notification.Message).
		Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: QueryRowContext: %w", err)
	}
	return nil
}

func (repo *NotificationRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Notification, error) {
	const query = `
SELECT id, title, message, read, created_at
FROM notifications
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notifications := make([]*entity.Notification, 0, limit)
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPaginated: rows.Err: %w", err)
	}
	return notifications, nil
}

func (repo *NotificationRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM notifications`

	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}

func (repo *NotificationRepo) CountUnread(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE read = FALSE`

	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountUnread: QueryRowContext: %w", err)
	}
	return count, nil
}

func (repo *NotificationRepo) MarkRead(ctx context.Context, id int64) error {
	const query = `
UPDATE notifications
SET read = TRUE
WHERE id = $1
`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("MarkRead: ExecContext: %w", err)
	}
	return nil
}
