package repository

import (
	"context"

	"smart-summarizer/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	// ListPaginated retrieves notifications ordered by created_at DESC.
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Notification, error)
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
	// MarkRead sets the read flag. Marking a missing notification is not
	// an error.
	MarkRead(ctx context.Context, id int64) error
}
