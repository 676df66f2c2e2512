// Package notify provides business logic for in-app notifications. Each
// notification is stored for the history endpoint and pushed to the
// configured webhook notifier when one is enabled.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"smart-summarizer/internal/common/pagination"
	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/infra/notifier"
	"smart-summarizer/internal/repository"
)

// ErrNotificationNotFound is returned when a notification ID does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// Service handles business logic for notification operations.
type Service struct {
	Repo   repository.NotificationRepository
	Pusher notifier.Notifier
	Logger *slog.Logger
}

// NewService creates a notification service. Pusher may be nil when no
// webhook is configured.
func NewService(repo repository.NotificationRepository, pusher notifier.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Repo: repo, Pusher: pusher, Logger: logger}
}

// Notify stores a notification and pushes it to the webhook. The webhook
// push is best-effort; a delivery failure never fails the store.
func (s *Service) Notify(ctx context.Context, title, message string) error {
	notification := &entity.Notification{
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	if s.Pusher != nil {
		if err := s.Pusher.Notify(ctx, title, message); err != nil {
			s.Logger.Warn("webhook push failed", slog.String("title", title), slog.Any("error", err))
		}
	}
	return nil
}

// PaginatedResult contains notifications along with pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Notification
	Pagination pagination.Metadata
}

// List returns stored notifications, newest first.
func (s *Service) List(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	notifications, err := s.Repo.ListPaginated(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return &PaginatedResult{
		Data: notifications,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// UnreadCount returns the number of notifications not yet marked read.
func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	count, err := s.Repo.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead flags a notification as read.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotificationNotFound
	}
	if err := s.Repo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
