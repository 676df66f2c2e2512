package repository

import (
	"context"

	"smart-summarizer/internal/domain/entity"
)

type SettingRepository interface {
	// Get retrieves a single setting by key.
	// Returns (nil, nil) if the key is not configured.
	Get(ctx context.Context, key string) (*entity.Setting, error)
	// List retrieves all configured settings.
	List(ctx context.Context) ([]*entity.Setting, error)
	// Upsert inserts or replaces the value for a key.
	Upsert(ctx context.Context, setting *entity.Setting) error
}
