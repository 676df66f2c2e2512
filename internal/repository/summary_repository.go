package repository

import (
	"context"
	"time"

	"smart-summarizer/internal/domain/entity"
)

// UsageStat aggregates stored summaries for one calendar day. Used by the
// usage report generators.
type UsageStat struct {
	Day              time.Time
	SummaryCount     int64
	InputWords       int64
	SummaryWords     int64
	AvgActualPercent float64
}

// SummaryFilters contains optional filters for summary listing.
type SummaryFilters struct {
	SummaryType *string    // Optional: filter by summary type
	From        *time.Time // Optional: filter summaries created >= this date
	To          *time.Time // Optional: filter summaries created <= this date
}

type SummaryRepository interface {
	Create(ctx context.Context, summary *entity.Summary) error
	// Get retrieves a summary by ID. Soft-deleted rows are not returned.
	// Returns (nil, nil) if the summary is not found.
	Get(ctx context.Context, id int64) (*entity.Summary, error)
	// ListPaginated retrieves non-deleted summaries ordered by created_at
	// DESC, using LIMIT and OFFSET for pagination.
	ListPaginated(ctx context.Context, offset, limit int, filters SummaryFilters) ([]*entity.Summary, error)
	// Count returns the number of non-deleted summaries matching filters.
	// Used for calculating pagination metadata.
	Count(ctx context.Context, filters SummaryFilters) (int64, error)
	// SoftDelete marks a summary deleted without removing the row.
	// Deleting an already-deleted or missing summary is not an error.
	SoftDelete(ctx context.Context, id int64) error
	// PurgeDeleted permanently removes summaries soft-deleted before the
	// cutoff. Returns the number of rows removed.
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
	// UsageReport aggregates per-day usage between from and to inclusive.
	UsageReport(ctx context.Context, from, to time.Time) ([]UsageStat, error)
}
