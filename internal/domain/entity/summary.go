// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Summary and
// Notification, along with their validation rules and domain-specific errors.
package entity

import "time"

// Summary represents one stored summarization result. InputWordCount and
// SummaryWordCount are measured on the normalized input and final summary
// respectively; ActualPercentage and CompressionRatio are derived and
// rounded to one decimal place at creation time.
type Summary struct {
	ID               int64
	Title            string
	InputText        string
	SummaryText      string
	SummaryType      string
	SummaryLength    string
	TargetPercentage int
	InputWordCount   int
	SummaryWordCount int
	ActualPercentage float64
	CompressionRatio float64
	CreatedAt        time.Time
	DeletedAt        *time.Time
}

// IsDeleted reports whether the summary has been soft-deleted.
func (s *Summary) IsDeleted() bool {
	return s.DeletedAt != nil
}

// Setting is one operator-configured key/value pair. Numeric settings are
// stored as strings and parsed at the usecase layer.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
