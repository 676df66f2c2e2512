// Package summary provides HTTP handlers for summary endpoints: creating
// summaries, listing history, fetching, deleting and downloading results.
package summary

import (
	"time"

	"smart-summarizer/internal/domain/entity"
)

// DTO represents the JSON structure for summary data transfer.
type DTO struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	SummaryText      string    `json:"summary_text"`
	SummaryType      string    `json:"summary_type"`
	SummaryLength    string    `json:"summary_length"`
	TargetPercentage int       `json:"target_percentage"`
	InputWordCount   int       `json:"input_word_count"`
	SummaryWordCount int       `json:"summary_word_count"`
	ActualPercentage float64   `json:"actual_percentage"`
	CompressionRatio float64   `json:"compression_ratio"`
	CreatedAt        time.Time `json:"created_at"`
}

// DetailDTO additionally carries the original input text.
type DetailDTO struct {
	DTO
	InputText string `json:"input_text"`
}

func toDTO(s *entity.Summary) DTO {
	return DTO{
		ID:               s.ID,
		Title:            s.Title,
		SummaryText:      s.SummaryText,
		SummaryType:      s.SummaryType,
		SummaryLength:    s.SummaryLength,
		TargetPercentage: s.TargetPercentage,
		InputWordCount:   s.InputWordCount,
		SummaryWordCount: s.SummaryWordCount,
		ActualPercentage: s.ActualPercentage,
		CompressionRatio: s.CompressionRatio,
		CreatedAt:        s.CreatedAt,
	}
}

func toDetailDTO(s *entity.Summary) DetailDTO {
	return DetailDTO{DTO: toDTO(s), InputText: s.InputText}
}
