package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"smart-summarizer/internal/common/pagination"
	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/engine"
	"smart-summarizer/internal/infra/notifier"
	"smart-summarizer/internal/infra/report"
	"smart-summarizer/internal/observability/metrics"
	"smart-summarizer/internal/repository"
	"smart-summarizer/internal/usecase/settings"
	"smart-summarizer/internal/utils/text"
)

// Summarizer produces a summary for one request. *engine.Engine satisfies
// this; tests substitute a stub.
type Summarizer interface {
	Summarize(ctx context.Context, req engine.Request) engine.Result
}

// Service handles business logic for summary operations.
type Service struct {
	Repo     repository.SummaryRepository
	Engine   Summarizer
	Settings *settings.Service
	Notifier notifier.Notifier
	Logger   *slog.Logger
}

// NewService creates a summary service. Notifier may be nil when
// notifications are disabled.
func NewService(repo repository.SummaryRepository, eng Summarizer, settingsSvc *settings.Service, n notifier.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Repo:     repo,
		Engine:   eng,
		Settings: settingsSvc,
		Notifier: n,
		Logger:   logger,
	}
}

// SummarizeInput contains the data needed to create a summary.
type SummarizeInput struct {
	Title            string
	Text             string
	Length           string
	Mode             string
	Engine           string
	CustomPercentage int
}

// Summarize validates the input, runs the engine and persists the result.
func (s *Service) Summarize(ctx context.Context, input SummarizeInput) (*entity.Summary, error) {
	title := strings.TrimSpace(input.Title)
	if err := entity.ValidateTitle(title); err != nil {
		return nil, err
	}

	values, err := s.Settings.Effective(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	wordCount := text.CountWords(input.Text)
	if err := entity.ValidateInputText(wordCount, values.MaxInputWords); err != nil {
		return nil, err
	}

	if title == "" {
		title = deriveTitle(input.Text)
	}

	req := engine.Request{
		Text:             input.Text,
		Length:           engine.ParseLength(input.Length),
		Mode:             engine.ParseMode(input.Mode),
		Engine:           engine.ParseKind(input.Engine),
		CustomPercentage: input.CustomPercentage,
		Settings:         values.EngineSettings(),
	}

	start := time.Now()
	result := s.Engine.Summarize(ctx, req)
	metrics.RecordSummarizationDuration(result.SummaryType, time.Since(start))

	summary := &entity.Summary{
		Title:            title,
		InputText:        input.Text,
		SummaryText:      result.Summary,
		SummaryType:      result.SummaryType,
		SummaryLength:    string(result.SummaryLength),
		TargetPercentage: result.TargetPercentage,
		InputWordCount:   result.InputWordCount,
		SummaryWordCount: result.SummaryWordCount,
		ActualPercentage: result.ActualPercentage,
		CompressionRatio: result.CompressionRatio,
	}

	if err := s.Repo.Create(ctx, summary); err != nil {
		return nil, fmt.Errorf("create summary: %w", err)
	}
	metrics.RecordSummaryCreated(summary.SummaryType, summary.SummaryLength)

	s.notify(ctx, "Summary created",
		fmt.Sprintf("%q summarized to %d of %d words (%.1f%%)",
			title, summary.SummaryWordCount, summary.InputWordCount, summary.ActualPercentage))

	return summary, nil
}

// PaginatedResult contains summaries along with pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Summary
	Pagination pagination.Metadata
}

// History returns stored summaries matching filters, newest first.
func (s *Service) History(ctx context.Context, params pagination.Params, filters repository.SummaryFilters) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count summaries: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	summaries, err := s.Repo.ListPaginated(ctx, offset, params.Limit, filters)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}

	return &PaginatedResult{
		Data: summaries,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// Get returns one summary by ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Summary, error) {
	if id <= 0 {
		return nil, ErrInvalidSummaryID
	}

	summary, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	if summary == nil {
		return nil, ErrSummaryNotFound
	}
	return summary, nil
}

// Delete soft-deletes a summary. The row remains until the retention purge
// removes it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	return nil
}

// Download formats reported by Download.
const (
	FormatTXT = "txt"
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// Download renders a stored summary for file download. It returns the file
// body, content type and suggested filename.
func (s *Service) Download(ctx context.Context, id int64, format string) ([]byte, string, string, error) {
	summary, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", "", err
	}

	switch format {
	case FormatTXT:
		body := fmt.Sprintf("%s\n\n%s\n", summary.Title, summary.SummaryText)
		return []byte(body), "text/plain; charset=utf-8", fmt.Sprintf("summary-%d.txt", id), nil
	case FormatPDF:
		body, err := report.SummaryPDF(summary)
		if err != nil {
			return nil, "", "", fmt.Errorf("render summary pdf: %w", err)
		}
		return body, "application/pdf", fmt.Sprintf("summary-%d.pdf", id), nil
	default:
		return nil, "", "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// UsageReport renders aggregated per-day usage between from and to.
func (s *Service) UsageReport(ctx context.Context, from, to time.Time, format string) ([]byte, string, string, error) {
	stats, err := s.Repo.UsageReport(ctx, from, to)
	if err != nil {
		return nil, "", "", fmt.Errorf("usage report: %w", err)
	}

	switch format {
	case FormatCSV:
		body, err := report.UsageCSV(stats)
		if err != nil {
			return nil, "", "", fmt.Errorf("render usage csv: %w", err)
		}
		return body, "text/csv; charset=utf-8", "usage-report.csv", nil
	case FormatPDF:
		body, err := report.UsagePDF(stats)
		if err != nil {
			return nil, "", "", fmt.Errorf("render usage pdf: %w", err)
		}
		return body, "application/pdf", "usage-report.pdf", nil
	default:
		return nil, "", "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// PurgeExpired permanently removes summaries soft-deleted longer ago than
// the configured retention window. Returns the number of rows removed.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	values, err := s.Settings.Effective(ctx)
	if err != nil {
		return 0, fmt.Errorf("load settings: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -values.RetentionDays)
	purged, err := s.Repo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge summaries: %w", err)
	}

	if purged > 0 {
		metrics.RecordSummariesPurged(purged)
		s.notify(ctx, "Retention purge completed",
			fmt.Sprintf("%d summaries older than %d days removed", purged, values.RetentionDays))
	}
	return purged, nil
}

// titleWords is the number of leading words used when deriving a title
// from untitled input.
const titleWords = 8

// deriveTitle builds a title from the first few words of the input.
func deriveTitle(input string) string {
	words := strings.Fields(input)
	if len(words) <= titleWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:titleWords], " ") + "..."
}

// notify delivers a best-effort notification. Failures are logged, never
// surfaced to the caller.
func (s *Service) notify(ctx context.Context, title, message string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, title, message); err != nil {
		s.Logger.Warn("notification failed", slog.String("title", title), slog.Any("error", err))
	}
}
