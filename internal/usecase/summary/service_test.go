package summary

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-summarizer/internal/common/pagination"
	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/engine"
	"smart-summarizer/internal/repository"
	"smart-summarizer/internal/usecase/settings"
)

// stubSummaryRepo implements repository.SummaryRepository in memory.
type stubSummaryRepo struct {
	summaries map[int64]*entity.Summary
	nextID    int64
	createErr error
	purged    int64
}

func newStubSummaryRepo() *stubSummaryRepo {
	return &stubSummaryRepo{summaries: make(map[int64]*entity.Summary), nextID: 1}
}

func (r *stubSummaryRepo) Create(_ context.Context, summary *entity.Summary) error {
	if r.createErr != nil {
		return r.createErr
	}
	summary.ID = r.nextID
	summary.CreatedAt = time.Now()
	r.nextID++
	r.summaries[summary.ID] = summary
	return nil
}

func (r *stubSummaryRepo) Get(_ context.Context, id int64) (*entity.Summary, error) {
	summary, ok := r.summaries[id]
	if !ok || summary.IsDeleted() {
		return nil, nil
	}
	return summary, nil
}

func (r *stubSummaryRepo) ListPaginated(_ context.Context, offset, limit int, _ repository.SummaryFilters) ([]*entity.Summary, error) {
	var all []*entity.Summary
	for id := int64(1); id < r.nextID; id++ {
		if summary, ok := r.summaries[id]; ok && !summary.IsDeleted() {
			all = append(all, summary)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *stubSummaryRepo) Count(_ context.Context, _ repository.SummaryFilters) (int64, error) {
	var total int64
	for _, summary := range r.summaries {
		if !summary.IsDeleted() {
			total++
		}
	}
	return total, nil
}

func (r *stubSummaryRepo) SoftDelete(_ context.Context, id int64) error {
	if summary, ok := r.summaries[id]; ok {
		now := time.Now()
		summary.DeletedAt = &now
	}
	return nil
}

func (r *stubSummaryRepo) PurgeDeleted(_ context.Context, _ time.Time) (int64, error) {
	return r.purged, nil
}

func (r *stubSummaryRepo) UsageReport(_ context.Context, _, _ time.Time) ([]repository.UsageStat, error) {
	return []repository.UsageStat{
		{
			Day:              time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			SummaryCount:     3,
			InputWords:       600,
			SummaryWords:     240,
			AvgActualPercent: 40.0,
		},
	}, nil
}

// stubEngine records the request and returns a canned result.
type stubEngine struct {
	lastReq engine.Request
	result  engine.Result
}

func (e *stubEngine) Summarize(_ context.Context, req engine.Request) engine.Result {
	e.lastReq = req
	return e.result
}

// recordingNotifier captures notifications.
type recordingNotifier struct {
	titles []string
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, title, _ string) error {
	n.titles = append(n.titles, title)
	return n.err
}

// stubSettingRepo is a minimal in-memory repository.SettingRepository.
type stubSettingRepo struct {
	values map[string]string
}

func (r *stubSettingRepo) Get(_ context.Context, key string) (*entity.Setting, error) {
	if value, ok := r.values[key]; ok {
		return &entity.Setting{Key: key, Value: value}, nil
	}
	return nil, nil
}

func (r *stubSettingRepo) List(_ context.Context) ([]*entity.Setting, error) {
	var stored []*entity.Setting
	for key, value := range r.values {
		stored = append(stored, &entity.Setting{Key: key, Value: value})
	}
	return stored, nil
}

func (r *stubSettingRepo) Upsert(_ context.Context, setting *entity.Setting) error {
	r.values[setting.Key] = setting.Value
	return nil
}

func newTestService(repo *stubSummaryRepo, eng *stubEngine, n *recordingNotifier, overrides map[string]string) *Service {
	if overrides == nil {
		overrides = map[string]string{}
	}
	settingsSvc := settings.NewService(&stubSettingRepo{values: overrides}, nil)
	if n == nil {
		return NewService(repo, eng, settingsSvc, nil, nil)
	}
	return NewService(repo, eng, settingsSvc, n, nil)
}

func validInput() SummarizeInput {
	// 32 words, above the minimum input size.
	words := make([]string, 32)
	for i := range words {
		words[i] = "word"
	}
	return SummarizeInput{
		Title:  "Quarterly report",
		Text:   strings.Join(words, " ") + ".",
		Length: "medium",
		Mode:   "extractive",
		Engine: "local",
	}
}

func cannedResult() engine.Result {
	return engine.Result{
		Summary:          "A short summary.",
		SummaryType:      engine.TypeExtractive,
		SummaryLength:    engine.LengthMedium,
		TargetPercentage: 40,
		InputWordCount:   32,
		SummaryWordCount: 3,
		ActualPercentage: 9.4,
		CompressionRatio: 90.6,
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	repo := newStubSummaryRepo()
	eng := &stubEngine{result: cannedResult()}
	notifier := &recordingNotifier{}
	svc := newTestService(repo, eng, notifier, nil)

	summary, err := svc.Summarize(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.ID)
	assert.Equal(t, "Quarterly report", summary.Title)
	assert.Equal(t, "A short summary.", summary.SummaryText)
	assert.Equal(t, "extractive", summary.SummaryType)
	assert.Equal(t, "medium", summary.SummaryLength)
	assert.Equal(t, 40, summary.TargetPercentage)
	assert.InDelta(t, 9.4, summary.ActualPercentage, 0.001)

	// Engine receives resolved selectors and configured percentages.
	assert.Equal(t, engine.LengthMedium, eng.lastReq.Length)
	assert.Equal(t, engine.ModeExtractive, eng.lastReq.Mode)
	assert.Equal(t, engine.KindLocal, eng.lastReq.Engine)
	assert.Equal(t, 40, eng.lastReq.Settings.MediumPercentage)

	require.Len(t, notifier.titles, 1)
	assert.Equal(t, "Summary created", notifier.titles[0])
}

func TestSummarize_SettingsOverridesFlowToEngine(t *testing.T) {
	t.Parallel()

	repo := newStubSummaryRepo()
	eng := &stubEngine{result: cannedResult()}
	svc := newTestService(repo, eng, nil, map[string]string{
		"short_percentage": "15",
	})

	input := validInput()
	input.Length = "short"
	_, err := svc.Summarize(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, engine.LengthShort, eng.lastReq.Length)
	assert.Equal(t, 15, eng.lastReq.Settings.ShortPercentage)
}

func TestSummarize_InputTooShort(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubSummaryRepo(), &stubEngine{result: cannedResult()}, nil, nil)

	input := validInput()
	input.Text = "Far too short to summarize."
	_, err := svc.Summarize(context.Background(), input)

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "text", validationErr.Field)
}

func TestSummarize_InputExceedsConfiguredMax(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubSummaryRepo(), &stubEngine{result: cannedResult()}, nil, map[string]string{
		"max_input_words": "100",
	})

	words := make([]string, 150)
	for i := range words {
		words[i] = "word"
	}
	input := validInput()
	input.Text = strings.Join(words, " ")

	_, err := svc.Summarize(context.Background(), input)
	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSummarize_DerivesTitleWhenAbsent(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubSummaryRepo(), &stubEngine{result: cannedResult()}, nil, nil)

	input := validInput()
	input.Title = ""
	input.Text = "The solar array produced record output during the July heat wave across the region " +
		"while engineers monitored inverter temperatures and grid operators balanced demand " +
		"response programs throughout the afternoon peak period."

	summary, err := svc.Summarize(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "The solar array produced record output during the...", summary.Title)
}

func TestSummarize_TitleTooLong(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubSummaryRepo(), &stubEngine{result: cannedResult()}, nil, nil)

	input := validInput()
	input.Title = strings.Repeat("x", 201)
	_, err := svc.Summarize(context.Background(), input)
	assert.Error(t, err)
}

func TestSummarize_RepositoryError(t *testing.T) {
	t.Parallel()

	repo := newStubSummaryRepo()
	repo.createErr = errors.New("db down")
	svc := newTestService(repo, &stubEngine{result: cannedResult()}, nil, nil)

	_, err := svc.Summarize(context.Background(), validInput())
	assert.Error(t, err)
}

func TestSummarize_NotifierFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{err: errors.New("webhook down")}
	svc := newTestService(newStubSummaryRepo(), &stubEngine{result: cannedResult()}, notifier, nil)

	_, err := svc.Summarize(context.Background(), validInput())
	assert.NoError(t, err)
}

func TestGet(t *testing.T) {
	t.Parallel()

	repo := newStubSummaryRepo()
	svc := newTestService(repo, &stubEngine{result: cannedResult()}, nil, nil)

	created, err := svc.Summarize(context.Background(), validInput())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrSummaryNotFound)

	_, err = svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidSummaryID)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	repo := newStubSummaryRepo()
	svc := newTestService(repo, &stubEngine{result: cannedResult()}, nil, nil)

	created, err := svc.Summarize(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrSummaryNotFound)

	// Deleting again reports not found.
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrSummaryNotFound)
}

func TestHistory(t *testing.T) {
	t.Parallel()

	repo := newStubSummaryRepo()
	svc := newTestService(repo, &stubEngine{result: cannedResult()}, nil, nil)

	for i := 0; i < 5; i++ {
		_, err := svc.Summarize(context.Background(), validInput())
		require.NoError(t, err)
	}

	result, err := svc.History(context.Background(), pagination.Params{Page: 2, Limit: 2}, repository.SummaryFilters{})
	require.NoError(t, err)

	assert.Len(t, result.Data, 2)
	assert.Equal(t, int64(5), result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.Page)
	assert.Equal(t, 3, result.Pagination.TotalPages)
}

func TestDownload(t *testing.T) {
	t.Parallel()

	repo := newStubSummaryRepo()
	svc := newTestService(repo, &stubEngine{result: cannedResult()}, nil, nil)

	created, err := svc.Summarize(context.Background(), validInput())
	require.NoError(t, err)

	t.Run("txt", func(t *testing.T) {
		t.Parallel()

		body, contentType, filename, err := svc.Download(context.Background(), created.ID, FormatTXT)
		require.NoError(t, err)
		assert.Equal(t, "text/plain; charset=utf-8", contentType)
		assert.Equal(t, "summary-1.txt", filename)
		assert.Contains(t, string(body), "Quarterly report")
		assert.Contains(t, string(body), "A short summary.")
	})

	t.Run("pdf", func(t *testing.T) {
		t.Parallel()

		body, contentType, filename, err := svc.Download(context.Background(), created.ID, FormatPDF)
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", contentType)
		assert.Equal(t, "summary-1.pdf", filename)
		assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		_, _, _, err := svc.Download(context.Background(), created.ID, "docx")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing summary", func(t *testing.T) {
		t.Parallel()

		_, _, _, err := svc.Download(context.Background(), 999, FormatTXT)
		assert.ErrorIs(t, err, ErrSummaryNotFound)
	})
}

func TestUsageReport(t *testing.T) {
	t.Parallel()

	svc := newTestService(newStubSummaryRepo(), &stubEngine{result: cannedResult()}, nil, nil)
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	body, contentType, filename, err := svc.UsageReport(context.Background(), from, to, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", contentType)
	assert.Equal(t, "usage-report.csv", filename)
	assert.Contains(t, string(body), "2026-08-29")

	body, contentType, _, err = svc.UsageReport(context.Background(), from, to, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	_, _, _, err = svc.UsageReport(context.Background(), from, to, "xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestPurgeExpired(t *testing.T) {
	t.Parallel()

	repo := newStubSummaryRepo()
	repo.purged = 4
	notifier := &recordingNotifier{}
	svc := newTestService(repo, &stubEngine{result: cannedResult()}, notifier, nil)

	purged, err := svc.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), purged)

	require.Len(t, notifier.titles, 1)
	assert.Equal(t, "Retention purge completed", notifier.titles[0])
}

func TestPurgeExpired_NothingToPurge(t *testing.T) {
	t.Parallel()

	repo := newStubSummaryRepo()
	notifier := &recordingNotifier{}
	svc := newTestService(repo, &stubEngine{result: cannedResult()}, notifier, nil)

	purged, err := svc.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, purged)
	assert.Empty(t, notifier.titles)
}
