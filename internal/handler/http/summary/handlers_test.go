package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	sumUC "smart-summarizer/internal/usecase/summary"
)

type memSummaryRepo struct {
	summaries map[int64]*entity.Summary
	nextID    int64
}

func newMemSummaryRepo() *memSummaryRepo {
	return &memSummaryRepo{summaries: make(map[int64]*entity.Summary), nextID: 1}
}

func (r *memSummaryRepo) Create(_ context.Context, s *entity.Summary) error {
	s.ID = r.nextID
	s.CreatedAt = time.Now()
	r.nextID++
	r.summaries[s.ID] = s
	return nil
}

func (r *memSummaryRepo) Get(_ context.Context, id int64) (*entity.Summary, error) {
	s, ok := r.summaries[id]
	if !ok || s.IsDeleted() {
		return nil, nil
	}
	return s, nil
}

func (r *memSummaryRepo) ListPaginated(_ context.Context, offset, limit int, _ repository.SummaryFilters) ([]*entity.Summary, error) {
	var all []*entity.Summary
	for id := int64(1); id < r.nextID; id++ {
		if s, ok := r.summaries[id]; ok && !s.IsDeleted() {
			all = append(all, s)
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

func (r *memSummaryRepo) Count(_ context.Context, _ repository.SummaryFilters) (int64, error) {
	var n int64
	for _, s := range r.summaries {
		if !s.IsDeleted() {
			n++
		}
	}
	return n, nil
}

func (r *memSummaryRepo) SoftDelete(_ context.Context, id int64) error {
	if s, ok := r.summaries[id]; ok {
		now := time.Now()
		s.DeletedAt = &now
	}
	return nil
}

func (r *memSummaryRepo) PurgeDeleted(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *memSummaryRepo) UsageReport(_ context.Context, _, _ time.Time) ([]repository.UsageStat, error) {
	return nil, nil
}

type memSettingRepo struct{}

func (memSettingRepo) Get(context.Context, string) (*entity.Setting, error) { return nil, nil }
func (memSettingRepo) List(context.Context) ([]*entity.Setting, error)      { return nil, nil }
func (memSettingRepo) Upsert(context.Context, *entity.Setting) error        { return nil }

type fixedEngine struct{}

func (fixedEngine) Summarize(_ context.Context, _ engine.Request) engine.Result {
	return engine.Result{
		Summary:          "A compact summary.",
		SummaryType:      engine.TypeExtractive,
		SummaryLength:    engine.LengthMedium,
		TargetPercentage: 40,
		InputWordCount:   40,
		SummaryWordCount: 3,
		ActualPercentage: 7.5,
		CompressionRatio: 92.5,
	}
}

// passthrough leaves routes unauthenticated for handler tests.
func passthrough(next http.Handler) http.Handler { return next }

func newTestMux(t *testing.T) (*http.ServeMux, *memSummaryRepo) {
	t.Helper()

	repo := newMemSummaryRepo()
	svc := sumUC.NewService(repo, fixedEngine{}, settings.NewService(memSettingRepo{}, nil), nil, nil)

	mux := http.NewServeMux()
	Register(mux, svc, pagination.DefaultConfig(), nil, passthrough)
	return mux, repo
}

func createBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	words := make([]string, 40)
	for i := range words {
		words[i] = "word"
	}
	body, err := json.Marshal(map[string]any{
		"title":  "Test document",
		"text":   strings.Join(words, " "),
		"length": "medium",
		"mode":   "extractive",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/summaries", createBody(t)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var dto DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, int64(1), dto.ID)
	assert.Equal(t, "A compact summary.", dto.SummaryText)
	assert.Equal(t, "extractive", dto.SummaryType)
}

func TestCreateHandler_MissingText(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)

	body := bytes.NewBufferString(`{"title":"x"}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/summaries", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHandler_TextTooShort(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)

	body := bytes.NewBufferString(`{"text":"too short to matter"}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/summaries", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "at least")
}

func TestListHandler(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/summaries", createBody(t)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summaries?page=1&limit=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp pagination.Response[DTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestListHandler_InvalidPage(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summaries?page=zero", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListHandler_InvalidDateFilter(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summaries?from=yesterday", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHandler(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/summaries", createBody(t)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summaries/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var dto DetailDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "Test document", dto.Title)
	assert.NotEmpty(t, dto.InputText)
}

func TestGetHandler_NotFound(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summaries/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHandler_InvalidID(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summaries/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteHandler(t *testing.T) {
	t.Parallel()

	mux, repo := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/summaries", createBody(t)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/summaries/1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, repo.summaries[1].IsDeleted())

	// Second delete reports not found.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/summaries/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadHandler(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/summaries", createBody(t)))
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("txt default", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summaries/1/download", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "summary-1.txt")
		assert.Contains(t, rec.Body.String(), "A compact summary.")
	})

	t.Run("pdf", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summaries/1/download?format=pdf", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("unsupported format", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summaries/1/download?format=docx", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
