package report

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/engine"
	"smart-summarizer/internal/repository"
	"smart-summarizer/internal/usecase/settings"
	sumUC "smart-summarizer/internal/usecase/summary"
)

// reportRepo returns fixed usage stats; the other methods are unused here.
type reportRepo struct{}

func (reportRepo) Create(context.Context, *entity.Summary) error { return nil }
func (reportRepo) Get(context.Context, int64) (*entity.Summary, error) {
	return nil, nil
}
func (reportRepo) ListPaginated(context.Context, int, int, repository.SummaryFilters) ([]*entity.Summary, error) {
	return nil, nil
}
func (reportRepo) Count(context.Context, repository.SummaryFilters) (int64, error) { return 0, nil }
func (reportRepo) SoftDelete(context.Context, int64) error                         { return nil }
func (reportRepo) PurgeDeleted(context.Context, time.Time) (int64, error)          { return 0, nil }
func (reportRepo) UsageReport(context.Context, time.Time, time.Time) ([]repository.UsageStat, error) {
	return []repository.UsageStat{
		{
			Day:              time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			SummaryCount:     2,
			InputWords:       400,
			SummaryWords:     160,
			AvgActualPercent: 40.0,
		},
	}, nil
}

type noEngine struct{}

func (noEngine) Summarize(context.Context, engine.Request) engine.Result { return engine.Result{} }

type noSettingRepo struct{}

func (noSettingRepo) Get(context.Context, string) (*entity.Setting, error) { return nil, nil }
func (noSettingRepo) List(context.Context) ([]*entity.Setting, error)      { return nil, nil }
func (noSettingRepo) Upsert(context.Context, *entity.Setting) error        { return nil }

func passthrough(next http.Handler) http.Handler { return next }

func newTestMux() *http.ServeMux {
	svc := sumUC.NewService(reportRepo{}, noEngine{}, settings.NewService(noSettingRepo{}, nil), nil, nil)
	mux := http.NewServeMux()
	Register(mux, svc, passthrough)
	return mux
}

func TestUsageHandler_CSV(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/usage?from=2026-08-01&to=2026-08-31", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "2026-08-29")
}

func TestUsageHandler_PDF(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/usage?format=pdf", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestUsageHandler_BadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
	}{
		{name: "bad date", target: "/reports/usage?from=lastweek"},
		{name: "inverted range", target: "/reports/usage?from=2026-08-31&to=2026-08-01"},
		{name: "bad format", target: "/reports/usage?format=xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux := newTestMux()
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
