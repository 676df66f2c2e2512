package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-summarizer/internal/common/pagination"
	"smart-summarizer/internal/domain/entity"
	notifyUC "smart-summarizer/internal/usecase/notify"
)

type memNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *memNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	n.ID = int64(len(r.notifications) + 1)
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *memNotificationRepo) ListPaginated(_ context.Context, offset, limit int) ([]*entity.Notification, error) {
	if offset >= len(r.notifications) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.notifications) {
		end = len(r.notifications)
	}
	return r.notifications[offset:end], nil
}

func (r *memNotificationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.notifications)), nil
}

func (r *memNotificationRepo) CountUnread(_ context.Context) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, id int64) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
		}
	}
	return nil
}

func passthrough(next http.Handler) http.Handler { return next }

func newTestMux() (*http.ServeMux, *memNotificationRepo) {
	repo := &memNotificationRepo{}
	mux := http.NewServeMux()
	Register(mux, notifyUC.NewService(repo, nil, nil), pagination.DefaultConfig(), nil, passthrough)
	return mux, repo
}

func TestListHandler(t *testing.T) {
	t.Parallel()

	mux, repo := newTestMux()
	for i := 0; i < 3; i++ {
		repo.notifications = append(repo.notifications, &entity.Notification{
			ID:        int64(i + 1),
			Title:     "Summary created",
			Message:   "details",
			CreatedAt: time.Now(),
		})
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications?limit=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp pagination.Response[DTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, "Summary created", resp.Data[0].Title)
}

func TestUnreadCountHandler(t *testing.T) {
	t.Parallel()

	mux, repo := newTestMux()
	repo.notifications = append(repo.notifications,
		&entity.Notification{ID: 1, Read: true},
		&entity.Notification{ID: 2},
	)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications/unread", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp["unread"])
}

func TestMarkReadHandler(t *testing.T) {
	t.Parallel()

	mux, repo := newTestMux()
	repo.notifications = append(repo.notifications, &entity.Notification{ID: 1})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications/1/read", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, repo.notifications[0].Read)
}

func TestMarkReadHandler_InvalidID(t *testing.T) {
	t.Parallel()

	mux, _ := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/notifications/zero/read", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
