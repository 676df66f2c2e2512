// Package notification provides HTTP handlers for listing notifications
// and marking them read.
package notification

import (
	"log/slog"
	"net/http"
	"time"

	"smart-summarizer/internal/common/pagination"
	"smart-summarizer/internal/handler/http/pathutil"
	"smart-summarizer/internal/handler/http/respond"
	notifyUC "smart-summarizer/internal/usecase/notify"
)

// DTO represents the JSON structure for notification data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type ListHandler struct {
	Svc           *notifyUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists notifications, newest first.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(r.Context(), params)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("failed to list notifications", slog.Any("error", err))
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(result.Data))
	for _, n := range result.Data {
		out = append(out, DTO{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	respond.JSON(w, http.StatusOK, pagination.NewResponse(out, result.Pagination))
}

type UnreadCountHandler struct {
	Svc    *notifyUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns the number of unread notifications.
func (h UnreadCountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.Svc.UnreadCount(r.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("failed to count unread notifications", slog.Any("error", err))
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]int64{"unread": count})
}

type MarkReadHandler struct{ Svc *notifyUC.Service }

// ServeHTTP marks one notification as read.
func (h MarkReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.MarkRead(r.Context(), id); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register registers the notification endpoints.
func Register(mux *http.ServeMux, svc *notifyUC.Service, paginationCfg pagination.Config, logger *slog.Logger, authz func(http.Handler) http.Handler) {
	mux.Handle("GET /notifications", authz(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET /notifications/unread", authz(UnreadCountHandler{Svc: svc, Logger: logger}))
	mux.Handle("POST /notifications/{id}/read", authz(MarkReadHandler{svc}))
}
