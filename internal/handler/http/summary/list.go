package summary

import (
	"log/slog"
	"net/http"
	"time"

	"smart-summarizer/internal/common/pagination"
	"smart-summarizer/internal/handler/http/respond"
	"smart-summarizer/internal/repository"
	sumUC "smart-summarizer/internal/usecase/summary"
)

type ListHandler struct {
	Svc           *sumUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists stored summaries, newest first. Supports page/limit
// pagination plus optional type, from and to filters.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.History(r.Context(), params, filters)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("failed to list summaries", slog.Any("error", err))
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(result.Data))
	for _, s := range result.Data {
		out = append(out, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, pagination.NewResponse(out, result.Pagination))
}

// parseFilters reads the optional type/from/to query parameters. Dates are
// RFC 3339 or plain YYYY-MM-DD.
func parseFilters(r *http.Request) (repository.SummaryFilters, error) {
	var filters repository.SummaryFilters

	if v := r.URL.Query().Get("type"); v != "" {
		filters.SummaryType = &v
	}
	if v := r.URL.Query().Get("from"); v != "" {
		ts, err := parseDate(v)
		if err != nil {
			return filters, err
		}
		filters.From = &ts
	}
	if v := r.URL.Query().Get("to"); v != "" {
		ts, err := parseDate(v)
		if err != nil {
			return filters, err
		}
		filters.To = &ts
	}
	return filters, nil
}

func parseDate(v string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return ts, nil
}
