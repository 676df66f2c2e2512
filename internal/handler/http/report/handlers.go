// Package report provides the usage report endpoint, serving per-day
// aggregates as CSV or PDF.
package report

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"smart-summarizer/internal/handler/http/respond"
	sumUC "smart-summarizer/internal/usecase/summary"
)

// defaultWindowDays is the report range when no from parameter is given.
const defaultWindowDays = 30

type UsageHandler struct{ Svc *sumUC.Service }

// ServeHTTP renders the usage report. Query parameters: from, to (RFC 3339
// or YYYY-MM-DD, default last 30 days) and format (csv, default, or pdf).
func (h UsageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	to := time.Now()
	from := to.AddDate(0, 0, -defaultWindowDays)

	if v := r.URL.Query().Get("from"); v != "" {
		ts, err := parseDate(v)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		from = ts
	}
	if v := r.URL.Query().Get("to"); v != "" {
		ts, err := parseDate(v)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		to = ts
	}
	if to.Before(from) {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid range: to must not precede from"))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = sumUC.FormatCSV
	}

	body, contentType, filename, err := h.Svc.UsageReport(r.Context(), from, to, format)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, sumUC.ErrUnsupportedFormat) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(body); err != nil {
		slog.Default().Error("failed to write report response", slog.Any("error", err))
	}
}

func parseDate(v string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, errors.New("invalid date: must be RFC 3339 or YYYY-MM-DD")
	}
	return ts, nil
}

// Register registers the report endpoint.
func Register(mux *http.ServeMux, svc *sumUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET /reports/usage", authz(UsageHandler{svc}))
}
