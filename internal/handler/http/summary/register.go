package summary

import (
	"log/slog"
	"net/http"

	"smart-summarizer/internal/common/pagination"
	sumUC "smart-summarizer/internal/usecase/summary"
)

// Register registers all summary-related HTTP handlers with the given mux.
// Authentication is applied by the caller via the authz wrapper so the
// whole group shares one policy.
func Register(mux *http.ServeMux, svc *sumUC.Service, paginationCfg pagination.Config, logger *slog.Logger, authz func(http.Handler) http.Handler) {
	mux.Handle("POST /summaries", authz(CreateHandler{svc}))
	mux.Handle("GET /summaries", authz(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET /summaries/{id}", authz(GetHandler{svc}))
	mux.Handle("DELETE /summaries/{id}", authz(DeleteHandler{svc}))
	mux.Handle("GET /summaries/{id}/download", authz(DownloadHandler{svc}))
}
