package summary

import (
	"net/http"

	"smart-summarizer/internal/handler/http/pathutil"
	"smart-summarizer/internal/handler/http/respond"
	sumUC "smart-summarizer/internal/usecase/summary"
)

type DeleteHandler struct{ Svc *sumUC.Service }

// ServeHTTP soft-deletes a summary.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
