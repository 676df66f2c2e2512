package summary

import (
	"fmt"
	"log/slog"
	"net/http"

	"smart-summarizer/internal/handler/http/pathutil"
	"smart-summarizer/internal/handler/http/respond"
	sumUC "smart-summarizer/internal/usecase/summary"
)

type DownloadHandler struct{ Svc *sumUC.Service }

// ServeHTTP streams a stored summary as a file. The format query parameter
// selects txt (default) or pdf.
func (h DownloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = sumUC.FormatTXT
	}

	body, contentType, filename, err := h.Svc.Download(r.Context(), id, format)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(body); err != nil {
		slog.Default().Error("failed to write download response", slog.Any("error", err))
	}
}
