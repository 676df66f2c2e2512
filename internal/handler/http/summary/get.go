package summary

import (
	"errors"
	"net/http"

	"smart-summarizer/internal/handler/http/pathutil"
	"smart-summarizer/internal/handler/http/respond"
	sumUC "smart-summarizer/internal/usecase/summary"
)

// errInvalidDate is shared by the list and report filter parsers.
var errInvalidDate = errors.New("invalid date: must be RFC 3339 or YYYY-MM-DD")

type GetHandler struct{ Svc *sumUC.Service }

// ServeHTTP returns one summary including its input text.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	s, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDetailDTO(s))
}

// statusFor maps usecase errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sumUC.ErrInvalidSummaryID):
		return http.StatusBadRequest
	case errors.Is(err, sumUC.ErrSummaryNotFound):
		return http.StatusNotFound
	case errors.Is(err, sumUC.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
