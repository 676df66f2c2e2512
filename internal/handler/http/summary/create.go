package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	"smart-summarizer/internal/domain/entity"
	"smart-summarizer/internal/handler/http/respond"
	sumUC "smart-summarizer/internal/usecase/summary"
)

type CreateHandler struct{ Svc *sumUC.Service }

// ServeHTTP creates a summary from the posted text.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title            string `json:"title"`
		Text             string `json:"text"`
		Length           string `json:"length"`
		Mode             string `json:"mode"`
		Engine           string `json:"engine"`
		CustomPercentage int    `json:"custom_percentage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	created, err := h.Svc.Summarize(r.Context(), sumUC.SummarizeInput{
		Title:            req.Title,
		Text:             req.Text,
		Length:           req.Length,
		Mode:             req.Mode,
		Engine:           req.Engine,
		CustomPercentage: req.CustomPercentage,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(created))
}
