// Package settings provides HTTP handlers for reading and updating the
// runtime summarizer settings.
package settings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"smart-summarizer/internal/handler/http/respond"
	setUC "smart-summarizer/internal/usecase/settings"
)

// DTO represents the JSON structure for one setting override.
type DTO struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveDTO is the merged view returned by the list endpoint.
type EffectiveDTO struct {
	ShortPercentage  int   `json:"short_percentage"`
	MediumPercentage int   `json:"medium_percentage"`
	LongPercentage   int   `json:"long_percentage"`
	MaxInputWords    int   `json:"max_input_words"`
	RetentionDays    int   `json:"retention_days"`
	Overrides        []DTO `json:"overrides"`
}

type GetHandler struct{ Svc *setUC.Service }

// ServeHTTP returns the effective settings plus the stored overrides.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	values, err := h.Svc.Effective(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	stored, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := EffectiveDTO{
		ShortPercentage:  values.ShortPercentage,
		MediumPercentage: values.MediumPercentage,
		LongPercentage:   values.LongPercentage,
		MaxInputWords:    values.MaxInputWords,
		RetentionDays:    values.RetentionDays,
		Overrides:        make([]DTO, 0, len(stored)),
	}
	for _, s := range stored {
		out.Overrides = append(out.Overrides, DTO{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt})
	}
	respond.JSON(w, http.StatusOK, out)
}

type UpdateHandler struct{ Svc *setUC.Service }

// ServeHTTP stores one setting override.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Key == "" || req.Value == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("key and value are required"))
		return
	}

	setting, err := h.Svc.Update(r.Context(), req.Key, req.Value)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, setUC.ErrUnknownSetting) || errors.Is(err, setUC.ErrInvalidValue) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, DTO{Key: setting.Key, Value: setting.Value, UpdatedAt: setting.UpdatedAt})
}

// Register registers the settings endpoints.
func Register(mux *http.ServeMux, svc *setUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET /settings", authz(GetHandler{svc}))
	mux.Handle("PUT /settings", authz(UpdateHandler{svc}))
}
