// Package auth provides JWT-based authentication for the API: a login
// endpoint that issues tokens and middleware that validates them.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"smart-summarizer/internal/config"
	"smart-summarizer/internal/handler/http/requestid"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// TokenHandler authenticates against the configured admin credentials and
// issues an HS256-signed JWT.
func TokenHandler(cfg *config.AuthConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(cfg.AdminUser)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.AdminPassword)) == 1
		if !userOK || !passOK {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": req.Username,
			"exp": time.Now().Add(cfg.TokenTTL).Unix(),
			"iat": time.Now().Unix(),
		})

		signed, err := token.SignedString([]byte(cfg.Secret))
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.String("user", req.Username),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed}); err != nil {
			logger.Error("failed to encode token response", slog.Any("error", err))
		}
	}
}
