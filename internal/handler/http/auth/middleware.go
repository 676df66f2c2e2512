package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"smart-summarizer/internal/config"
	"smart-summarizer/internal/handler/http/respond"
)

type ctxKey string

const ctxUser ctxKey = "user"

// UserFromContext returns the authenticated subject, if any.
func UserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(ctxUser).(string)
	return user
}

// Middleware returns authorization middleware requiring a valid bearer
// token for every request it wraps. All methods are protected; read-only
// endpoints must opt in explicitly by not being wrapped.
func Middleware(cfg *config.AuthConfig) func(http.Handler) http.Handler {
	secret := []byte(cfg.Secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := validateJWT(r.Header.Get("Authorization"), secret)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			ctx := context.WithValue(r.Context(), ctxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateJWT(authz string, secret []byte) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("missing subject")
	}
	return sub, nil
}
