package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smart-summarizer/internal/common/pagination"
	"smart-summarizer/internal/config"
	"smart-summarizer/internal/handler/http/auth"
	hextract "smart-summarizer/internal/handler/http/extract"
	hnotification "smart-summarizer/internal/handler/http/notification"
	hreport "smart-summarizer/internal/handler/http/report"
	"smart-summarizer/internal/handler/http/requestid"
	hsettings "smart-summarizer/internal/handler/http/settings"
	hsummary "smart-summarizer/internal/handler/http/summary"
	notifyUC "smart-summarizer/internal/usecase/notify"
	setUC "smart-summarizer/internal/usecase/settings"
	sumUC "smart-summarizer/internal/usecase/summary"
)

// MetricsHandler returns the Prometheus metrics endpoint handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RouterConfig collects everything the router needs.
type RouterConfig struct {
	DB          *sql.DB
	Version     string
	AuthCfg     *config.AuthConfig
	Pagination  pagination.Config
	SummarySvc  *sumUC.Service
	SettingsSvc *setUC.Service
	NotifySvc   *notifyUC.Service
	Logger      *slog.Logger

	// ExternalEngine names the configured external provider for the
	// health endpoint; empty means local-only summarization.
	ExternalEngine string

	// RequestsPerSecond and Burst configure per-IP rate limiting.
	RequestsPerSecond float64
	Burst             int
}

// NewRouter builds the full API handler: public endpoints (auth, health,
// metrics), JWT-protected business endpoints and the shared middleware
// chain.
func NewRouter(cfg RouterConfig) http.Handler {
	authz := auth.Middleware(cfg.AuthCfg)

	mux := http.NewServeMux()

	mux.Handle("POST /auth/token", auth.TokenHandler(cfg.AuthCfg))
	mux.Handle("GET /health", &HealthHandler{DB: cfg.DB, Version: cfg.Version, ExternalEngine: cfg.ExternalEngine})
	mux.Handle("GET /ready", &ReadyHandler{DB: cfg.DB})
	mux.Handle("GET /live", LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())

	hsummary.Register(mux, cfg.SummarySvc, cfg.Pagination, cfg.Logger, authz)
	hsettings.Register(mux, cfg.SettingsSvc, authz)
	hnotification.Register(mux, cfg.NotifySvc, cfg.Pagination, cfg.Logger, authz)
	hextract.Register(mux, authz)
	hreport.Register(mux, cfg.SummarySvc, authz)

	// Middleware applied outermost first: request ID, rate limit,
	// recovery, logging, body limit, metrics.
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 20
	}
	limiter := NewRateLimiter(rps, burst)

	var handler http.Handler = mux
	handler = Metrics()(handler)
	handler = LimitRequestBody(12 << 20)(handler)
	handler = Logging(cfg.Logger)(handler)
	handler = Recover(cfg.Logger)(handler)
	handler = limiter.Limit(handler)
	return requestid.Middleware(handler)
}
