// The api command runs the summarization HTTP server.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-summarizer/internal/common/pagination"
	"smart-summarizer/internal/config"
	"smart-summarizer/internal/engine"
	hhttp "smart-summarizer/internal/handler/http"
	pgRepo "smart-summarizer/internal/infra/adapter/persistence/postgres"
	"smart-summarizer/internal/infra/db"
	"smart-summarizer/internal/infra/notifier"
	"smart-summarizer/internal/infra/summarizer"
	"smart-summarizer/internal/observability/logging"
	"smart-summarizer/internal/observability/metrics"
	notifyUC "smart-summarizer/internal/usecase/notify"
	setUC "smart-summarizer/internal/usecase/settings"
	sumUC "smart-summarizer/internal/usecase/summary"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	authCfg, err := config.LoadAuthConfig()
	if err != nil {
		logger.Error("auth configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	defaults, err := config.LoadDefaults(os.Getenv("DEFAULTS_FILE"))
	if err != nil {
		logger.Error("defaults configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	engineCfg := summarizer.LoadConfig()
	eng := engine.New(
		engine.WithExternalEngine(summarizer.NewProvider(engineCfg)),
		engine.WithLogger(logger),
		engine.WithMetricsRecorder(metrics.EngineRecorder{}),
	)

	webhook := buildNotifier(logger)
	settingsSvc := setUC.NewService(pgRepo.NewSettingRepo(database), defaults)
	notifySvc := notifyUC.NewService(pgRepo.NewNotificationRepo(database), webhook, logger)
	summarySvc := sumUC.NewService(pgRepo.NewSummaryRepo(database), eng, settingsSvc, notifySvc, logger)

	externalEngine := ""
	if engineCfg.Provider != summarizer.ProviderNone {
		externalEngine = engineCfg.Provider
	}

	handler := hhttp.NewRouter(hhttp.RouterConfig{
		DB:             database,
		Version:        getVersion(),
		AuthCfg:        authCfg,
		Pagination:     pagination.LoadFromEnv(),
		SummarySvc:     summarySvc,
		SettingsSvc:    settingsSvc,
		NotifySvc:      notifySvc,
		Logger:         logger,
		ExternalEngine: externalEngine,
	})

	runServer(logger, handler)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// buildNotifier wires the Slack webhook notifier when configured.
func buildNotifier(logger *slog.Logger) notifier.Notifier {
	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")
	if webhookURL == "" {
		logger.Info("slack notifications disabled")
		return notifier.NewNoOp()
	}
	logger.Info("slack notifications enabled")
	return notifier.NewSlackNotifier(notifier.SlackConfig{
		Enabled:    true,
		WebhookURL: webhookURL,
		Timeout:    10 * time.Second,
	})
}

func getVersion() string {
	if version := os.Getenv("VERSION"); version != "" {
		return version
	}
	return "dev"
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler) {
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
