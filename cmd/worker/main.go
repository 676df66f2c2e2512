// The worker command runs scheduled maintenance: purging soft-deleted
// summaries past the retention window and posting a weekly usage report.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"smart-summarizer/internal/config"
	"smart-summarizer/internal/engine"
	pgRepo "smart-summarizer/internal/infra/adapter/persistence/postgres"
	"smart-summarizer/internal/infra/db"
	"smart-summarizer/internal/infra/notifier"
	"smart-summarizer/internal/observability/logging"
	"smart-summarizer/internal/observability/metrics"
	notifyUC "smart-summarizer/internal/usecase/notify"
	setUC "smart-summarizer/internal/usecase/settings"
	sumUC "smart-summarizer/internal/usecase/summary"
)

const (
	defaultPurgeSchedule  = "0 3 * * *" // daily at 03:00
	defaultReportSchedule = "0 8 * * 1" // Mondays at 08:00
	jobTimeout            = 5 * time.Minute
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

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

	webhook := buildNotifier(logger)
	settingsSvc := setUC.NewService(pgRepo.NewSettingRepo(database), defaults)
	notifySvc := notifyUC.NewService(pgRepo.NewNotificationRepo(database), webhook, logger)
	eng := engine.New(engine.WithLogger(logger), engine.WithMetricsRecorder(metrics.EngineRecorder{}))
	summarySvc := sumUC.NewService(pgRepo.NewSummaryRepo(database), eng, settingsSvc, notifySvc, logger)

	startCronWorker(logger, summarySvc, notifySvc)
}

// initDatabase opens the database connection and waits for the API's
// migrations to complete.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	waitForMigrations(logger, database)
	return database
}

func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM summaries LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

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

func scheduleFromEnv(key, fallback string) string {
	if schedule := os.Getenv(key); schedule != "" {
		return schedule
	}
	return fallback
}

func startCronWorker(logger *slog.Logger, summarySvc *sumUC.Service, notifySvc *notifyUC.Service) {
	loc := time.UTC
	if tz := os.Getenv("WORKER_TIMEZONE"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			logger.Error("invalid timezone, using UTC", slog.String("timezone", tz), slog.Any("error", err))
		} else {
			loc = parsed
		}
	}
	c := cron.New(cron.WithLocation(loc))

	purgeSchedule := scheduleFromEnv("PURGE_SCHEDULE", defaultPurgeSchedule)
	if _, err := c.AddFunc(purgeSchedule, func() {
		runPurgeJob(logger, summarySvc)
	}); err != nil {
		logger.Error("failed to add purge job", slog.Any("error", err))
		os.Exit(1)
	}

	reportSchedule := scheduleFromEnv("REPORT_SCHEDULE", defaultReportSchedule)
	if _, err := c.AddFunc(reportSchedule, func() {
		runReportJob(logger, summarySvc, notifySvc)
	}); err != nil {
		logger.Error("failed to add report job", slog.Any("error", err))
		os.Exit(1)
	}

	c.Start()
	logger.Info("worker started",
		slog.String("purge_schedule", purgeSchedule),
		slog.String("report_schedule", reportSchedule),
		slog.String("timezone", loc.String()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopCtx := c.Stop()
	<-stopCtx.Done()
	logger.Info("worker stopped")
}

func runPurgeJob(logger *slog.Logger, svc *sumUC.Service) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	purged, err := svc.PurgeExpired(ctx)
	if err != nil {
		logger.Error("purge job failed", slog.Any("error", err))
		return
	}
	logger.Info("purge job completed",
		slog.Int64("purged", purged),
		slog.Duration("duration", time.Since(start)))
}

func runReportJob(logger *slog.Logger, summarySvc *sumUC.Service, notifySvc *notifyUC.Service) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	to := time.Now()
	from := to.AddDate(0, 0, -7)

	stats, err := summarySvc.Repo.UsageReport(ctx, from, to)
	if err != nil {
		logger.Error("report job failed", slog.Any("error", err))
		return
	}

	var summaries, inputWords, summaryWords int64
	for _, stat := range stats {
		summaries += stat.SummaryCount
		inputWords += stat.InputWords
		summaryWords += stat.SummaryWords
	}

	message := fmt.Sprintf("Last 7 days: %d summaries, %d input words condensed to %d",
		summaries, inputWords, summaryWords)
	if err := notifySvc.Notify(ctx, "Weekly usage report", message); err != nil {
		logger.Error("report notification failed", slog.Any("error", err))
		return
	}
	logger.Info("report job completed", slog.Int64("summaries", summaries))
}
