// cmd/worker/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ammerola/sizopi-be/internal/adapters/db"
	"github.com/ammerola/sizopi-be/internal/adapters/storage"
	"github.com/ammerola/sizopi-be/internal/core/ports"
	"github.com/ammerola/sizopi-be/internal/core/services"
	"github.com/ammerola/sizopi-be/internal/pkg/config"
	"github.com/ammerola/sizopi-be/internal/pkg/logger"
	"github.com/ammerola/sizopi-be/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr),
		slog.String("completion_cron", cfg.Asynq.CompletionCron))

	ctx := context.Background()

	if err := cfg.LoadSecrets(ctx, slogger); err != nil {
		slogger.Error("failed to load secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The worker needs far fewer connections than the API
	dbCfg := cfg.DB()
	dbCfg.MaxConnections = 5
	dbCfg.MinConnections = 1

	database, err := db.NewDatabase(ctx, dbCfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	reports, err := newReportStorage(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize report storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gw := db.NewGateways(database, slogger)
	adopters := services.NewAdopterService(gw.Adopters, gw.Adoptions, reports, cfg.Reports.KeyPrefix, slogger)

	mux := workers.NewMux(
		workers.NewReservationProcessor(gw.Reservations, slogger),
		workers.NewReportProcessor(adopters, cfg.Reports.TopAdopters, slogger),
	)

	srv := workers.NewServer(cfg.Asynq, slogger)

	scheduler, err := workers.NewScheduler(cfg.Asynq, slogger)
	if err != nil {
		slogger.Error("failed to create scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			slogger.Error("failed to run scheduler", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

// newReportStorage writes to REPORT_LOCAL_DIR when set, S3 otherwise
func newReportStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.FileStorage, error) {
	if cfg.Reports.LocalDir != "" {
		return storage.NewLocalStorage(cfg.Reports.LocalDir, logger), nil
	}
	return storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, logger)
}
