// internal/workers/server.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/sizopi-be/internal/pkg/config"
)

// RedisOpt returns the asynq connection options for cfg
func RedisOpt(cfg config.AsynqConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

// NewServer creates the asynq server that runs the processors
func NewServer(cfg config.AsynqConfig, logger *slog.Logger) *asynq.Server {
	return asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency:     cfg.Concurrency,
		Queues:          cfg.Queues,
		StrictPriority:  cfg.StrictPriority,
		ErrorHandler:    ErrorHandler(logger),
		RetryDelayFunc:  ExponentialBackoff,
		ShutdownTimeout: cfg.ShutdownTimeout,
		HealthCheckFunc: func(err error) {
			if err != nil {
				logger.Error("worker health check failed", slog.String("error", err.Error()))
			}
		},
		Logger: NewAsynqLogger(logger),
	})
}

// NewMux routes each task type to its processor
func NewMux(reservations *ReservationProcessor, reports *ReportProcessor) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationComplete, reservations.CompletePast)
	mux.HandleFunc(TypeAdopterReport, reports.PublishAdopterReport)
	return mux
}

// NewScheduler registers the periodic reservation completion on cron
func NewScheduler(cfg config.AsynqConfig, logger *slog.Logger) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(RedisOpt(cfg), &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   NewAsynqLogger(logger),
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				logger.Error("scheduled enqueue failed", slog.String("error", err.Error()))
				return
			}
			logger.Info("scheduled task enqueued",
				slog.String("type", info.Type),
				slog.String("task_id", info.ID))
		},
	})

	task, err := NewReservationCompleteTask()
	if err != nil {
		return nil, err
	}
	if _, err := scheduler.Register(cfg.CompletionCron, task, asynq.Queue("low")); err != nil {
		return nil, fmt.Errorf("failed to register completion schedule %q: %w", cfg.CompletionCron, err)
	}
	return scheduler, nil
}

// ErrorHandler logs failed task attempts
func ErrorHandler(logger *slog.Logger) asynq.ErrorHandler {
	return asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)
		logger.ErrorContext(ctx, "task processing failed",
			slog.String("type", task.Type()),
			slog.String("payload", string(task.Payload())),
			slog.Int("retried", retried),
			slog.Int("max_retry", maxRetry),
			slog.String("error", err.Error()))
	})
}

// ExponentialBackoff doubles the delay per retry, capped at ten minutes
func ExponentialBackoff(n int, _ error, _ *asynq.Task) time.Duration {
	const (
		baseDelay = time.Second
		maxDelay  = 10 * time.Minute
	)
	if n >= 20 {
		return maxDelay
	}
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

// asynqLogger adapts slog for asynq
type asynqLogger struct {
	logger *slog.Logger
}

// NewAsynqLogger wraps logger for asynq's server and scheduler
func NewAsynqLogger(logger *slog.Logger) asynq.Logger {
	return &asynqLogger{logger: logger.With(slog.String("component", "asynq"))}
}

func (l *asynqLogger) Debug(args ...interface{}) { l.logger.Debug(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...interface{})  { l.logger.Info(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...interface{})  { l.logger.Warn(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
