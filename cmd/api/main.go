// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/sizopi-be/internal/adapters/db"
	redis_a "github.com/ammerola/sizopi-be/internal/adapters/redis_adapter"
	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
	"github.com/ammerola/sizopi-be/internal/core/services"
	"github.com/ammerola/sizopi-be/internal/handlers"
	"github.com/ammerola/sizopi-be/internal/handlers/middleware"
	"github.com/ammerola/sizopi-be/internal/pkg/config"
	"github.com/ammerola/sizopi-be/internal/pkg/logger"
	"github.com/ammerola/sizopi-be/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting sizopi zoo api",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.App.Version == "dev" {
		cfg.App.Version = Version
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.Bool("db_debug", cfg.Database.Debug),
	)

	ctx := context.Background()

	if err := cfg.LoadSecrets(ctx, slogger); err != nil {
		slogger.Error("failed to load secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			if cfg.IsProduction() {
				os.Exit(1)
			}
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server", slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds everything the API wires together
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	handlers       *handlers.Handlers
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.Bool("debug", cfg.Database.Debug),
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, cfg.DB(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database
	gw := db.NewGateways(database, logger)

	// Redis backs the task queue and the adopter cache. The API serves without it.
	var tasks ports.TaskQueue
	var adopterRepo ports.AdopterRepository = gw.Adopters
	var adoptionRepo ports.AdoptionRepository = gw.Adoptions
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, background reports disabled", slog.String("error", err.Error()))
		redisClient.Close()
		redisClient = nil
	} else {
		deps.redisClient = redisClient
		deps.asynqClient = asynq.NewClient(workers.RedisOpt(cfg.Asynq))
		deps.asynqInspector = asynq.NewInspector(workers.RedisOpt(cfg.Asynq))
		tasks = workers.NewQueue(deps.asynqClient, logger)
		if cfg.Redis.CacheTTL > 0 {
			cached := redis_a.NewCachedAdopterRepository(gw.Adopters, redis_a.NewCache(redisClient, cfg.Redis.CacheTTL, logger), logger)
			adopterRepo = cached
			adoptionRepo = redis_a.NewCachedAdoptionRepository(gw.Adoptions, cached, logger)
		}
	}

	accounts := services.NewAccountService(gw.Accounts, logger)
	reservations := services.NewReservationService(gw.Reservations, logger)
	care := services.NewCareService(gw.Feedings, gw.ExamSchedules, gw.MedicalRecords, logger)
	adopters := services.NewAdopterService(adopterRepo, adoptionRepo, nil, cfg.Reports.KeyPrefix, logger)

	deps.handlers = &handlers.Handlers{
		Health:       handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg.App.Version, cfg.App.Environment, logger),
		Accounts:     handlers.NewAccountHandler(accounts, logger),
		Reservations: handlers.NewReservationHandler(reservations, logger),
		Care:         handlers.NewCareHandler(care, logger),
		Adopters:     handlers.NewAdopterHandler(adopters, tasks, cfg.Reports.TopAdopters, logger),
		Resources: map[string]handlers.Registrar{
			"habitats":    handlers.NewResourceHandler[*domain.Habitat]("habitat", "nama", gw.Habitats, func() *domain.Habitat { return &domain.Habitat{} }, logger),
			"animals":     handlers.NewResourceHandler[*domain.Animal]("animal", "id", gw.Animals, func() *domain.Animal { return &domain.Animal{} }, logger),
			"facilities":  handlers.NewResourceHandler[*domain.Facility]("facility", "nama", gw.Facilities, func() *domain.Facility { return &domain.Facility{} }, logger),
			"attractions": handlers.NewResourceHandler[*domain.Attraction]("attraction", "nama_atraksi", gw.Attractions, func() *domain.Attraction { return &domain.Attraction{} }, logger),
			"rides":       handlers.NewResourceHandler[*domain.Ride]("ride", "nama_wahana", gw.Rides, func() *domain.Ride { return &domain.Ride{} }, logger),
		},
	}

	logger.Info("all dependencies initialized successfully", slog.Bool("task_queue", tasks != nil))
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, deps.handlers)

	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.Logger(logger),
		middleware.CORS(cfg.Security.AllowedOrigins),
		middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration),
		middleware.Timeout(cfg.Server.WriteTimeout),
	}
	if cfg.Security.SecureHeaders {
		chain = append(chain, middleware.SecureHeaders)
	}

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, chain...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	return db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
	}, logger, 3)
}
