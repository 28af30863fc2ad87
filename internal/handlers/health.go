// internal/handlers/health.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/sizopi-be/internal/core/ports"
)

// HealthHandler reports liveness and readiness of the API and the
// services it depends on
type HealthHandler struct {
	db          ports.Database
	redis       *redis.Client
	asynq       *asynq.Inspector
	version     string
	environment string
	logger      *slog.Logger
	startTime   time.Time
}

// NewHealthHandler creates a new health handler. redisClient and inspector
// may be nil when the API runs without a task queue.
func NewHealthHandler(database ports.Database, redisClient *redis.Client, inspector *asynq.Inspector, version, environment string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:          database,
		redis:       redisClient,
		asynq:       inspector,
		version:     version,
		environment: environment,
		logger:      logger.With(slog.String("handler", "health")),
		startTime:   time.Now(),
	}
}

// HealthStatus is the /health response body
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Services    map[string]ServiceInfo `json:"services"`
	System      SystemInfo             `json:"system"`
}

// ServiceInfo is the check result for one dependency
type ServiceInfo struct {
	Status       string         `json:"status"`
	Message      string         `json:"message,omitempty"`
	ResponseTime string         `json:"response_time,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
}

// SystemInfo is process-level runtime information
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	NumCPU        int    `json:"num_cpu"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
	NumGC         uint32 `json:"num_gc"`
}

type dependencyCheck func(ctx context.Context) ServiceInfo

func (h *HealthHandler) checks() map[string]dependencyCheck {
	p := map[string]dependencyCheck{"database": h.checkDatabase}
	if h.redis != nil {
		p["redis"] = h.checkRedis
	}
	if h.asynq != nil {
		p["asynq"] = h.checkAsynq
	}
	return p
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := HealthStatus{
		Status:      "healthy",
		Version:     h.version,
		Environment: h.environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now().UTC(),
		Services:    make(map[string]ServiceInfo),
		System:      systemInfo(),
	}

	for name, check := range h.checks() {
		info := check(ctx)
		health.Services[name] = info
		if info.Status != "healthy" {
			health.Status = "degraded"
		}
	}

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(ctx, h.logger, w, status, health)
}

// Readiness handles GET /ready
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := true
	details := make(map[string]string)

	if err := h.db.Ping(ctx); err != nil {
		ready = false
		details["database"] = "not ready"
	} else {
		details["database"] = "ready"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			ready = false
			details["redis"] = "not ready"
		} else {
			details["redis"] = "ready"
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(ctx, h.logger, w, status, map[string]any{
		"ready":   ready,
		"details": details,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) ServiceInfo {
	start := time.Now()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database health check failed", slog.String("error", err.Error()))
		return ServiceInfo{Status: "unhealthy", Message: err.Error()}
	}

	info := ServiceInfo{Status: "healthy", Details: h.db.Health(ctx)}
	if s, ok := info.Details["status"].(string); ok && s != "healthy" {
		info.Status = s
	}
	info.ResponseTime = time.Since(start).String()
	return info
}

func (h *HealthHandler) checkRedis(ctx context.Context) ServiceInfo {
	start := time.Now()

	pong, err := h.redis.Ping(ctx).Result()
	if err != nil {
		h.logger.ErrorContext(ctx, "redis health check failed", slog.String("error", err.Error()))
		return ServiceInfo{Status: "unhealthy", Message: err.Error()}
	}

	stats := h.redis.PoolStats()
	return ServiceInfo{
		Status:       "healthy",
		ResponseTime: time.Since(start).String(),
		Details: map[string]any{
			"ping":        pong,
			"total_conns": stats.TotalConns,
			"idle_conns":  stats.IdleConns,
		},
	}
}

func (h *HealthHandler) checkAsynq(ctx context.Context) ServiceInfo {
	start := time.Now()

	queues, err := h.asynq.Queues()
	if err != nil {
		h.logger.ErrorContext(ctx, "asynq health check failed", slog.String("error", err.Error()))
		return ServiceInfo{Status: "unhealthy", Message: err.Error()}
	}

	stats := make(map[string]any, len(queues))
	for _, queue := range queues {
		q, err := h.asynq.GetQueueInfo(queue)
		if err != nil {
			continue
		}
		stats[queue] = map[string]any{
			"size":     q.Size,
			"pending":  q.Pending,
			"active":   q.Active,
			"retry":    q.Retry,
			"archived": q.Archived,
		}
	}

	return ServiceInfo{
		Status:       "healthy",
		ResponseTime: time.Since(start).String(),
		Details:      map[string]any{"queues": stats},
	}
}

func systemInfo() SystemInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		MemoryAllocMB: mem.Alloc / 1024 / 1024,
		NumGC:         mem.NumGC,
	}
}
