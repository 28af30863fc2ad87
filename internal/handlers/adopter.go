// internal/handlers/adopter.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
)

// AdopterHandler serves the contribution leaderboard and adopter reports
type AdopterHandler struct {
	service    ports.AdopterService
	tasks      ports.TaskQueue
	defaultTop int
	logger     *slog.Logger
}

// NewAdopterHandler creates a new adopter handler. tasks may be nil, in
// which case report publishing is unavailable.
func NewAdopterHandler(service ports.AdopterService, tasks ports.TaskQueue, defaultTop int, logger *slog.Logger) *AdopterHandler {
	if defaultTop <= 0 {
		defaultTop = 5
	}
	return &AdopterHandler{
		service:    service,
		tasks:      tasks,
		defaultTop: defaultTop,
		logger:     logger.With(slog.String("handler", "adopter")),
	}
}

// Top handles GET /api/v1/adopters/top?n=
func (h *AdopterHandler) Top(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := queryInt(r, "n", h.defaultTop)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid n", err)
		return
	}

	top, err := h.service.TopAdopters(ctx, n)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to rank adopters", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, top)
}

// Details handles GET /api/v1/adopters/{id}
func (h *AdopterHandler) Details(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	details, err := h.service.Details(ctx, r.PathValue("id"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to load adopter", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, details)
}

// Adopt handles POST /api/v1/adoptions. Dates accept "2006-01-02".
func (h *AdopterHandler) Adopt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var adoption domain.Adoption
	if err := decodeJSON(w, r, &adoption); err != nil {
		respondFailure(ctx, h.logger, w, "invalid adoption body", err)
		return
	}

	created, err := h.service.Adopt(ctx, &adoption)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to record adoption", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusCreated, created)
}

// Report handles GET /api/v1/adopters/report.xlsx
func (h *AdopterHandler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := queryInt(r, "n", h.defaultTop)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid n", err)
		return
	}

	data, err := h.service.BuildReport(ctx, n)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to build report", err)
		return
	}

	filename := fmt.Sprintf("top_adopters_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write report", slog.String("error", err.Error()))
	}
}

// EnqueueReport handles POST /api/v1/adopters/report. The worker builds the
// workbook and uploads it to object storage.
func (h *AdopterHandler) EnqueueReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.tasks == nil {
		respondError(ctx, h.logger, w, http.StatusServiceUnavailable, "task queue unavailable")
		return
	}

	n, err := queryInt(r, "n", h.defaultTop)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid n", err)
		return
	}

	taskID, err := h.tasks.EnqueueAdopterReport(ctx, n)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to enqueue report", err)
		return
	}

	h.logger.InfoContext(ctx, "adopter report enqueued", slog.String("task_id", taskID), slog.Int("n", n))
	respondJSON(ctx, h.logger, w, http.StatusAccepted, map[string]any{
		"task_id": taskID,
		"status":  "queued",
	})
}
