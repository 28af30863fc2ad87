// internal/workers/processors.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
)

// ReservationProcessor marks reservations whose visit date has passed as done
type ReservationProcessor struct {
	repo   ports.ReservationRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewReservationProcessor creates a new reservation processor
func NewReservationProcessor(repo ports.ReservationRepository, logger *slog.Logger) *ReservationProcessor {
	return &ReservationProcessor{
		repo:   repo,
		logger: logger.With(slog.String("processor", "reservation")),
		now:    time.Now,
	}
}

// CompletePast handles reservation:complete
func (p *ReservationProcessor) CompletePast(ctx context.Context, t *asynq.Task) error {
	var payload ReservationCompletePayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	before := payload.Before
	if before.IsZero() {
		before = p.now().UTC().Truncate(24 * time.Hour)
	}

	n, err := p.repo.CompletePast(ctx, before)
	if err != nil {
		return fmt.Errorf("failed to complete reservations: %w", err)
	}

	p.logger.InfoContext(ctx, "reservations completed",
		slog.Time("before", before),
		slog.Int64("count", n))
	return nil
}

// ReportProcessor publishes adopter workbooks to object storage
type ReportProcessor struct {
	service    ports.AdopterService
	defaultTop int
	logger     *slog.Logger
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(service ports.AdopterService, defaultTop int, logger *slog.Logger) *ReportProcessor {
	return &ReportProcessor{
		service:    service,
		defaultTop: defaultTop,
		logger:     logger.With(slog.String("processor", "report")),
	}
}

// PublishAdopterReport handles report:adopters
func (p *ReportProcessor) PublishAdopterReport(ctx context.Context, t *asynq.Task) error {
	var payload AdopterReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.N == 0 {
		payload.N = p.defaultTop
	}

	start := time.Now()
	location, err := p.service.PublishReport(ctx, payload.N)
	if err != nil {
		if domain.KindOf(err) == domain.KindValidation {
			return fmt.Errorf("report rejected: %v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to publish report: %w", err)
	}

	p.logger.InfoContext(ctx, "adopter report published",
		slog.String("location", location),
		slog.Int("n", payload.N),
		slog.Duration("elapsed", time.Since(start)))

	if w := t.ResultWriter(); w != nil {
		if _, err := w.Write([]byte(location)); err != nil {
			p.logger.WarnContext(ctx, "failed to write task result", slog.String("error", err.Error()))
		}
	}
	return nil
}
