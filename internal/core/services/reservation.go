// internal/core/services/reservation.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
)

// reschedulable lists the reservation columns a visitor may change
var reschedulable = map[string]struct{}{
	"nama_fasilitas":    {},
	"tanggal_kunjungan": {},
	"jumlah_tiket":      {},
	"status":            {},
}

// ReservationService handles ticket bookings
type ReservationService struct {
	repo   ports.ReservationRepository
	logger *slog.Logger
}

var _ ports.ReservationService = (*ReservationService)(nil)

// NewReservationService creates a new reservation service
func NewReservationService(repo ports.ReservationRepository, logger *slog.Logger) *ReservationService {
	return &ReservationService{
		repo:   repo,
		logger: logger.With(slog.String("service", "reservation")),
	}
}

// Book validates and stores a reservation if the facility has room
func (s *ReservationService) Book(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if err := res.Validate(); err != nil {
		return nil, domain.NewError(domain.KindValidation, "book", "%v", err)
	}

	created, err := s.repo.CreateWithCapacityCheck(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("failed to book %s: %w", res.FacilityName, err)
	}

	s.logger.InfoContext(ctx, "reservation booked",
		slog.String("username", created.VisitorUsername),
		slog.String("facility", created.FacilityName),
		slog.Int("tickets", created.Tickets),
	)
	return created, nil
}

// Reschedule applies patch to the reservation, re-checking capacity
func (s *ReservationService) Reschedule(ctx context.Context, username, facility, visitDate string, patch domain.Patch) (*domain.Reservation, error) {
	for col := range patch {
		if _, ok := reschedulable[col]; !ok {
			return nil, domain.NewError(domain.KindValidation, "reschedule", "column %q cannot be changed", col)
		}
	}
	if status, ok := patch["status"].(string); ok && !knownStatus(status) {
		return nil, domain.NewError(domain.KindValidation, "reschedule", "unknown status %q", status)
	}

	updated, err := s.repo.UpdateWithCapacityCheck(ctx, patch, username, facility, visitDate)
	if err != nil {
		return nil, fmt.Errorf("failed to reschedule: %w", err)
	}
	if updated == nil {
		return nil, reservationNotFound("reschedule", username, facility, visitDate)
	}
	return updated, nil
}

// Cancel marks the reservation cancelled
func (s *ReservationService) Cancel(ctx context.Context, username, facility, visitDate string) (*domain.Reservation, error) {
	cancelled, err := s.repo.Cancel(ctx, username, facility, visitDate)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel: %w", err)
	}
	if cancelled == nil {
		return nil, reservationNotFound("cancel", username, facility, visitDate)
	}

	s.logger.InfoContext(ctx, "reservation cancelled",
		slog.String("username", username),
		slog.String("facility", facility),
	)
	return cancelled, nil
}

// ListForVisitor returns the visitor's reservations
func (s *ReservationService) ListForVisitor(ctx context.Context, username string) ([]*domain.Reservation, error) {
	return s.repo.FindByVisitor(ctx, username)
}

// Remaining returns the tickets still available for a facility on a date
func (s *ReservationService) Remaining(ctx context.Context, facility, visitDate string) (int, error) {
	if strings.TrimSpace(facility) == "" {
		return 0, domain.NewError(domain.KindValidation, "remaining", "facility is required")
	}
	return s.repo.RemainingCapacity(ctx, facility, visitDate)
}

func knownStatus(status string) bool {
	switch status {
	case domain.ReservationScheduled, domain.ReservationCancelled,
		domain.ReservationActive, domain.ReservationVoided, domain.ReservationDone:
		return true
	}
	return false
}

func reservationNotFound(op, username, facility, visitDate string) error {
	return domain.NewError(domain.KindNotFound, op, "no reservation for %s at %s on %s", username, facility, visitDate)
}
