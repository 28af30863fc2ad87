// internal/handlers/reservation.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

// ReservationHandler handles ticket bookings
type ReservationHandler struct {
	service ports.ReservationService
	logger  *slog.Logger
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(service ports.ReservationService, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "reservation")),
	}
}

// ReservationRequest is the body of POST /reservations. The visit date
// accepts "2006-01-02" as well as full timestamps.
type ReservationRequest struct {
	VisitorUsername string `json:"username_p"`
	FacilityName    string `json:"nama_fasilitas"`
	VisitDate       string `json:"tanggal_kunjungan"`
	Tickets         int    `json:"jumlah_tiket"`
	Status          string `json:"status,omitempty"`
}

// ToDomain converts the request to a reservation row
func (req *ReservationRequest) ToDomain() (*domain.Reservation, error) {
	date, err := compositekey.ParseDate(req.VisitDate)
	if err != nil {
		return nil, domain.NewError(domain.KindValidation, "reservation", "tanggal_kunjungan: %v", err)
	}
	return &domain.Reservation{
		VisitorUsername: req.VisitorUsername,
		FacilityName:    req.FacilityName,
		VisitDate:       date,
		Tickets:         req.Tickets,
		Status:          req.Status,
	}, nil
}

// Book handles POST /api/v1/reservations
func (h *ReservationHandler) Book(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReservationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondFailure(ctx, h.logger, w, "invalid reservation body", err)
		return
	}
	res, err := req.ToDomain()
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid reservation", err)
		return
	}

	created, err := h.service.Book(ctx, res)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to book", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusCreated, created)
}

// Reschedule handles PATCH /api/v1/reservations/{username}/{facility}/{date}
func (h *ReservationHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patch, err := decodePatch(w, r)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid patch", err)
		return
	}

	updated, err := h.service.Reschedule(ctx, r.PathValue("username"), r.PathValue("facility"), r.PathValue("date"), patch)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to reschedule", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, updated)
}

// Cancel handles DELETE /api/v1/reservations/{username}/{facility}/{date}.
// The row is kept with a cancelled status.
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cancelled, err := h.service.Cancel(ctx, r.PathValue("username"), r.PathValue("facility"), r.PathValue("date"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to cancel", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, cancelled)
}

// ListForVisitor handles GET /api/v1/users/{username}/reservations
func (h *ReservationHandler) ListForVisitor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := h.service.ListForVisitor(ctx, r.PathValue("username"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to list reservations", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, rows)
}

// Remaining handles GET /api/v1/facilities/{name}/remaining?date=
func (h *ReservationHandler) Remaining(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	facility := r.PathValue("name")
	date := r.URL.Query().Get("date")

	if date == "" {
		respondFailure(ctx, h.logger, w, "missing date", domain.NewError(domain.KindValidation, "remaining", "date is required"))
		return
	}

	left, err := h.service.Remaining(ctx, facility, date)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to compute remaining capacity", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, map[string]any{
		"nama_fasilitas":    facility,
		"tanggal_kunjungan": date,
		"remaining":         left,
	})
}
