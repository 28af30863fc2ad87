// internal/core/domain/reservation.go
package domain

import (
	"fmt"
	"time"
)

// Reservation statuses. Staff screens use Terjadwal/Dibatalkan, the visitor
// screens use Aktif/Batal/Selesai. Transitions between them are not enforced.
const (
	ReservationScheduled = "Terjadwal"
	ReservationCancelled = "Dibatalkan"
	ReservationActive    = "Aktif"
	ReservationVoided    = "Batal"
	ReservationDone      = "Selesai"
)

// Reservation is a row of reservasi, keyed by
// (username_p, nama_fasilitas, tanggal_kunjungan)
type Reservation struct {
	VisitorUsername string    `json:"username_p"`
	FacilityName    string    `json:"nama_fasilitas"`
	VisitDate       time.Time `json:"tanggal_kunjungan"`
	Tickets         int       `json:"jumlah_tiket"`
	Status          string    `json:"status"`
}

func (r *Reservation) Columns() []string {
	return []string{"username_p", "nama_fasilitas", "tanggal_kunjungan", "jumlah_tiket", "status"}
}

func (r *Reservation) Values() []any {
	return []any{r.VisitorUsername, r.FacilityName, r.VisitDate, r.Tickets, r.Status}
}

func (r *Reservation) Pointers() []any {
	return []any{&r.VisitorUsername, &r.FacilityName, &r.VisitDate, &r.Tickets, &r.Status}
}

// Holds reports whether the reservation still occupies capacity
func (r *Reservation) Holds() bool {
	return HoldsCapacity(r.Status)
}

// HoldsCapacity reports whether a reservation in the given status counts
// against facility capacity
func HoldsCapacity(status string) bool {
	return status == ReservationScheduled || status == ReservationActive
}

// Validate performs domain validation on the reservation
func (r *Reservation) Validate() error {
	if r.VisitorUsername == "" {
		return fmt.Errorf("username_p is required")
	}
	if r.FacilityName == "" {
		return fmt.Errorf("nama_fasilitas is required")
	}
	if r.VisitDate.IsZero() {
		return fmt.Errorf("tanggal_kunjungan is required")
	}
	if r.Tickets <= 0 {
		return fmt.Errorf("jumlah_tiket must be positive")
	}
	if r.Status == "" {
		r.Status = ReservationActive
	}
	return nil
}
