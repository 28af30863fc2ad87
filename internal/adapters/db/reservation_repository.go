// internal/adapters/db/reservation_repository.go
package db

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

var reservationKey = compositekey.Shape{
	{Column: "username_p", Kind: compositekey.KindText},
	{Column: "nama_fasilitas", Kind: compositekey.KindText},
	{Column: "tanggal_kunjungan", Kind: compositekey.KindDate},
}

var holdingStatuses = []string{domain.ReservationScheduled, domain.ReservationActive}

// ReservationRepository is the gateway for reservasi. Writes that change
// how many tickets a facility holds lock the facility row first, so
// concurrent bookings for the same facility serialize.
type ReservationRepository struct {
	*CompositeRepository[*domain.Reservation]
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(database *Database, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		CompositeRepository: NewCompositeRepository(database, "reservasi", reservationKey, func() *domain.Reservation { return &domain.Reservation{} }, logger),
	}
}

// lockFacility takes a row lock on the facility and returns its capacity
func lockFacility(ctx context.Context, tx *sql.Tx, op, facility string) (int, error) {
	var capacity int
	err := tx.QueryRowContext(ctx, "SELECT kapasitas_max FROM fasilitas WHERE nama = $1 FOR UPDATE", facility).Scan(&capacity)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.NewError(domain.KindNotFound, op, "facility %q not found", facility)
		}
		return 0, classify(op, err)
	}
	return capacity, nil
}

// bookedTickets sums the tickets held for a facility on a date, skipping
// the reservation of exclude when it is non-empty
func bookedTickets(ctx context.Context, q querier, op, facility string, date time.Time, exclude string) (int, error) {
	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("COALESCE(SUM(jumlah_tiket), 0)").
		From("reservasi").
		Where(squirrel.Eq{
			"nama_fasilitas":    facility,
			"tanggal_kunjungan": date,
			"status":            holdingStatuses,
		})
	if exclude != "" {
		qb = qb.Where(squirrel.NotEq{"username_p": exclude})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return 0, err
	}

	var booked int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&booked); err != nil {
		return 0, classify(op, err)
	}
	return booked, nil
}

// CreateWithCapacityCheck inserts the reservation if the facility has room
// for its tickets on that date, failing with KindCapacityExceeded otherwise
func (r *ReservationRepository) CreateWithCapacityCheck(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	op := r.op("createWithCapacityCheck")
	if res.Tickets <= 0 {
		return nil, validationError(op, "jumlah_tiket must be positive")
	}
	if res.Status == "" {
		res.Status = domain.ReservationActive
	}

	key, values, err := r.keyOf(res)
	if err != nil {
		return nil, err
	}
	visitDate := key.Values()[2].(time.Time)

	var created *domain.Reservation
	err = r.database.Transaction(ctx, func(tx *sql.Tx) error {
		capacity, err := lockFacility(ctx, tx, op, res.FacilityName)
		if err != nil {
			return err
		}

		if domain.HoldsCapacity(res.Status) {
			booked, err := bookedTickets(ctx, tx, op, res.FacilityName, visitDate, "")
			if err != nil {
				return err
			}
			if booked+res.Tickets > capacity {
				return domain.NewError(domain.KindCapacityExceeded, op,
					"facility %q has %d of %d tickets left", res.FacilityName, capacity-booked, capacity)
			}
		}

		created, err = r.WithTx(tx).insert(ctx, values)
		return err
	})
	if err != nil {
		r.logger.WarnContext(ctx, "reservation rejected",
			slog.String("facility", res.FacilityName),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateWithCapacityCheck patches a reservation, re-checking capacity when
// the result still holds tickets. Returns nil when the key matches nothing.
func (r *ReservationRepository) UpdateWithCapacityCheck(ctx context.Context, patch Patch, username, facility string, visitDate any) (*domain.Reservation, error) {
	op := r.op("updateWithCapacityCheck")

	key, err := r.NormalizeKey(username, facility, visitDate)
	if err != nil {
		return nil, err
	}
	patch, err = r.normalizePatch(patch)
	if err != nil {
		return nil, err
	}
	if err := r.checkPatch(op, patch); err != nil {
		return nil, err
	}

	var updated *domain.Reservation
	err = r.database.Transaction(ctx, func(tx *sql.Tx) error {
		repo := r.WithTx(tx)

		current, err := repo.FindByKey(ctx, key.Values()...)
		if err != nil || current == nil {
			return err
		}

		next := *current
		if v, ok := patch["nama_fasilitas"].(string); ok {
			next.FacilityName = v
		}
		if v, ok := patch["tanggal_kunjungan"].(time.Time); ok {
			next.VisitDate = v
		}
		if v, ok := patch["status"].(string); ok {
			next.Status = v
		}
		if v, ok := toInt(patch["jumlah_tiket"]); ok {
			next.Tickets = v
		}
		if next.Tickets <= 0 {
			return validationError(op, "jumlah_tiket must be positive")
		}

		capacity, err := lockFacility(ctx, tx, op, next.FacilityName)
		if err != nil {
			return err
		}

		if next.Holds() {
			booked, err := bookedTickets(ctx, tx, op, next.FacilityName, next.VisitDate, username)
			if err != nil {
				return err
			}
			if booked+next.Tickets > capacity {
				return domain.NewError(domain.KindCapacityExceeded, op,
					"facility %q has %d of %d tickets left", next.FacilityName, capacity-booked, capacity)
			}
		}

		updated, err = repo.UpdateByKey(ctx, patch, key.Values()...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Cancel marks the reservation cancelled and returns it, or nil. Staff
// bookings (Terjadwal) become Dibatalkan; visitor bookings become Batal.
func (r *ReservationRepository) Cancel(ctx context.Context, username, facility string, visitDate any) (*domain.Reservation, error) {
	status := squirrel.Expr("CASE WHEN status = ? THEN ? ELSE ? END",
		domain.ReservationScheduled, domain.ReservationCancelled, domain.ReservationVoided)
	return r.UpdateByKey(ctx, Patch{"status": status}, username, facility, visitDate)
}

// FindByVisitor returns the visitor's reservations
func (r *ReservationRepository) FindByVisitor(ctx context.Context, username string) ([]*domain.Reservation, error) {
	return r.FindMany(ctx, "username_p", username)
}

// FindByFacilityAndDate returns reservations for a facility on a date
func (r *ReservationRepository) FindByFacilityAndDate(ctx context.Context, facility string, visitDate any) ([]*domain.Reservation, error) {
	date, err := compositekey.Shape{reservationKey[2]}.Normalize(visitDate)
	if err != nil {
		return nil, validationError(r.op("findByFacilityAndDate"), "%v", err)
	}
	return r.FindWhere(ctx, Where{"nama_fasilitas": facility, "tanggal_kunjungan": date.Values()[0]})
}

// RemainingCapacity returns how many tickets are still available for a
// facility on a date
func (r *ReservationRepository) RemainingCapacity(ctx context.Context, facility string, visitDate any) (int, error) {
	op := r.op("remainingCapacity")

	date, err := compositekey.Shape{reservationKey[2]}.Normalize(visitDate)
	if err != nil {
		return 0, validationError(op, "%v", err)
	}

	var capacity int
	err = r.db.QueryRowContext(ctx, "SELECT kapasitas_max FROM fasilitas WHERE nama = $1", facility).Scan(&capacity)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.NewError(domain.KindNotFound, op, "facility %q not found", facility)
		}
		return 0, r.fail(ctx, op, err)
	}

	booked, err := bookedTickets(ctx, r.db, op, facility, date.Values()[0].(time.Time), "")
	if err != nil {
		return 0, err
	}

	remaining := capacity - booked
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// CompletePast marks reservations that still hold tickets for a visit date
// before the given day as done, returning how many changed
func (r *ReservationRepository) CompletePast(ctx context.Context, before time.Time) (int64, error) {
	op := r.op("completePast")

	query, args, err := r.builder().
		Update("reservasi").
		Set("status", domain.ReservationDone).
		Where(squirrel.Lt{"tanggal_kunjungan": before}).
		Where(squirrel.Eq{"status": holdingStatuses}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.fail(ctx, op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, r.fail(ctx, op, err)
	}

	r.logger.InfoContext(ctx, "past reservations completed", slog.Int64("count", n))
	return n, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
