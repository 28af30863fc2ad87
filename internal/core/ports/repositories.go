// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/ammerola/sizopi-be/internal/core/domain"
)

// Store is the generic table gateway surface used by the CRUD handlers.
// Single-row lookups return nil when nothing matches.
type Store[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindAllWithPagination(ctx context.Context, limit, page int) ([]T, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, rec T) (T, error)
	FindBy(ctx context.Context, column string, value any) (T, error)
	Update(ctx context.Context, column string, value any, patch domain.Patch) (T, error)
	Delete(ctx context.Context, column string, value any) (T, error)
}

// AccountRepository defines the persistence port for accounts
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateByUsername(ctx context.Context, username string, patch domain.Patch) (*domain.Account, error)
	VerifyPassword(ctx context.Context, username, candidate string) (bool, error)
	GetRole(ctx context.Context, username string) (domain.Role, error)
	RegisterVisitor(ctx context.Context, account *domain.Account, visitor *domain.Visitor) (*domain.Account, error)
}

// ReservationRepository defines the persistence port for ticket reservations
type ReservationRepository interface {
	CreateWithCapacityCheck(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	UpdateWithCapacityCheck(ctx context.Context, patch domain.Patch, username, facility string, visitDate any) (*domain.Reservation, error)
	Cancel(ctx context.Context, username, facility string, visitDate any) (*domain.Reservation, error)
	FindByVisitor(ctx context.Context, username string) ([]*domain.Reservation, error)
	RemainingCapacity(ctx context.Context, facility string, visitDate any) (int, error)
	CompletePast(ctx context.Context, before time.Time) (int64, error)
}

// AdopterRepository defines the read port for adopter reporting
type AdopterRepository interface {
	TopAdopters(ctx context.Context, n int) ([]domain.TopAdopter, error)
	GetAdopterWithDetails(ctx context.Context, id any) (*domain.AdopterDetails, error)
}

// AdoptionRepository defines the read port for adoption listings
type AdoptionRepository interface {
	Create(ctx context.Context, a *domain.Adoption) (*domain.Adoption, error)
	ListAll(ctx context.Context) ([]*domain.Adoption, error)
	FindByAnimal(ctx context.Context, animalID any) ([]*domain.Adoption, error)
}

// FeedingRepository defines the persistence port for feeding schedules.
// Key arguments accept any form the composite key normalizer understands.
type FeedingRepository interface {
	FindWithCaretaker(ctx context.Context, animalID any) ([]domain.FeedingWithCaretaker, error)
	CreateWithCompositeCheck(ctx context.Context, rec *domain.Feeding) (*domain.Feeding, error)
	UpdateByPrimaryKey(ctx context.Context, animalID, schedule any, patch domain.Patch) (*domain.Feeding, error)
	UpdateMultiple(ctx context.Context, where domain.Where, patch domain.Patch) ([]*domain.Feeding, error)
	DeleteByPrimaryKey(ctx context.Context, animalID, schedule any) (*domain.Feeding, error)
}

// ExamScheduleRepository defines the persistence port for health check
// schedules. Writes report the NOTICE messages raised by triggers.
type ExamScheduleRepository interface {
	FindByAnimal(ctx context.Context, animalID any) ([]*domain.ExamSchedule, error)
	CreateWithNotices(ctx context.Context, rec *domain.ExamSchedule) (*domain.ExamSchedule, []string, error)
	UpdateWithNotices(ctx context.Context, patch domain.Patch, key ...any) (*domain.ExamSchedule, []string, error)
	DeleteByPrimaryKey(ctx context.Context, animalID, date any) (*domain.ExamSchedule, error)
}

// MedicalRecordRepository defines the persistence port for medical records
type MedicalRecordRepository interface {
	FindByAnimal(ctx context.Context, animalID any) ([]*domain.MedicalRecord, error)
	CreateWithNotices(ctx context.Context, rec *domain.MedicalRecord) (*domain.MedicalRecord, []string, error)
	UpdateWithNotices(ctx context.Context, patch domain.Patch, key ...any) (*domain.MedicalRecord, []string, error)
	DeleteByPrimaryKey(ctx context.Context, animalID, date any) (*domain.MedicalRecord, error)
}
