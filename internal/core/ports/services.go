// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/ammerola/sizopi-be/internal/core/domain"
)

// AccountService defines login and profile operations
type AccountService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Profile(ctx context.Context, username string) (*domain.Account, error)
	Role(ctx context.Context, username string) (domain.Role, error)
	Register(ctx context.Context, account *domain.Account, visitor *domain.Visitor) (*domain.Session, error)
}

// ReservationService defines ticket booking operations
type ReservationService interface {
	Book(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	Reschedule(ctx context.Context, username, facility, visitDate string, patch domain.Patch) (*domain.Reservation, error)
	Cancel(ctx context.Context, username, facility, visitDate string) (*domain.Reservation, error)
	ListForVisitor(ctx context.Context, username string) ([]*domain.Reservation, error)
	Remaining(ctx context.Context, facility, visitDate string) (int, error)
}

// CareService defines feeding, health schedule and medical record
// operations. Health writes return the trigger notices alongside the row.
type CareService interface {
	Feedings(ctx context.Context, animalID string) ([]domain.FeedingWithCaretaker, error)
	ScheduleFeeding(ctx context.Context, f *domain.Feeding) (*domain.Feeding, error)
	UpdateFeeding(ctx context.Context, animalID, schedule string, patch domain.Patch) (*domain.Feeding, error)
	CancelFeedings(ctx context.Context, animalID string) ([]*domain.Feeding, error)
	DeleteFeeding(ctx context.Context, animalID, schedule string) (*domain.Feeding, error)

	ExamSchedules(ctx context.Context, animalID string) ([]*domain.ExamSchedule, error)
	AddExamSchedule(ctx context.Context, s *domain.ExamSchedule) (*domain.ExamSchedule, []string, error)
	UpdateExamSchedule(ctx context.Context, animalID, date string, patch domain.Patch) (*domain.ExamSchedule, []string, error)
	DeleteExamSchedule(ctx context.Context, animalID, date string) (*domain.ExamSchedule, error)

	MedicalRecords(ctx context.Context, animalID string) ([]*domain.MedicalRecord, error)
	AddMedicalRecord(ctx context.Context, record *domain.MedicalRecord) (*domain.MedicalRecord, []string, error)
	UpdateMedicalRecord(ctx context.Context, animalID, date string, patch domain.Patch) (*domain.MedicalRecord, []string, error)
	DeleteMedicalRecord(ctx context.Context, animalID, date string) (*domain.MedicalRecord, error)
}

// AdopterService defines adopter reporting operations
type AdopterService interface {
	TopAdopters(ctx context.Context, n int) ([]domain.TopAdopter, error)
	Details(ctx context.Context, id string) (*domain.AdopterDetails, error)
	Adopt(ctx context.Context, adoption *domain.Adoption) (*domain.Adoption, error)
	BuildReport(ctx context.Context, n int) ([]byte, error)
	PublishReport(ctx context.Context, n int) (string, error)
}

// TaskQueue enqueues background work for the worker process
type TaskQueue interface {
	EnqueueAdopterReport(ctx context.Context, n int) (string, error)
	EnqueueReservationCompletion(ctx context.Context) (string, error)
}
