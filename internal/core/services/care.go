// internal/core/services/care.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
)

// CareService handles feeding schedules, health check schedules and
// medical records
type CareService struct {
	feedings ports.FeedingRepository
	exams    ports.ExamScheduleRepository
	records  ports.MedicalRecordRepository
	logger   *slog.Logger
}

var _ ports.CareService = (*CareService)(nil)

// NewCareService creates a new care service
func NewCareService(feedings ports.FeedingRepository, exams ports.ExamScheduleRepository, records ports.MedicalRecordRepository, logger *slog.Logger) *CareService {
	return &CareService{
		feedings: feedings,
		exams:    exams,
		records:  records,
		logger:   logger.With(slog.String("service", "care")),
	}
}

// Feedings returns the animal's feedings with caretaker names, newest first
func (s *CareService) Feedings(ctx context.Context, animalID string) ([]domain.FeedingWithCaretaker, error) {
	return s.feedings.FindWithCaretaker(ctx, animalID)
}

// ScheduleFeeding stores a new feeding unless one exists at the same time
func (s *CareService) ScheduleFeeding(ctx context.Context, f *domain.Feeding) (*domain.Feeding, error) {
	if err := f.Validate(); err != nil {
		return nil, domain.NewError(domain.KindValidation, "scheduleFeeding", "%v", err)
	}

	created, err := s.feedings.CreateWithCompositeCheck(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule feeding: %w", err)
	}
	return created, nil
}

// UpdateFeeding patches one feeding
func (s *CareService) UpdateFeeding(ctx context.Context, animalID, schedule string, patch domain.Patch) (*domain.Feeding, error) {
	updated, err := s.feedings.UpdateByPrimaryKey(ctx, animalID, schedule, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update feeding: %w", err)
	}
	if updated == nil {
		return nil, domain.NewError(domain.KindNotFound, "updateFeeding", "no feeding for %s at %s", animalID, schedule)
	}
	return updated, nil
}

// CancelFeedings cancels every still-scheduled feeding of the animal
func (s *CareService) CancelFeedings(ctx context.Context, animalID string) ([]*domain.Feeding, error) {
	cancelled, err := s.feedings.UpdateMultiple(ctx,
		domain.Where{"id_hewan": animalID, "status": domain.FeedingScheduled},
		domain.Patch{"status": domain.FeedingCancelled},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel feedings: %w", err)
	}

	s.logger.InfoContext(ctx, "feedings cancelled",
		slog.String("animal_id", animalID),
		slog.Int("count", len(cancelled)),
	)
	return cancelled, nil
}

// DeleteFeeding removes one feeding
func (s *CareService) DeleteFeeding(ctx context.Context, animalID, schedule string) (*domain.Feeding, error) {
	deleted, err := s.feedings.DeleteByPrimaryKey(ctx, animalID, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to delete feeding: %w", err)
	}
	if deleted == nil {
		return nil, domain.NewError(domain.KindNotFound, "deleteFeeding", "no feeding for %s at %s", animalID, schedule)
	}
	return deleted, nil
}

// ExamSchedules returns the animal's upcoming health checks
func (s *CareService) ExamSchedules(ctx context.Context, animalID string) ([]*domain.ExamSchedule, error) {
	return s.exams.FindByAnimal(ctx, animalID)
}

// AddExamSchedule stores a health check date and returns the notices the
// frequency trigger raised
func (s *CareService) AddExamSchedule(ctx context.Context, es *domain.ExamSchedule) (*domain.ExamSchedule, []string, error) {
	if err := es.Validate(); err != nil {
		return nil, nil, domain.NewError(domain.KindValidation, "addExamSchedule", "%v", err)
	}

	created, notices, err := s.exams.CreateWithNotices(ctx, es)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add exam schedule: %w", err)
	}
	s.logNotices(ctx, "jadwal_pemeriksaan_kesehatan", notices)
	return created, notices, nil
}

// UpdateExamSchedule patches a health check entry
func (s *CareService) UpdateExamSchedule(ctx context.Context, animalID, date string, patch domain.Patch) (*domain.ExamSchedule, []string, error) {
	updated, notices, err := s.exams.UpdateWithNotices(ctx, patch, animalID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update exam schedule: %w", err)
	}
	if updated == nil {
		return nil, nil, domain.NewError(domain.KindNotFound, "updateExamSchedule", "no exam for %s on %s", animalID, date)
	}
	s.logNotices(ctx, "jadwal_pemeriksaan_kesehatan", notices)
	return updated, notices, nil
}

// DeleteExamSchedule removes a health check entry
func (s *CareService) DeleteExamSchedule(ctx context.Context, animalID, date string) (*domain.ExamSchedule, error) {
	deleted, err := s.exams.DeleteByPrimaryKey(ctx, animalID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to delete exam schedule: %w", err)
	}
	if deleted == nil {
		return nil, domain.NewError(domain.KindNotFound, "deleteExamSchedule", "no exam for %s on %s", animalID, date)
	}
	return deleted, nil
}

// MedicalRecords returns the animal's records, newest first
func (s *CareService) MedicalRecords(ctx context.Context, animalID string) ([]*domain.MedicalRecord, error) {
	return s.records.FindByAnimal(ctx, animalID)
}

// AddMedicalRecord stores a record. A sick diagnosis makes the database
// update the animal's health status and raise a notice.
func (s *CareService) AddMedicalRecord(ctx context.Context, m *domain.MedicalRecord) (*domain.MedicalRecord, []string, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, domain.NewError(domain.KindValidation, "addMedicalRecord", "%v", err)
	}

	created, notices, err := s.records.CreateWithNotices(ctx, m)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add medical record: %w", err)
	}
	s.logNotices(ctx, "catatan_medis", notices)
	return created, notices, nil
}

// UpdateMedicalRecord patches a record
func (s *CareService) UpdateMedicalRecord(ctx context.Context, animalID, date string, patch domain.Patch) (*domain.MedicalRecord, []string, error) {
	updated, notices, err := s.records.UpdateWithNotices(ctx, patch, animalID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update medical record: %w", err)
	}
	if updated == nil {
		return nil, nil, domain.NewError(domain.KindNotFound, "updateMedicalRecord", "no record for %s on %s", animalID, date)
	}
	s.logNotices(ctx, "catatan_medis", notices)
	return updated, notices, nil
}

// DeleteMedicalRecord removes a record
func (s *CareService) DeleteMedicalRecord(ctx context.Context, animalID, date string) (*domain.MedicalRecord, error) {
	deleted, err := s.records.DeleteByPrimaryKey(ctx, animalID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to delete medical record: %w", err)
	}
	if deleted == nil {
		return nil, domain.NewError(domain.KindNotFound, "deleteMedicalRecord", "no record for %s on %s", animalID, date)
	}
	return deleted, nil
}

func (s *CareService) logNotices(ctx context.Context, table string, notices []string) {
	for _, n := range notices {
		s.logger.InfoContext(ctx, "trigger notice",
			slog.String("table", table),
			slog.String("notice", n),
		)
	}
}
