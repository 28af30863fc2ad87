// internal/adapters/db/care_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

var (
	feedingKey = compositekey.Shape{
		{Column: "id_hewan", Kind: compositekey.KindUUID},
		{Column: "jadwal", Kind: compositekey.KindTimestamp},
	}
	examScheduleKey = compositekey.Shape{
		{Column: "id_hewan", Kind: compositekey.KindUUID},
		{Column: "tgl_pemeriksaan_selanjutnya", Kind: compositekey.KindDate},
	}
	medicalRecordKey = compositekey.Shape{
		{Column: "id_hewan", Kind: compositekey.KindUUID},
		{Column: "tanggal_pemeriksaan", Kind: compositekey.KindDate},
	}
)

// FeedingRepository is the gateway for pakan, keyed by (id_hewan, jadwal)
type FeedingRepository struct {
	*CompositeRepository[*domain.Feeding]
}

// NewFeedingRepository creates a new feeding repository
func NewFeedingRepository(database *Database, logger *slog.Logger) *FeedingRepository {
	return &FeedingRepository{
		CompositeRepository: NewCompositeRepository(database, "pakan", feedingKey, func() *domain.Feeding { return &domain.Feeding{} }, logger),
	}
}

// FindByPrimaryKey returns the feeding for the animal at the given schedule, or nil
func (r *FeedingRepository) FindByPrimaryKey(ctx context.Context, animalID, schedule any) (*domain.Feeding, error) {
	return r.FindByKey(ctx, animalID, schedule)
}

// UpdateByPrimaryKey patches the feeding and returns it, or nil
func (r *FeedingRepository) UpdateByPrimaryKey(ctx context.Context, animalID, schedule any, patch Patch) (*domain.Feeding, error) {
	return r.UpdateByKey(ctx, patch, animalID, schedule)
}

// DeleteByPrimaryKey removes the feeding and returns it, or nil
func (r *FeedingRepository) DeleteByPrimaryKey(ctx context.Context, animalID, schedule any) (*domain.Feeding, error) {
	return r.DeleteByKey(ctx, animalID, schedule)
}

// FindByAnimal returns every feeding for the animal
func (r *FeedingRepository) FindByAnimal(ctx context.Context, animalID any) ([]*domain.Feeding, error) {
	key, err := compositekey.Shape{feedingKey[0]}.Normalize(animalID)
	if err != nil {
		return nil, validationError(r.op("findByAnimal"), "%v", err)
	}
	return r.FindMany(ctx, "id_hewan", key.Values()[0])
}

// FindWithCaretaker returns the animal's feedings, newest first, each with
// the display name of the assigned caretaker
func (r *FeedingRepository) FindWithCaretaker(ctx context.Context, animalID any) ([]domain.FeedingWithCaretaker, error) {
	op := r.op("findWithCaretaker")

	key, err := compositekey.Shape{feedingKey[0]}.Normalize(animalID)
	if err != nil {
		return nil, validationError(op, "%v", err)
	}

	query := `
		SELECT p.id_hewan, p.jadwal, p.jenis, p.jumlah, p.status, p.username_jh,
			CASE WHEN u.username IS NULL THEN NULL
				ELSE CONCAT_WS(' ', u.nama_depan, u.nama_tengah, u.nama_belakang)
			END AS nama_penjaga
		FROM pakan p
		LEFT JOIN pengguna u ON u.username = p.username_jh
		WHERE p.id_hewan = $1
		ORDER BY p.jadwal DESC`

	rows, err := r.db.QueryContext(ctx, query, key.Values()[0])
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}
	defer rows.Close()

	var results []domain.FeedingWithCaretaker
	for rows.Next() {
		var f domain.FeedingWithCaretaker
		dest := append(f.Feeding.Pointers(), &f.CaretakerName)
		if err := rows.Scan(dest...); err != nil {
			return nil, r.fail(ctx, op, fmt.Errorf("failed to scan feeding: %w", err))
		}
		results = append(results, f)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, op, err)
	}

	return results, nil
}

// ExamScheduleRepository is the gateway for jadwal_pemeriksaan_kesehatan,
// keyed by (id_hewan, tgl_pemeriksaan_selanjutnya)
type ExamScheduleRepository struct {
	*CompositeRepository[*domain.ExamSchedule]
}

// NewExamScheduleRepository creates a new exam schedule repository
func NewExamScheduleRepository(database *Database, logger *slog.Logger) *ExamScheduleRepository {
	return &ExamScheduleRepository{
		CompositeRepository: NewCompositeRepository(database, "jadwal_pemeriksaan_kesehatan", examScheduleKey, func() *domain.ExamSchedule { return &domain.ExamSchedule{} }, logger),
	}
}

// FindByPrimaryKey returns the schedule entry, or nil
func (r *ExamScheduleRepository) FindByPrimaryKey(ctx context.Context, animalID, date any) (*domain.ExamSchedule, error) {
	return r.FindByKey(ctx, animalID, date)
}

// UpdateByPrimaryKey patches the schedule entry and returns it, or nil
func (r *ExamScheduleRepository) UpdateByPrimaryKey(ctx context.Context, animalID, date any, patch Patch) (*domain.ExamSchedule, error) {
	return r.UpdateByKey(ctx, patch, animalID, date)
}

// DeleteByPrimaryKey removes the schedule entry and returns it, or nil
func (r *ExamScheduleRepository) DeleteByPrimaryKey(ctx context.Context, animalID, date any) (*domain.ExamSchedule, error) {
	return r.DeleteByKey(ctx, animalID, date)
}

// FindByAnimal returns the animal's schedule, soonest first
func (r *ExamScheduleRepository) FindByAnimal(ctx context.Context, animalID any) ([]*domain.ExamSchedule, error) {
	key, err := compositekey.Shape{examScheduleKey[0]}.Normalize(animalID)
	if err != nil {
		return nil, validationError(r.op("findByAnimal"), "%v", err)
	}

	qb := r.selectAll().
		Where("id_hewan = ?", key.Values()[0]).
		OrderBy("tgl_pemeriksaan_selanjutnya")

	return r.queryMany(ctx, r.op("findByAnimal"), qb)
}

// MedicalRecordRepository is the gateway for catatan_medis, keyed by
// (id_hewan, tanggal_pemeriksaan)
type MedicalRecordRepository struct {
	*CompositeRepository[*domain.MedicalRecord]
}

// NewMedicalRecordRepository creates a new medical record repository
func NewMedicalRecordRepository(database *Database, logger *slog.Logger) *MedicalRecordRepository {
	return &MedicalRecordRepository{
		CompositeRepository: NewCompositeRepository(database, "catatan_medis", medicalRecordKey, func() *domain.MedicalRecord { return &domain.MedicalRecord{} }, logger),
	}
}

// FindByPrimaryKey returns the record, or nil
func (r *MedicalRecordRepository) FindByPrimaryKey(ctx context.Context, animalID, date any) (*domain.MedicalRecord, error) {
	return r.FindByKey(ctx, animalID, date)
}

// DeleteByPrimaryKey removes the record and returns it, or nil
func (r *MedicalRecordRepository) DeleteByPrimaryKey(ctx context.Context, animalID, date any) (*domain.MedicalRecord, error) {
	return r.DeleteByKey(ctx, animalID, date)
}

// FindByVeterinarian returns the records written by the veterinarian
func (r *MedicalRecordRepository) FindByVeterinarian(ctx context.Context, username string) ([]*domain.MedicalRecord, error) {
	return r.FindMany(ctx, "username_dh", username)
}

// FindByAnimal returns the animal's records, newest first
func (r *MedicalRecordRepository) FindByAnimal(ctx context.Context, animalID any) ([]*domain.MedicalRecord, error) {
	key, err := compositekey.Shape{medicalRecordKey[0]}.Normalize(animalID)
	if err != nil {
		return nil, validationError(r.op("findByAnimal"), "%v", err)
	}

	qb := r.selectAll().
		Where("id_hewan = ?", key.Values()[0]).
		OrderBy("tanggal_pemeriksaan DESC")

	return r.queryMany(ctx, r.op("findByAnimal"), qb)
}
