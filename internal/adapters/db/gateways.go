// internal/adapters/db/gateways.go
package db

import (
	"context"
	"log/slog"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

var (
	_ ports.Database                = (*Database)(nil)
	_ ports.AccountRepository       = (*AccountRepository)(nil)
	_ ports.ReservationRepository   = (*ReservationRepository)(nil)
	_ ports.AdopterRepository       = (*AdopterRepository)(nil)
	_ ports.AdoptionRepository      = (*AdoptionRepository)(nil)
	_ ports.FeedingRepository       = (*FeedingRepository)(nil)
	_ ports.ExamScheduleRepository  = (*ExamScheduleRepository)(nil)
	_ ports.MedicalRecordRepository = (*MedicalRecordRepository)(nil)
	_ ports.Store[*domain.Habitat]  = (*BaseRepository[*domain.Habitat])(nil)
)

// Gateways bundles every table gateway built on one Database
type Gateways struct {
	Accounts        *AccountRepository
	Visitors        *BaseRepository[*domain.Visitor]
	Veterinarians   *BaseRepository[*domain.Veterinarian]
	Specializations *CompositeRepository[*domain.Specialization]
	Trainers        *BaseRepository[*domain.Trainer]
	Caretakers      *BaseRepository[*domain.Caretaker]
	StaffAdmins     *StaffAdminRepository
	Habitats        *BaseRepository[*domain.Habitat]
	Animals         *BaseRepository[*domain.Animal]
	Facilities      *BaseRepository[*domain.Facility]
	Attractions     *BaseRepository[*domain.Attraction]
	Rides           *BaseRepository[*domain.Ride]
	Participations  *CompositeRepository[*domain.Participation]
	Feedings        *FeedingRepository
	ExamSchedules   *ExamScheduleRepository
	MedicalRecords  *MedicalRecordRepository
	Reservations    *ReservationRepository
	Adopters        *AdopterRepository
	Individuals     *BaseRepository[*domain.Individual]
	Organizations   *BaseRepository[*domain.Organization]
	Adoptions       *AdoptionRepository
}

// NewGateways builds every gateway over database
func NewGateways(database *Database, logger *slog.Logger) *Gateways {
	return &Gateways{
		Accounts:        NewAccountRepository(database, logger),
		Visitors:        NewRepository(database, "pengunjung", "username_p", func() *domain.Visitor { return &domain.Visitor{} }, logger),
		Veterinarians:   NewRepository(database, "dokter_hewan", "username_dh", func() *domain.Veterinarian { return &domain.Veterinarian{} }, logger),
		Specializations: NewCompositeRepository(database, "spesialisasi", specializationKey, func() *domain.Specialization { return &domain.Specialization{} }, logger),
		Trainers:        NewRepository(database, "pelatih_hewan", "username_lh", func() *domain.Trainer { return &domain.Trainer{} }, logger),
		Caretakers:      NewRepository(database, "penjaga_hewan", "username_jh", func() *domain.Caretaker { return &domain.Caretaker{} }, logger),
		StaffAdmins:     NewStaffAdminRepository(database, logger),
		Habitats:        NewRepository(database, "habitat", "nama", func() *domain.Habitat { return &domain.Habitat{} }, logger),
		Animals:         NewRepository(database, "hewan", "id", func() *domain.Animal { return &domain.Animal{} }, logger),
		Facilities:      NewRepository(database, "fasilitas", "nama", func() *domain.Facility { return &domain.Facility{} }, logger),
		Attractions:     NewRepository(database, "atraksi", "nama_atraksi", func() *domain.Attraction { return &domain.Attraction{} }, logger),
		Rides:           NewRepository(database, "wahana", "nama_wahana", func() *domain.Ride { return &domain.Ride{} }, logger),
		Participations:  NewCompositeRepository(database, "berpartisipasi", participationKey, func() *domain.Participation { return &domain.Participation{} }, logger),
		Feedings:        NewFeedingRepository(database, logger),
		ExamSchedules:   NewExamScheduleRepository(database, logger),
		MedicalRecords:  NewMedicalRecordRepository(database, logger),
		Reservations:    NewReservationRepository(database, logger),
		Adopters:        NewAdopterRepository(database, logger),
		Individuals:     NewRepository(database, "individu", "nik", func() *domain.Individual { return &domain.Individual{} }, logger),
		Organizations:   NewRepository(database, "organisasi", "npp", func() *domain.Organization { return &domain.Organization{} }, logger),
		Adoptions:       NewAdoptionRepository(database, logger),
	}
}

var (
	specializationKey = compositekey.Shape{
		{Column: "username_sh", Kind: compositekey.KindText},
		{Column: "nama_spesialisasi", Kind: compositekey.KindText},
	}
	participationKey = compositekey.Shape{
		{Column: "nama_fasilitas", Kind: compositekey.KindText},
		{Column: "id_hewan", Kind: compositekey.KindUUID},
	}
)

// StaffAdminRepository is the gateway for staf_admin
type StaffAdminRepository struct {
	*BaseRepository[*domain.StaffAdmin]
}

// NewStaffAdminRepository creates a new staff admin repository
func NewStaffAdminRepository(database *Database, logger *slog.Logger) *StaffAdminRepository {
	return &StaffAdminRepository{
		BaseRepository: NewRepository(database, "staf_admin", "username_sa", func() *domain.StaffAdmin { return &domain.StaffAdmin{} }, logger),
	}
}

// FindByUsername returns the admin row for username, or nil
func (r *StaffAdminRepository) FindByUsername(ctx context.Context, username string) (*domain.StaffAdmin, error) {
	return r.FindBy(ctx, "username_sa", username)
}

// UpdateByUsername patches the admin row and returns it, or nil
func (r *StaffAdminRepository) UpdateByUsername(ctx context.Context, username string, patch Patch) (*domain.StaffAdmin, error) {
	return r.Update(ctx, "username_sa", username, patch)
}
