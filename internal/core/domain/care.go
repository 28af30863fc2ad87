// internal/core/domain/care.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Feeding statuses
const (
	FeedingScheduled = "terjadwal"
	FeedingDone      = "selesai"
	FeedingCancelled = "dibatalkan"
)

// Feeding is a row of pakan, keyed by (id_hewan, jadwal)
type Feeding struct {
	AnimalID          uuid.UUID `json:"id_hewan"`
	Schedule          time.Time `json:"jadwal"`
	Type              string    `json:"jenis"`
	Amount            int       `json:"jumlah"`
	Status            string    `json:"status"`
	CaretakerUsername *string   `json:"username_jh,omitempty"`
}

func (f *Feeding) Columns() []string {
	return []string{"id_hewan", "jadwal", "jenis", "jumlah", "status", "username_jh"}
}

func (f *Feeding) Values() []any {
	return []any{f.AnimalID, f.Schedule, f.Type, f.Amount, f.Status, f.CaretakerUsername}
}

func (f *Feeding) Pointers() []any {
	return []any{&f.AnimalID, &f.Schedule, &f.Type, &f.Amount, &f.Status, &f.CaretakerUsername}
}

// Validate performs domain validation on the feeding schedule
func (f *Feeding) Validate() error {
	if f.AnimalID == uuid.Nil {
		return fmt.Errorf("id_hewan is required")
	}
	if f.Schedule.IsZero() {
		return fmt.Errorf("jadwal is required")
	}
	if f.Type == "" {
		return fmt.Errorf("jenis is required")
	}
	if f.Amount <= 0 {
		return fmt.Errorf("jumlah must be positive")
	}
	if f.Status == "" {
		f.Status = FeedingScheduled
	}
	return nil
}

// FeedingWithCaretaker is a feeding row joined with its caretaker's name
type FeedingWithCaretaker struct {
	Feeding
	CaretakerName *string `json:"nama_penjaga,omitempty"`
}

// ExamSchedule is a row of jadwal_pemeriksaan_kesehatan, keyed by
// (id_hewan, tgl_pemeriksaan_selanjutnya)
type ExamSchedule struct {
	AnimalID     uuid.UUID `json:"id_hewan"`
	NextExamDate time.Time `json:"tgl_pemeriksaan_selanjutnya"`
	FrequencyMo  int       `json:"freq_pemeriksaan_rutin"`
}

func (e *ExamSchedule) Columns() []string {
	return []string{"id_hewan", "tgl_pemeriksaan_selanjutnya", "freq_pemeriksaan_rutin"}
}

func (e *ExamSchedule) Values() []any {
	return []any{e.AnimalID, e.NextExamDate, e.FrequencyMo}
}

func (e *ExamSchedule) Pointers() []any {
	return []any{&e.AnimalID, &e.NextExamDate, &e.FrequencyMo}
}

// Validate performs domain validation on the exam schedule
func (e *ExamSchedule) Validate() error {
	if e.AnimalID == uuid.Nil {
		return fmt.Errorf("id_hewan is required")
	}
	if e.NextExamDate.IsZero() {
		return fmt.Errorf("tgl_pemeriksaan_selanjutnya is required")
	}
	if e.FrequencyMo <= 0 {
		return fmt.Errorf("freq_pemeriksaan_rutin must be positive")
	}
	return nil
}

// MedicalRecord is a row of catatan_medis, keyed by (id_hewan, tanggal_pemeriksaan)
type MedicalRecord struct {
	AnimalID     uuid.UUID `json:"id_hewan"`
	ExamDate     time.Time `json:"tanggal_pemeriksaan"`
	VetUsername  string    `json:"username_dh"`
	HealthStatus string    `json:"status_kesehatan"`
	Diagnosis    *string   `json:"diagnosis,omitempty"`
	Treatment    *string   `json:"pengobatan,omitempty"`
	FollowUp     *string   `json:"catatan_tindak_lanjut,omitempty"`
}

func (m *MedicalRecord) Columns() []string {
	return []string{"id_hewan", "tanggal_pemeriksaan", "username_dh", "status_kesehatan", "diagnosis", "pengobatan", "catatan_tindak_lanjut"}
}

func (m *MedicalRecord) Values() []any {
	return []any{m.AnimalID, m.ExamDate, m.VetUsername, m.HealthStatus, m.Diagnosis, m.Treatment, m.FollowUp}
}

func (m *MedicalRecord) Pointers() []any {
	return []any{&m.AnimalID, &m.ExamDate, &m.VetUsername, &m.HealthStatus, &m.Diagnosis, &m.Treatment, &m.FollowUp}
}

// Validate performs domain validation on the medical record
func (m *MedicalRecord) Validate() error {
	if m.AnimalID == uuid.Nil {
		return fmt.Errorf("id_hewan is required")
	}
	if m.ExamDate.IsZero() {
		return fmt.Errorf("tanggal_pemeriksaan is required")
	}
	if m.VetUsername == "" {
		return fmt.Errorf("username_dh is required")
	}
	if m.HealthStatus == "" {
		return fmt.Errorf("status_kesehatan is required")
	}
	return nil
}
