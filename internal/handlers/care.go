// internal/handlers/care.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

// CareHandler handles feeding schedules, health check schedules and
// medical records
type CareHandler struct {
	service ports.CareService
	logger  *slog.Logger
}

// NewCareHandler creates a new care handler
func NewCareHandler(service ports.CareService, logger *slog.Logger) *CareHandler {
	return &CareHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "care")),
	}
}

// NoticeResponse carries a written row with the notices its triggers raised
type NoticeResponse struct {
	Data    any      `json:"data"`
	Notices []string `json:"notices"`
}

func withNotices(data any, notices []string) NoticeResponse {
	if notices == nil {
		notices = []string{}
	}
	return NoticeResponse{Data: data, Notices: notices}
}

// FeedingRequest is the body of POST /feeding
type FeedingRequest struct {
	AnimalID          string  `json:"id_hewan"`
	Schedule          string  `json:"jadwal"`
	Type              string  `json:"jenis"`
	Amount            int     `json:"jumlah"`
	Status            string  `json:"status,omitempty"`
	CaretakerUsername *string `json:"username_jh,omitempty"`
}

// ToDomain converts the request to a feeding row
func (req *FeedingRequest) ToDomain() (*domain.Feeding, error) {
	id, err := parseAnimalID(req.AnimalID)
	if err != nil {
		return nil, err
	}
	schedule, err := compositekey.ParseTime(req.Schedule)
	if err != nil {
		return nil, domain.NewError(domain.KindValidation, "feeding", "jadwal: %v", err)
	}
	return &domain.Feeding{
		AnimalID:          id,
		Schedule:          schedule,
		Type:              req.Type,
		Amount:            req.Amount,
		Status:            req.Status,
		CaretakerUsername: req.CaretakerUsername,
	}, nil
}

// ExamScheduleRequest is the body of POST /exam-schedules
type ExamScheduleRequest struct {
	AnimalID     string `json:"id_hewan"`
	NextExamDate string `json:"tgl_pemeriksaan_selanjutnya"`
	FrequencyMo  int    `json:"freq_pemeriksaan_rutin"`
}

// ToDomain converts the request to a schedule row
func (req *ExamScheduleRequest) ToDomain() (*domain.ExamSchedule, error) {
	id, err := parseAnimalID(req.AnimalID)
	if err != nil {
		return nil, err
	}
	date, err := compositekey.ParseDate(req.NextExamDate)
	if err != nil {
		return nil, domain.NewError(domain.KindValidation, "examSchedule", "tgl_pemeriksaan_selanjutnya: %v", err)
	}
	return &domain.ExamSchedule{AnimalID: id, NextExamDate: date, FrequencyMo: req.FrequencyMo}, nil
}

// MedicalRecordRequest is the body of POST /medical-records
type MedicalRecordRequest struct {
	AnimalID     string  `json:"id_hewan"`
	ExamDate     string  `json:"tanggal_pemeriksaan"`
	VetUsername  string  `json:"username_dh"`
	HealthStatus string  `json:"status_kesehatan"`
	Diagnosis    *string `json:"diagnosis,omitempty"`
	Treatment    *string `json:"pengobatan,omitempty"`
	FollowUp     *string `json:"catatan_tindak_lanjut,omitempty"`
}

// ToDomain converts the request to a medical record row
func (req *MedicalRecordRequest) ToDomain() (*domain.MedicalRecord, error) {
	id, err := parseAnimalID(req.AnimalID)
	if err != nil {
		return nil, err
	}
	date, err := compositekey.ParseDate(req.ExamDate)
	if err != nil {
		return nil, domain.NewError(domain.KindValidation, "medicalRecord", "tanggal_pemeriksaan: %v", err)
	}
	return &domain.MedicalRecord{
		AnimalID:     id,
		ExamDate:     date,
		VetUsername:  req.VetUsername,
		HealthStatus: req.HealthStatus,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		FollowUp:     req.FollowUp,
	}, nil
}

func parseAnimalID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewError(domain.KindValidation, "parse", "invalid id_hewan %q", s)
	}
	return id, nil
}

// Feedings handles GET /api/v1/animals/{id}/feeding
func (h *CareHandler) Feedings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := h.service.Feedings(ctx, r.PathValue("id"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to list feedings", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, rows)
}

// ScheduleFeeding handles POST /api/v1/feeding
func (h *CareHandler) ScheduleFeeding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FeedingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondFailure(ctx, h.logger, w, "invalid feeding body", err)
		return
	}
	feeding, err := req.ToDomain()
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid feeding", err)
		return
	}

	created, err := h.service.ScheduleFeeding(ctx, feeding)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to schedule feeding", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusCreated, created)
}

// UpdateFeeding handles PATCH /api/v1/feeding/{id}/{schedule}
func (h *CareHandler) UpdateFeeding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patch, err := decodePatch(w, r)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid patch", err)
		return
	}

	updated, err := h.service.UpdateFeeding(ctx, r.PathValue("id"), r.PathValue("schedule"), patch)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to update feeding", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, updated)
}

// CancelFeedings handles POST /api/v1/animals/{id}/feeding/cancel
func (h *CareHandler) CancelFeedings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cancelled, err := h.service.CancelFeedings(ctx, r.PathValue("id"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to cancel feedings", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, map[string]any{
		"cancelled": len(cancelled),
		"data":      cancelled,
	})
}

// DeleteFeeding handles DELETE /api/v1/feeding/{id}/{schedule}
func (h *CareHandler) DeleteFeeding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := h.service.DeleteFeeding(ctx, r.PathValue("id"), r.PathValue("schedule"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to delete feeding", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, deleted)
}

// ExamSchedules handles GET /api/v1/animals/{id}/exam-schedules
func (h *CareHandler) ExamSchedules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := h.service.ExamSchedules(ctx, r.PathValue("id"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to list exam schedules", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, rows)
}

// AddExamSchedule handles POST /api/v1/exam-schedules
func (h *CareHandler) AddExamSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExamScheduleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondFailure(ctx, h.logger, w, "invalid exam schedule body", err)
		return
	}
	schedule, err := req.ToDomain()
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid exam schedule", err)
		return
	}

	created, notices, err := h.service.AddExamSchedule(ctx, schedule)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to add exam schedule", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusCreated, withNotices(created, notices))
}

// UpdateExamSchedule handles PATCH /api/v1/exam-schedules/{id}/{date}
func (h *CareHandler) UpdateExamSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patch, err := decodePatch(w, r)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid patch", err)
		return
	}

	updated, notices, err := h.service.UpdateExamSchedule(ctx, r.PathValue("id"), r.PathValue("date"), patch)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to update exam schedule", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, withNotices(updated, notices))
}

// DeleteExamSchedule handles DELETE /api/v1/exam-schedules/{id}/{date}
func (h *CareHandler) DeleteExamSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := h.service.DeleteExamSchedule(ctx, r.PathValue("id"), r.PathValue("date"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to delete exam schedule", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, deleted)
}

// MedicalRecords handles GET /api/v1/animals/{id}/medical-records
func (h *CareHandler) MedicalRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := h.service.MedicalRecords(ctx, r.PathValue("id"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to list medical records", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, rows)
}

// AddMedicalRecord handles POST /api/v1/medical-records
func (h *CareHandler) AddMedicalRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MedicalRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondFailure(ctx, h.logger, w, "invalid medical record body", err)
		return
	}
	record, err := req.ToDomain()
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid medical record", err)
		return
	}

	created, notices, err := h.service.AddMedicalRecord(ctx, record)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to add medical record", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusCreated, withNotices(created, notices))
}

// UpdateMedicalRecord handles PATCH /api/v1/medical-records/{id}/{date}
func (h *CareHandler) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patch, err := decodePatch(w, r)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid patch", err)
		return
	}

	updated, notices, err := h.service.UpdateMedicalRecord(ctx, r.PathValue("id"), r.PathValue("date"), patch)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to update medical record", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, withNotices(updated, notices))
}

// DeleteMedicalRecord handles DELETE /api/v1/medical-records/{id}/{date}
func (h *CareHandler) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := h.service.DeleteMedicalRecord(ctx, r.PathValue("id"), r.PathValue("date"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to delete medical record", err)
		return
	}
	respondJSON(ctx, h.logger, w, http.StatusOK, deleted)
}
