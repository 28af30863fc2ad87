// internal/handlers/routes.go
package handlers

import (
	"net/http"
)

// Handlers groups every HTTP handler the API mounts
type Handlers struct {
	Health       *HealthHandler
	Accounts     *AccountHandler
	Reservations *ReservationHandler
	Care         *CareHandler
	Adopters     *AdopterHandler
	Resources    map[string]Registrar
}

// Registrar mounts a resource under a path prefix
type Registrar interface {
	Register(mux *http.ServeMux, prefix string)
}

// RegisterRoutes mounts every route on mux
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	if h.Health != nil {
		mux.HandleFunc("GET /health", h.Health.Health)
		mux.HandleFunc("GET /ready", h.Health.Readiness)
	}

	for prefix, resource := range h.Resources {
		resource.Register(mux, "/api/v1/"+prefix)
	}

	if a := h.Accounts; a != nil {
		mux.HandleFunc("POST /api/v1/auth/login", a.Login)
		mux.HandleFunc("POST /api/v1/auth/register", a.Register)
		mux.HandleFunc("GET /api/v1/users/{username}", a.Profile)
		mux.HandleFunc("GET /api/v1/users/{username}/role", a.Role)
	}

	if res := h.Reservations; res != nil {
		mux.HandleFunc("GET /api/v1/users/{username}/reservations", res.ListForVisitor)
		mux.HandleFunc("POST /api/v1/reservations", res.Book)
		mux.HandleFunc("PATCH /api/v1/reservations/{username}/{facility}/{date}", res.Reschedule)
		mux.HandleFunc("DELETE /api/v1/reservations/{username}/{facility}/{date}", res.Cancel)
		mux.HandleFunc("GET /api/v1/facilities/{name}/remaining", res.Remaining)
	}

	if c := h.Care; c != nil {
		mux.HandleFunc("GET /api/v1/animals/{id}/feeding", c.Feedings)
		mux.HandleFunc("POST /api/v1/animals/{id}/feeding/cancel", c.CancelFeedings)
		mux.HandleFunc("POST /api/v1/feeding", c.ScheduleFeeding)
		mux.HandleFunc("PATCH /api/v1/feeding/{id}/{schedule}", c.UpdateFeeding)
		mux.HandleFunc("DELETE /api/v1/feeding/{id}/{schedule}", c.DeleteFeeding)

		mux.HandleFunc("GET /api/v1/animals/{id}/exam-schedules", c.ExamSchedules)
		mux.HandleFunc("POST /api/v1/exam-schedules", c.AddExamSchedule)
		mux.HandleFunc("PATCH /api/v1/exam-schedules/{id}/{date}", c.UpdateExamSchedule)
		mux.HandleFunc("DELETE /api/v1/exam-schedules/{id}/{date}", c.DeleteExamSchedule)

		mux.HandleFunc("GET /api/v1/animals/{id}/medical-records", c.MedicalRecords)
		mux.HandleFunc("POST /api/v1/medical-records", c.AddMedicalRecord)
		mux.HandleFunc("PATCH /api/v1/medical-records/{id}/{date}", c.UpdateMedicalRecord)
		mux.HandleFunc("DELETE /api/v1/medical-records/{id}/{date}", c.DeleteMedicalRecord)
	}

	if ad := h.Adopters; ad != nil {
		mux.HandleFunc("GET /api/v1/adopters/top", ad.Top)
		mux.HandleFunc("GET /api/v1/adopters/report.xlsx", ad.Report)
		mux.HandleFunc("POST /api/v1/adopters/report", ad.EnqueueReport)
		mux.HandleFunc("POST /api/v1/adoptions", ad.Adopt)
		mux.HandleFunc("GET /api/v1/adopters/{id}", ad.Details)
	}
}
