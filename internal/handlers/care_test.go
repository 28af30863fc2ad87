// internal/handlers/care_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/handlers"
	"github.com/ammerola/sizopi-be/test/helpers"
	"github.com/ammerola/sizopi-be/test/mocks"
)

func newCareMux(t *testing.T) (*http.ServeMux, *mocks.MockCareService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockCareService(ctrl)

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, &handlers.Handlers{
		Care: handlers.NewCareHandler(service, helpers.TestLogger()),
	})
	return mux, service
}

func TestCareHandler_ScheduleFeeding(t *testing.T) {
	animal := helpers.CreateTestAnimal()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockCareService)
		expectedStatus int
	}{
		{
			name: "scheduled",
			body: `{"id_hewan":"` + animal.ID.String() + `","jadwal":"2025-06-01 08:00:00","jenis":"Daging sapi","jumlah":5}`,
			setupMocks: func(m *mocks.MockCareService) {
				m.EXPECT().ScheduleFeeding(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, f *domain.Feeding) (*domain.Feeding, error) {
						assert.Equal(t, animal.ID, f.AnimalID)
						assert.Equal(t, time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC), f.Schedule)
						return f, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid_animal_id",
			body:           `{"id_hewan":"bukan-uuid","jadwal":"2025-06-01 08:00:00","jenis":"Daging sapi","jumlah":5}`,
			setupMocks:     func(m *mocks.MockCareService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "same_slot_already_booked",
			body: `{"id_hewan":"` + animal.ID.String() + `","jadwal":"2025-06-01T08:00:00Z","jenis":"Daging sapi","jumlah":5}`,
			setupMocks: func(m *mocks.MockCareService) {
				m.EXPECT().ScheduleFeeding(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service := newCareMux(t)
			tt.setupMocks(service)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/feeding", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCareHandler_CancelFeedings(t *testing.T) {
	mux, service := newCareMux(t)
	animal := helpers.CreateTestAnimal()

	cancelled := helpers.CreateTestFeeding(func(f *domain.Feeding) { f.Status = domain.FeedingCancelled })
	service.EXPECT().CancelFeedings(gomock.Any(), animal.ID.String()).Return([]*domain.Feeding{cancelled}, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/animals/"+animal.ID.String()+"/feeding/cancel", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Cancelled int               `json:"cancelled"`
		Data      []*domain.Feeding `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Cancelled)
	assert.Equal(t, domain.FeedingCancelled, body.Data[0].Status)
}

func TestCareHandler_UpdateFeeding_PathKey(t *testing.T) {
	mux, service := newCareMux(t)
	animal := helpers.CreateTestAnimal()

	service.EXPECT().
		UpdateFeeding(gomock.Any(), animal.ID.String(), "2025-06-01T08:00:00Z", domain.Patch{"status": domain.FeedingDone}).
		Return(helpers.CreateTestFeeding(func(f *domain.Feeding) { f.Status = domain.FeedingDone }), nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/feeding/"+animal.ID.String()+"/2025-06-01T08:00:00Z", strings.NewReader(`{"status":"selesai"}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCareHandler_AddMedicalRecord_ReturnsNotices(t *testing.T) {
	animal := helpers.CreateTestAnimal()

	tests := []struct {
		name        string
		notices     []string
		wantNotices []string
	}{
		{
			name:        "trigger_notice_is_forwarded",
			notices:     []string{"SUKSES: Jadwal pemeriksaan hewan Bima diperbarui karena status kesehatan Sakit."},
			wantNotices: []string{"SUKSES: Jadwal pemeriksaan hewan Bima diperbarui karena status kesehatan Sakit."},
		},
		{
			name:        "no_notices_is_empty_list",
			notices:     nil,
			wantNotices: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service := newCareMux(t)
			record := helpers.CreateTestMedicalRecord(func(m *domain.MedicalRecord) { m.HealthStatus = "Sakit" })
			service.EXPECT().AddMedicalRecord(gomock.Any(), gomock.Any()).Return(record, tt.notices, nil)

			body := `{"id_hewan":"` + animal.ID.String() + `","tanggal_pemeriksaan":"2025-05-20","username_dh":"drsinta","status_kesehatan":"Sakit"}`
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/medical-records", strings.NewReader(body)))

			require.Equal(t, http.StatusCreated, w.Code)
			var resp struct {
				Data    domain.MedicalRecord `json:"data"`
				Notices []string             `json:"notices"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantNotices, resp.Notices)
			assert.Equal(t, "Sakit", resp.Data.HealthStatus)
		})
	}
}

func TestCareHandler_DeleteExamSchedule_NotFound(t *testing.T) {
	mux, service := newCareMux(t)
	animal := helpers.CreateTestAnimal()

	service.EXPECT().DeleteExamSchedule(gomock.Any(), animal.ID.String(), "2025-07-01").
		Return(nil, domain.NewError(domain.KindNotFound, "deleteExamSchedule", "no schedule"))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/exam-schedules/"+animal.ID.String()+"/2025-07-01", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
