// internal/handlers/reservation_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/handlers"
	"github.com/ammerola/sizopi-be/test/helpers"
	"github.com/ammerola/sizopi-be/test/mocks"
)

func newReservationMux(t *testing.T) (*http.ServeMux, *mocks.MockReservationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockReservationService(ctrl)

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, &handlers.Handlers{
		Reservations: handlers.NewReservationHandler(service, helpers.TestLogger()),
	})
	return mux, service
}

func TestReservationHandler_Book(t *testing.T) {
	body := `{"username_p":"budi","nama_fasilitas":"Pertunjukan Singa","tanggal_kunjungan":"2025-08-17","jumlah_tiket":2}`

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockReservationService)
		expectedStatus int
		wantError      string
	}{
		{
			name: "booked",
			body: body,
			setupMocks: func(m *mocks.MockReservationService) {
				m.EXPECT().Book(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, r *domain.Reservation) (*domain.Reservation, error) {
						assert.Equal(t, helpers.Date(2025, 8, 17), r.VisitDate)
						assert.Equal(t, 2, r.Tickets)
						r.Status = domain.ReservationActive
						return r, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "capacity_exceeded_is_conflict",
			body: body,
			setupMocks: func(m *mocks.MockReservationService) {
				m.EXPECT().Book(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewError(domain.KindCapacityExceeded, "book", "only 1 ticket left"))
			},
			expectedStatus: http.StatusConflict,
			wantError:      "only 1 ticket left",
		},
		{
			name:           "bad_visit_date",
			body:           `{"username_p":"budi","nama_fasilitas":"Pertunjukan Singa","tanggal_kunjungan":"17/08/2025","jumlah_tiket":2}`,
			setupMocks:     func(m *mocks.MockReservationService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service := newReservationMux(t)
			tt.setupMocks(service)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.wantError != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp["error"], tt.wantError)
			}
		})
	}
}

func TestReservationHandler_Reschedule(t *testing.T) {
	mux, service := newReservationMux(t)

	service.EXPECT().
		Reschedule(gomock.Any(), "budi", "Pertunjukan Singa", "2025-08-17", domain.Patch{"jumlah_tiket": int64(4)}).
		Return(helpers.CreateTestReservation(func(r *domain.Reservation) { r.Tickets = 4 }), nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/budi/Pertunjukan%20Singa/2025-08-17", strings.NewReader(`{"jumlah_tiket":4}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"jumlah_tiket":4`)
}

func TestReservationHandler_Cancel(t *testing.T) {
	mux, service := newReservationMux(t)

	service.EXPECT().Cancel(gomock.Any(), "budi", "Pertunjukan Singa", "2025-08-17").
		Return(helpers.CreateTestReservation(func(r *domain.Reservation) { r.Status = domain.ReservationCancelled }), nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/budi/Pertunjukan%20Singa/2025-08-17", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), domain.ReservationCancelled)
}

func TestReservationHandler_Remaining(t *testing.T) {
	t.Run("reports_remaining", func(t *testing.T) {
		mux, service := newReservationMux(t)
		service.EXPECT().Remaining(gomock.Any(), "Pertunjukan Singa", "2025-08-17").Return(48, nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/facilities/Pertunjukan%20Singa/remaining?date=2025-08-17", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(48), resp["remaining"])
	})

	t.Run("date_is_required", func(t *testing.T) {
		mux, _ := newReservationMux(t)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/facilities/Pertunjukan%20Singa/remaining", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
