// internal/handlers/adopter_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
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

type adopterMocks struct {
	service *mocks.MockAdopterService
	tasks   *mocks.MockTaskQueue
}

func newAdopterMux(t *testing.T, withQueue bool) (*http.ServeMux, adopterMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := adopterMocks{
		service: mocks.NewMockAdopterService(ctrl),
		tasks:   mocks.NewMockTaskQueue(ctrl),
	}

	h := handlers.NewAdopterHandler(m.service, nil, 5, helpers.TestLogger())
	if withQueue {
		h = handlers.NewAdopterHandler(m.service, m.tasks, 5, helpers.TestLogger())
	}

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, &handlers.Handlers{Adopters: h})
	return mux, m
}

func TestAdopterHandler_Top(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(adopterMocks)
		expectedStatus int
		wantLen        int
	}{
		{
			name:  "default_n",
			query: "",
			setupMocks: func(m adopterMocks) {
				m.service.EXPECT().TopAdopters(gomock.Any(), 5).Return(helpers.CreateTestTopAdopters(5), nil)
			},
			expectedStatus: http.StatusOK,
			wantLen:        5,
		},
		{
			name:  "explicit_n",
			query: "?n=3",
			setupMocks: func(m adopterMocks) {
				m.service.EXPECT().TopAdopters(gomock.Any(), 3).Return(helpers.CreateTestTopAdopters(3), nil)
			},
			expectedStatus: http.StatusOK,
			wantLen:        3,
		},
		{
			name:  "non_positive_n",
			query: "?n=0",
			setupMocks: func(m adopterMocks) {
				m.service.EXPECT().TopAdopters(gomock.Any(), 0).
					Return(nil, domain.NewError(domain.KindValidation, "topAdopters", "n must be positive"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, m := newAdopterMux(t, false)
			tt.setupMocks(m)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/adopters/top"+tt.query, nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.wantLen > 0 {
				var top []domain.TopAdopter
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &top))
				assert.Len(t, top, tt.wantLen)
			}
		})
	}
}

func TestAdopterHandler_Report(t *testing.T) {
	mux, m := newAdopterMux(t, false)
	m.service.EXPECT().BuildReport(gomock.Any(), 10).Return([]byte("PK-fake-workbook"), nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/adopters/report.xlsx?n=10", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "top_adopters_")
	assert.Equal(t, "PK-fake-workbook", w.Body.String())
}

func TestAdopterHandler_EnqueueReport(t *testing.T) {
	t.Run("queued", func(t *testing.T) {
		mux, m := newAdopterMux(t, true)
		m.tasks.EXPECT().EnqueueAdopterReport(gomock.Any(), 5).Return("task-123", nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/adopters/report", nil))

		require.Equal(t, http.StatusAccepted, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "task-123", resp["task_id"])
		assert.Equal(t, "queued", resp["status"])
	})

	t.Run("no_queue_configured", func(t *testing.T) {
		mux, _ := newAdopterMux(t, false)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/adopters/report", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("enqueue_failure", func(t *testing.T) {
		mux, m := newAdopterMux(t, true)
		m.tasks.EXPECT().EnqueueAdopterReport(gomock.Any(), 5).Return("", errors.New("redis down"))

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/adopters/report", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to enqueue report")
	})
}

func TestAdopterHandler_Details(t *testing.T) {
	mux, m := newAdopterMux(t, false)
	id := "8f14e45f-ceea-4e7a-9a1c-2b7f6d3e9a10"
	m.service.EXPECT().Details(gomock.Any(), id).
		Return(&domain.AdopterDetails{Name: "Yayasan Satwa", Type: "organisasi"}, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/adopters/"+id, nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.AdopterDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "organisasi", got.Type)
}

func TestAdopterHandler_Adopt(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(adopterMocks)
		expectedStatus int
	}{
		{
			name: "date_only_period_is_created",
			body: `{"id_adopter":"1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c55","id_hewan":"8f14e45f-ceea-4e7a-9a1c-2b7f6d3e9a10",` +
				`"status_pembayaran":"Lunas","tgl_mulai_adopsi":"2025-01-01","tgl_berhenti_adopsi":"2025-12-31","kontribusi_finansial":3000000}`,
			setupMocks: func(m adopterMocks) {
				m.service.EXPECT().Adopt(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, a *domain.Adoption) (*domain.Adoption, error) {
						assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), a.StartDate)
						assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), a.EndDate)
						assert.Equal(t, "3000000", a.Contribution.String())
						return a, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad_start_date_is_bad_request",
			body:           `{"id_adopter":"1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c55","tgl_mulai_adopsi":"01/01/2025"}`,
			setupMocks:     func(adopterMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service_validation_is_bad_request",
			body: `{"tgl_mulai_adopsi":"2025-01-01","tgl_berhenti_adopsi":"2025-12-31"}`,
			setupMocks: func(m adopterMocks) {
				m.service.EXPECT().Adopt(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewError(domain.KindValidation, "adopt", "id_adopter and id_hewan are required"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, m := newAdopterMux(t, false)
			tt.setupMocks(m)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/adoptions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
