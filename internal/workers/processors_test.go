// internal/workers/processors_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/workers"
	"github.com/ammerola/sizopi-be/test/helpers"
	"github.com/ammerola/sizopi-be/test/mocks"
)

func TestReservationProcessor_CompletePast(t *testing.T) {
	cutoff := time.Date(2025, time.August, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		payload       []byte
		setupMocks    func(*mocks.MockReservationRepository)
		expectedError bool
		skipRetry     bool
	}{
		{
			name:    "explicit_cutoff",
			payload: mustJSON(t, workers.ReservationCompletePayload{Before: cutoff}),
			setupMocks: func(m *mocks.MockReservationRepository) {
				m.EXPECT().CompletePast(gomock.Any(), cutoff).Return(int64(3), nil)
			},
		},
		{
			name:    "default_cutoff_is_start_of_today",
			payload: mustJSON(t, workers.ReservationCompletePayload{}),
			setupMocks: func(m *mocks.MockReservationRepository) {
				m.EXPECT().CompletePast(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, before time.Time) (int64, error) {
						assert.Equal(t, time.Now().UTC().Truncate(24*time.Hour), before)
						return 0, nil
					})
			},
		},
		{
			name:    "repository_failure_retries",
			payload: mustJSON(t, workers.ReservationCompletePayload{Before: cutoff}),
			setupMocks: func(m *mocks.MockReservationRepository) {
				m.EXPECT().CompletePast(gomock.Any(), cutoff).Return(int64(0), domain.ErrConnectivity)
			},
			expectedError: true,
		},
		{
			name:          "malformed_payload_skips_retry",
			payload:       []byte(`{"before":`),
			setupMocks:    func(m *mocks.MockReservationRepository) {},
			expectedError: true,
			skipRetry:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockReservationRepository(ctrl)
			tt.setupMocks(repo)

			p := workers.NewReservationProcessor(repo, helpers.TestLogger())
			err := p.CompletePast(context.Background(), asynq.NewTask(workers.TypeReservationComplete, tt.payload))

			if !tt.expectedError {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.skipRetry, errors.Is(err, asynq.SkipRetry))
		})
	}
}

func TestReportProcessor_PublishAdopterReport(t *testing.T) {
	tests := []struct {
		name          string
		payload       []byte
		setupMocks    func(*mocks.MockAdopterService)
		expectedError bool
		skipRetry     bool
	}{
		{
			name:    "publishes_requested_size",
			payload: mustJSON(t, workers.AdopterReportPayload{N: 10}),
			setupMocks: func(m *mocks.MockAdopterService) {
				m.EXPECT().PublishReport(gomock.Any(), 10).Return("s3://sizopi-reports/reports/adopters/top.xlsx", nil)
			},
		},
		{
			name:    "zero_n_uses_default",
			payload: mustJSON(t, workers.AdopterReportPayload{}),
			setupMocks: func(m *mocks.MockAdopterService) {
				m.EXPECT().PublishReport(gomock.Any(), 5).Return("s3://sizopi-reports/x.xlsx", nil)
			},
		},
		{
			name:    "validation_error_skips_retry",
			payload: mustJSON(t, workers.AdopterReportPayload{N: -1}),
			setupMocks: func(m *mocks.MockAdopterService) {
				m.EXPECT().PublishReport(gomock.Any(), -1).
					Return("", domain.NewError(domain.KindValidation, "publishReport", "n must be positive"))
			},
			expectedError: true,
			skipRetry:     true,
		},
		{
			name:    "upload_failure_retries",
			payload: mustJSON(t, workers.AdopterReportPayload{N: 5}),
			setupMocks: func(m *mocks.MockAdopterService) {
				m.EXPECT().PublishReport(gomock.Any(), 5).Return("", errors.New("s3 unavailable"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAdopterService(ctrl)
			tt.setupMocks(service)

			p := workers.NewReportProcessor(service, 5, helpers.TestLogger())
			err := p.PublishAdopterReport(context.Background(), asynq.NewTask(workers.TypeAdopterReport, tt.payload))

			if !tt.expectedError {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.skipRetry, errors.Is(err, asynq.SkipRetry))
		})
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
