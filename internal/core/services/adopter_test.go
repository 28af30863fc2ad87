// internal/core/services/adopter_test.go
package services_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/services"
	"github.com/ammerola/sizopi-be/test/helpers"
	"github.com/ammerola/sizopi-be/test/mocks"
)

func TestAdopterService_Details(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name         string
		id           string
		setupMocks   func(*mocks.MockAdopterRepository)
		expectedType string
		expectedKind domain.ErrorKind
	}{
		{
			name: "organization_adopter",
			id:   id.String(),
			setupMocks: func(m *mocks.MockAdopterRepository) {
				m.EXPECT().GetAdopterWithDetails(gomock.Any(), id).Return(&domain.AdopterDetails{
					Adopter: domain.Adopter{ID: id, Username: "wwf"},
					Name:    "WWF Indonesia",
					Type:    domain.AdopterOrganization,
				}, nil)
			},
			expectedType: domain.AdopterOrganization,
		},
		{
			name:         "malformed_id_rejected",
			id:           "not-a-uuid",
			setupMocks:   func(m *mocks.MockAdopterRepository) {},
			expectedKind: domain.KindValidation,
		},
		{
			name: "unknown_adopter_is_not_found",
			id:   id.String(),
			setupMocks: func(m *mocks.MockAdopterRepository) {
				m.EXPECT().GetAdopterWithDetails(gomock.Any(), id).Return(nil, nil)
			},
			expectedKind: domain.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			adopters := mocks.NewMockAdopterRepository(ctrl)
			tt.setupMocks(adopters)

			svc := services.NewAdopterService(adopters, mocks.NewMockAdoptionRepository(ctrl), nil, "reports", helpers.TestLogger())
			details, err := svc.Details(context.Background(), tt.id)

			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, domain.KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, details.Type)
		})
	}
}

func TestAdopterService_TopAdopters_RejectsNonPositive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := services.NewAdopterService(mocks.NewMockAdopterRepository(ctrl), mocks.NewMockAdoptionRepository(ctrl), nil, "reports", helpers.TestLogger())

	_, err := svc.TopAdopters(context.Background(), 0)

	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestAdopterService_Adopt(t *testing.T) {
	tests := []struct {
		name       string
		adoption   *domain.Adoption
		setupMocks func(*mocks.MockAdoptionRepository)
		wantKind   domain.ErrorKind
	}{
		{
			name:     "stores_adoption",
			adoption: helpers.CreateTestAdoption(),
			setupMocks: func(m *mocks.MockAdoptionRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.Adoption) (*domain.Adoption, error) {
						return a, nil
					})
			},
		},
		{
			name:       "missing_adopter_is_rejected",
			adoption:   helpers.CreateTestAdoption(func(a *domain.Adoption) { a.AdopterID = uuid.Nil }),
			setupMocks: func(*mocks.MockAdoptionRepository) {},
			wantKind:   domain.KindValidation,
		},
		{
			name:     "repository_validation_passes_through",
			adoption: helpers.CreateTestAdoption(),
			setupMocks: func(m *mocks.MockAdoptionRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewError(domain.KindValidation, "create", "tgl_berhenti_adopsi must be after tgl_mulai_adopsi"))
			},
			wantKind: domain.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			adoptions := mocks.NewMockAdoptionRepository(ctrl)
			tt.setupMocks(adoptions)
			svc := services.NewAdopterService(mocks.NewMockAdopterRepository(ctrl), adoptions, nil, "reports", helpers.TestLogger())

			created, err := svc.Adopt(context.Background(), tt.adoption)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.adoption.AdopterID, created.AdopterID)
		})
	}
}

func TestAdopterService_BuildReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	adopters := mocks.NewMockAdopterRepository(ctrl)
	adoptions := mocks.NewMockAdoptionRepository(ctrl)

	top := helpers.CreateTestTopAdopters(3)
	adopters.EXPECT().TopAdopters(gomock.Any(), 3).Return(top, nil)
	adoptions.EXPECT().ListAll(gomock.Any()).Return([]*domain.Adoption{
		{
			AdopterID:     top[0].ID,
			AnimalID:      helpers.CreateTestAnimal().ID,
			PaymentStatus: domain.PaymentPaid,
			StartDate:     helpers.Date(2025, time.January, 1),
			EndDate:       helpers.Date(2025, time.December, 31),
			Contribution:  decimal.NewFromInt(3_000_000),
		},
	}, nil)

	svc := services.NewAdopterService(adopters, adoptions, nil, "reports", helpers.TestLogger())
	data, err := svc.BuildReport(context.Background(), 3)
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)

	board := file.Sheets[0]
	assert.Equal(t, "Top Adopters", board.Name)
	assert.Equal(t, 4, board.MaxRow)

	row, err := board.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "Adopter 1", row.GetCell(1).Value)

	list := file.Sheets[1]
	assert.Equal(t, "Adopsi", list.Name)
	assert.Equal(t, 2, list.MaxRow)
}

func TestAdopterService_PublishReport(t *testing.T) {
	t.Run("uploads_under_prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adopters := mocks.NewMockAdopterRepository(ctrl)
		adoptions := mocks.NewMockAdoptionRepository(ctrl)
		storage := mocks.NewMockFileStorage(ctrl)

		adopters.EXPECT().TopAdopters(gomock.Any(), 5).Return(helpers.CreateTestTopAdopters(5), nil)
		adoptions.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		storage.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet").
			DoAndReturn(func(_ context.Context, key string, body io.Reader, _ string) (string, error) {
				assert.True(t, strings.HasPrefix(key, "reports/adopters/top_adopters_"))
				assert.True(t, strings.HasSuffix(key, ".xlsx"))
				var buf bytes.Buffer
				_, err := io.Copy(&buf, body)
				require.NoError(t, err)
				assert.NotZero(t, buf.Len())
				return "s3://sizopi-reports/" + key, nil
			})

		svc := services.NewAdopterService(adopters, adoptions, storage, "reports/adopters", helpers.TestLogger())
		location, err := svc.PublishReport(context.Background(), 5)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(location, "s3://sizopi-reports/reports/adopters/"))
	})

	t.Run("upload_failure_is_wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adopters := mocks.NewMockAdopterRepository(ctrl)
		adoptions := mocks.NewMockAdoptionRepository(ctrl)
		storage := mocks.NewMockFileStorage(ctrl)

		adopters.EXPECT().TopAdopters(gomock.Any(), 5).Return(nil, nil)
		adoptions.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket not found"))

		svc := services.NewAdopterService(adopters, adoptions, storage, "reports/adopters", helpers.TestLogger())
		_, err := svc.PublishReport(context.Background(), 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket not found")
	})

	t.Run("without_storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := services.NewAdopterService(mocks.NewMockAdopterRepository(ctrl), mocks.NewMockAdoptionRepository(ctrl), nil, "reports", helpers.TestLogger())

		_, err := svc.PublishReport(context.Background(), 5)
		assert.Error(t, err)
	})
}
