// internal/core/services/adopter.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx/v3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdopterService serves the contribution leaderboard and adopter reports
type AdopterService struct {
	adopters  ports.AdopterRepository
	adoptions ports.AdoptionRepository
	storage   ports.FileStorage
	keyPrefix string
	logger    *slog.Logger
	now       func() time.Time
}

var _ ports.AdopterService = (*AdopterService)(nil)

// NewAdopterService creates a new adopter service. storage may be nil when
// reports are only downloaded.
func NewAdopterService(adopters ports.AdopterRepository, adoptions ports.AdoptionRepository, storage ports.FileStorage, keyPrefix string, logger *slog.Logger) *AdopterService {
	return &AdopterService{
		adopters:  adopters,
		adoptions: adoptions,
		storage:   storage,
		keyPrefix: keyPrefix,
		logger:    logger.With(slog.String("service", "adopter")),
		now:       time.Now,
	}
}

// TopAdopters returns the n biggest contributors
func (s *AdopterService) TopAdopters(ctx context.Context, n int) ([]domain.TopAdopter, error) {
	if n <= 0 {
		return nil, domain.NewError(domain.KindValidation, "topAdopters", "n must be positive, got %d", n)
	}
	return s.adopters.TopAdopters(ctx, n)
}

// Details resolves an adopter to its individual or organization name
func (s *AdopterService) Details(ctx context.Context, id string) (*domain.AdopterDetails, error) {
	adopterID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.NewError(domain.KindValidation, "adopterDetails", "invalid adopter id %q", id)
	}

	details, err := s.adopters.GetAdopterWithDetails(ctx, adopterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get adopter: %w", err)
	}
	if details == nil {
		return nil, domain.NewError(domain.KindNotFound, "adopterDetails", "adopter %s not found", id)
	}
	return details, nil
}

// Adopt records an adoption. A paid adoption moves the adopter's total
// through the adopsi trigger.
func (s *AdopterService) Adopt(ctx context.Context, adoption *domain.Adoption) (*domain.Adoption, error) {
	if adoption.AdopterID == uuid.Nil || adoption.AnimalID == uuid.Nil {
		return nil, domain.NewError(domain.KindValidation, "adopt", "id_adopter and id_hewan are required")
	}

	created, err := s.adoptions.Create(ctx, adoption)
	if err != nil {
		return nil, fmt.Errorf("failed to record adoption: %w", err)
	}

	s.logger.InfoContext(ctx, "adoption recorded",
		slog.String("adopter_id", created.AdopterID.String()),
		slog.String("animal_id", created.AnimalID.String()),
		slog.String("payment_status", created.PaymentStatus),
	)
	return created, nil
}

// BuildReport renders the leaderboard and the adoption list as a workbook
func (s *AdopterService) BuildReport(ctx context.Context, n int) ([]byte, error) {
	top, err := s.TopAdopters(ctx, n)
	if err != nil {
		return nil, err
	}

	adoptions, err := s.adoptions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoptions: %w", err)
	}

	file := xlsx.NewFile()

	board, err := file.AddSheet("Top Adopters")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	addHeader(board, "Rank", "Nama", "Username", "Total Kontribusi")
	for _, a := range top {
		row := board.AddRow()
		row.AddCell().SetInt(a.Rank)
		row.AddCell().SetString(a.Name)
		row.AddCell().SetString(a.Username)
		total, _ := a.TotalContribution.Float64()
		row.AddCell().SetFloat(total)
	}

	list, err := file.AddSheet("Adopsi")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	addHeader(list, "ID Adopter", "ID Hewan", "Status Pembayaran", "Mulai", "Berhenti", "Kontribusi")
	for _, a := range adoptions {
		row := list.AddRow()
		row.AddCell().SetString(a.AdopterID.String())
		row.AddCell().SetString(a.AnimalID.String())
		row.AddCell().SetString(a.PaymentStatus)
		row.AddCell().SetString(a.StartDate.Format(time.DateOnly))
		row.AddCell().SetString(a.EndDate.Format(time.DateOnly))
		amount, _ := a.Contribution.Float64()
		row.AddCell().SetFloat(amount)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// PublishReport builds the report and uploads it to file storage
func (s *AdopterService) PublishReport(ctx context.Context, n int) (string, error) {
	if s.storage == nil {
		return "", domain.NewError(domain.KindUnknown, "publishReport", "file storage is not configured")
	}

	data, err := s.BuildReport(ctx, n)
	if err != nil {
		return "", err
	}

	key := path.Join(s.keyPrefix, fmt.Sprintf("top_adopters_%s.xlsx", s.now().UTC().Format("20060102_150405")))
	location, err := s.storage.Upload(ctx, key, bytes.NewReader(data), xlsxContentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	s.logger.InfoContext(ctx, "adopter report published",
		slog.String("key", key),
		slog.Int("size", len(data)),
	)
	return location, nil
}

func addHeader(sheet *xlsx.Sheet, titles ...string) {
	row := sheet.AddRow()
	for _, title := range titles {
		cell := row.AddCell()
		cell.SetString(title)
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}
	sheet.SetColWidth(1, len(titles), 18)
}
