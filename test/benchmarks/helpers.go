// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/sizopi-be/internal/core/domain"
)

// rawFeedingKeys returns feeding keys in the mixed forms clients send:
// uuid strings and values, date-only, space and T separated timestamps
func rawFeedingKeys(n int) [][2]any {
	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	keys := make([][2]any, n)
	for i := range keys {
		id := uuid.New()
		at := base.Add(time.Duration(i) * time.Hour)

		switch i % 4 {
		case 0:
			keys[i] = [2]any{id.String(), at.Format("2006-01-02 15:04:05")}
		case 1:
			keys[i] = [2]any{id, at.Format("2006-01-02T15:04:05")}
		case 2:
			keys[i] = [2]any{id.String(), at.Format(time.RFC3339)}
		default:
			keys[i] = [2]any{id, at}
		}
	}
	return keys
}

// createAdoptions returns n paid adoptions spread over the year
func createAdoptions(n int) []*domain.Adoption {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	out := make([]*domain.Adoption, n)
	for i := range out {
		begin := start.AddDate(0, 0, i%365)
		out[i] = &domain.Adoption{
			AdopterID:     uuid.New(),
			AnimalID:      uuid.New(),
			PaymentStatus: domain.PaymentPaid,
			StartDate:     begin,
			EndDate:       begin.AddDate(0, 6, 0),
			Contribution:  decimal.NewFromInt(int64(250_000 * (i%20 + 1))),
		}
	}
	return out
}

func createTopAdopters(n int) []domain.TopAdopter {
	out := make([]domain.TopAdopter, n)
	for i := range out {
		out[i] = domain.TopAdopter{
			Adopter: domain.Adopter{
				ID:                uuid.New(),
				Username:          fmt.Sprintf("adopter%03d", i+1),
				TotalContribution: decimal.NewFromInt(int64((n - i) * 500_000)),
			},
			Name: fmt.Sprintf("Adopter %03d", i+1),
			Rank: i + 1,
		}
	}
	return out
}
