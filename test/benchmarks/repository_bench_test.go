//go:build integration
// +build integration

package benchmarks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/test/helpers"
)

func BenchmarkReservationOperations(b *testing.B) {
	testDB := helpers.SetupTestDB(b)
	gw := testDB.Gateways
	ctx := context.Background()

	_, err := gw.Facilities.Create(ctx, &domain.Facility{
		Name:        "Kereta Safari",
		Schedule:    time.Date(2025, time.August, 17, 9, 0, 0, 0, time.UTC),
		MaxCapacity: 1_000_000,
	})
	if err != nil {
		b.Fatal(err)
	}

	visitors := make([]string, 50)
	for i := range visitors {
		username := fmt.Sprintf("bench%03d", i)
		account := helpers.CreateTestAccount(func(a *domain.Account) {
			a.Username = username
			a.Email = username + "@example.com"
		})
		if _, err := gw.Accounts.RegisterVisitor(ctx, account, helpers.CreateTestVisitor()); err != nil {
			b.Fatal(err)
		}
		visitors[i] = username
	}

	b.Run("CreateWithCapacityCheck", func(b *testing.B) {
		start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err := gw.Reservations.CreateWithCapacityCheck(ctx, &domain.Reservation{
				VisitorUsername: visitors[i%len(visitors)],
				FacilityName:    "Kereta Safari",
				VisitDate:       start.AddDate(0, 0, i/len(visitors)),
				Tickets:         1,
			})
			if err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("RemainingCapacity", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := gw.Reservations.RemainingCapacity(ctx, "Kereta Safari", "2026-01-01"); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("GetRole", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := gw.Accounts.GetRole(ctx, visitors[i%len(visitors)]); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("HabitatPage", func(b *testing.B) {
		for i := 0; i < 200; i++ {
			h := helpers.CreateTestHabitat(func(h *domain.Habitat) { h.Name = fmt.Sprintf("Habitat %03d", i) })
			if _, err := gw.Habitats.Create(ctx, h); err != nil {
				b.Fatal(err)
			}
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := gw.Habitats.FindAllWithPagination(ctx, 50, i%4+1); err != nil {
				b.Fatal(err)
			}
		}
	})
}
