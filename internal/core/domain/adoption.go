// internal/core/domain/adoption.go
package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

// Adopter subtypes as resolved by the adopter details query
const (
	AdopterIndividual   = "individu"
	AdopterOrganization = "organisasi"
	AdopterUnknown      = "Unknown"
)

// Payment statuses for adoptions
const (
	PaymentPaid    = "Lunas"
	PaymentPending = "Tertunda"
)

// Adopter is a row of adopter
type Adopter struct {
	ID                uuid.UUID       `json:"id_adopter"`
	Username          string          `json:"username_adopter"`
	TotalContribution decimal.Decimal `json:"total_kontribusi"`
}

func (a *Adopter) Columns() []string { return []string{"id_adopter", "username_adopter", "total_kontribusi"} }
func (a *Adopter) Values() []any     { return []any{a.ID, a.Username, a.TotalContribution} }
func (a *Adopter) Pointers() []any   { return []any{&a.ID, &a.Username, &a.TotalContribution} }

// Individual is a row of individu
type Individual struct {
	NIK       string    `json:"nik"`
	Name      string    `json:"nama"`
	AdopterID uuid.UUID `json:"id_adopter"`
}

func (i *Individual) Columns() []string { return []string{"nik", "nama", "id_adopter"} }
func (i *Individual) Values() []any     { return []any{i.NIK, i.Name, i.AdopterID} }
func (i *Individual) Pointers() []any   { return []any{&i.NIK, &i.Name, &i.AdopterID} }

// Organization is a row of organisasi
type Organization struct {
	NPP       string    `json:"npp"`
	Name      string    `json:"nama_organisasi"`
	AdopterID uuid.UUID `json:"id_adopter"`
}

func (o *Organization) Columns() []string { return []string{"npp", "nama_organisasi", "id_adopter"} }
func (o *Organization) Values() []any     { return []any{o.NPP, o.Name, o.AdopterID} }
func (o *Organization) Pointers() []any   { return []any{&o.NPP, &o.Name, &o.AdopterID} }

// Adoption is a row of adopsi
type Adoption struct {
	AdopterID     uuid.UUID       `json:"id_adopter"`
	AnimalID      uuid.UUID       `json:"id_hewan"`
	PaymentStatus string          `json:"status_pembayaran"`
	StartDate     time.Time       `json:"tgl_mulai_adopsi"`
	EndDate       time.Time       `json:"tgl_berhenti_adopsi"`
	Contribution  decimal.Decimal `json:"kontribusi_finansial"`
}

func (a *Adoption) Columns() []string {
	return []string{"id_adopter", "id_hewan", "status_pembayaran", "tgl_mulai_adopsi", "tgl_berhenti_adopsi", "kontribusi_finansial"}
}

func (a *Adoption) Values() []any {
	return []any{a.AdopterID, a.AnimalID, a.PaymentStatus, a.StartDate, a.EndDate, a.Contribution}
}

func (a *Adoption) Pointers() []any {
	return []any{&a.AdopterID, &a.AnimalID, &a.PaymentStatus, &a.StartDate, &a.EndDate, &a.Contribution}
}

// UnmarshalJSON reads the adoption period as calendar dates
func (a *Adoption) UnmarshalJSON(data []byte) error {
	type plain Adoption
	aux := struct {
		*plain
		StartDate string `json:"tgl_mulai_adopsi"`
		EndDate   string `json:"tgl_berhenti_adopsi"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if aux.StartDate != "" {
		if a.StartDate, err = compositekey.ParseDate(aux.StartDate); err != nil {
			return fmt.Errorf("tgl_mulai_adopsi: %w", err)
		}
	}
	if aux.EndDate != "" {
		if a.EndDate, err = compositekey.ParseDate(aux.EndDate); err != nil {
			return fmt.Errorf("tgl_berhenti_adopsi: %w", err)
		}
	}
	return nil
}

// IsActive reports whether the adoption covers the given instant
func (a *Adoption) IsActive(at time.Time) bool {
	return !at.Before(a.StartDate) && at.Before(a.EndDate)
}

// AdopterDetails is an adopter resolved to its individual or organization subtype
type AdopterDetails struct {
	Adopter
	Name string `json:"nama"`
	Type string `json:"type"`
}

// TopAdopter is one entry of the contribution leaderboard
type TopAdopter struct {
	Adopter
	Name string `json:"nama"`
	Rank int    `json:"rank"`
}
