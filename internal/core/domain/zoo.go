// internal/core/domain/zoo.go
package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

// HealthStatus values recorded for animals
const (
	HealthHealthy  = "Sehat"
	HealthSick     = "Sakit"
	HealthRecovery = "Dalam Pemantauan"
)

// Habitat is a row of habitat
type Habitat struct {
	Name     string          `json:"nama"`
	Area     decimal.Decimal `json:"luas_area"`
	Capacity int             `json:"kapasitas"`
	Status   string          `json:"status"`
}

func (h *Habitat) Columns() []string { return []string{"nama", "luas_area", "kapasitas", "status"} }
func (h *Habitat) Values() []any     { return []any{h.Name, h.Area, h.Capacity, h.Status} }
func (h *Habitat) Pointers() []any   { return []any{&h.Name, &h.Area, &h.Capacity, &h.Status} }

// Validate performs domain validation on the habitat
func (h *Habitat) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("nama is required")
	}
	if !h.Area.IsPositive() {
		return fmt.Errorf("luas_area must be positive")
	}
	if h.Capacity <= 0 {
		return fmt.Errorf("kapasitas must be positive")
	}
	return nil
}

// Animal is a row of hewan
type Animal struct {
	ID           uuid.UUID  `json:"id"`
	Name         *string    `json:"nama,omitempty"`
	Species      string     `json:"spesies"`
	Origin       string     `json:"asal_hewan"`
	BirthDate    *time.Time `json:"tanggal_lahir,omitempty"`
	HealthStatus string     `json:"status_kesehatan"`
	HabitatName  *string    `json:"nama_habitat,omitempty"`
	PhotoURL     string     `json:"url_foto"`
}

func (a *Animal) Columns() []string {
	return []string{"id", "nama", "spesies", "asal_hewan", "tanggal_lahir", "status_kesehatan", "nama_habitat", "url_foto"}
}

func (a *Animal) Values() []any {
	return []any{a.ID, a.Name, a.Species, a.Origin, a.BirthDate, a.HealthStatus, a.HabitatName, a.PhotoURL}
}

func (a *Animal) Pointers() []any {
	return []any{&a.ID, &a.Name, &a.Species, &a.Origin, &a.BirthDate, &a.HealthStatus, &a.HabitatName, &a.PhotoURL}
}

// PrepareForStorage assigns an id and default health status
func (a *Animal) PrepareForStorage() {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.HealthStatus == "" {
		a.HealthStatus = HealthHealthy
	}
}

// UnmarshalJSON accepts tanggal_lahir in any layout the key normalizer
// understands, date-only included
func (a *Animal) UnmarshalJSON(data []byte) error {
	type plain Animal
	aux := struct {
		*plain
		BirthDate *string `json:"tanggal_lahir,omitempty"`
	}{plain: (*plain)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.BirthDate == nil || *aux.BirthDate == "" {
		return nil
	}

	birth, err := compositekey.ParseDate(*aux.BirthDate)
	if err != nil {
		return fmt.Errorf("tanggal_lahir: %w", err)
	}
	a.BirthDate = &birth
	return nil
}

// Facility is a row of fasilitas; attractions and rides are facilities
type Facility struct {
	Name        string    `json:"nama"`
	Schedule    time.Time `json:"jadwal"`
	MaxCapacity int       `json:"kapasitas_max"`
}

func (f *Facility) Columns() []string { return []string{"nama", "jadwal", "kapasitas_max"} }
func (f *Facility) Values() []any     { return []any{f.Name, f.Schedule, f.MaxCapacity} }
func (f *Facility) Pointers() []any   { return []any{&f.Name, &f.Schedule, &f.MaxCapacity} }

// UnmarshalJSON accepts jadwal with a space or T separator and with or
// without a zone
func (f *Facility) UnmarshalJSON(data []byte) error {
	type plain Facility
	aux := struct {
		*plain
		Schedule string `json:"jadwal"`
	}{plain: (*plain)(f)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Schedule == "" {
		return nil
	}

	schedule, err := compositekey.ParseTime(aux.Schedule)
	if err != nil {
		return fmt.Errorf("jadwal: %w", err)
	}
	f.Schedule = schedule
	return nil
}

// Attraction is a row of atraksi
type Attraction struct {
	Name     string `json:"nama_atraksi"`
	Location string `json:"lokasi"`
}

func (a *Attraction) Columns() []string { return []string{"nama_atraksi", "lokasi"} }
func (a *Attraction) Values() []any     { return []any{a.Name, a.Location} }
func (a *Attraction) Pointers() []any   { return []any{&a.Name, &a.Location} }

// Ride is a row of wahana
type Ride struct {
	Name  string `json:"nama_wahana"`
	Rules string `json:"peraturan"`
}

func (r *Ride) Columns() []string { return []string{"nama_wahana", "peraturan"} }
func (r *Ride) Values() []any     { return []any{r.Name, r.Rules} }
func (r *Ride) Pointers() []any   { return []any{&r.Name, &r.Rules} }

// Participation is a row of berpartisipasi linking animals to facilities
type Participation struct {
	FacilityName string    `json:"nama_fasilitas"`
	AnimalID     uuid.UUID `json:"id_hewan"`
}

func (p *Participation) Columns() []string { return []string{"nama_fasilitas", "id_hewan"} }
func (p *Participation) Values() []any     { return []any{p.FacilityName, p.AnimalID} }
func (p *Participation) Pointers() []any   { return []any{&p.FacilityName, &p.AnimalID} }
