// internal/adapters/db/adoption_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

var adoptionKey = compositekey.Shape{
	{Column: "id_adopter", Kind: compositekey.KindUUID},
	{Column: "id_hewan", Kind: compositekey.KindUUID},
	{Column: "tgl_mulai_adopsi", Kind: compositekey.KindDate},
}

// AdoptionRepository is the gateway for adopsi
type AdoptionRepository struct {
	*CompositeRepository[*domain.Adoption]
}

// NewAdoptionRepository creates a new adoption repository
func NewAdoptionRepository(database *Database, logger *slog.Logger) *AdoptionRepository {
	return &AdoptionRepository{
		CompositeRepository: NewCompositeRepository(database, "adopsi", adoptionKey, func() *domain.Adoption { return &domain.Adoption{} }, logger),
	}
}

// Create inserts an adoption after checking its period and contribution
func (r *AdoptionRepository) Create(ctx context.Context, a *domain.Adoption) (*domain.Adoption, error) {
	op := r.op("create")
	if !a.EndDate.After(a.StartDate) {
		return nil, validationError(op, "tgl_berhenti_adopsi must be after tgl_mulai_adopsi")
	}
	if a.Contribution.IsNegative() {
		return nil, validationError(op, "kontribusi_finansial cannot be negative")
	}
	if a.PaymentStatus == "" {
		a.PaymentStatus = domain.PaymentPending
	}
	return r.CompositeRepository.Create(ctx, a)
}

// FindByAnimal returns the animal's adoptions, newest first
func (r *AdoptionRepository) FindByAnimal(ctx context.Context, animalID any) ([]*domain.Adoption, error) {
	key, err := compositekey.Shape{adoptionKey[1]}.Normalize(animalID)
	if err != nil {
		return nil, validationError(r.op("findByAnimal"), "%v", err)
	}

	qb := r.selectAll().
		Where("id_hewan = ?", key.Values()[0]).
		OrderBy("tgl_mulai_adopsi DESC")

	return r.queryMany(ctx, r.op("findByAnimal"), qb)
}

// ListAll returns every adoption, newest first
func (r *AdoptionRepository) ListAll(ctx context.Context) ([]*domain.Adoption, error) {
	return r.queryMany(ctx, r.op("listAll"), r.selectAll().OrderBy("tgl_mulai_adopsi DESC", "id_adopter"))
}

// AdopterRepository is the gateway for adopter
type AdopterRepository struct {
	*BaseRepository[*domain.Adopter]
}

// NewAdopterRepository creates a new adopter repository
func NewAdopterRepository(database *Database, logger *slog.Logger) *AdopterRepository {
	return &AdopterRepository{
		BaseRepository: NewRepository(database, "adopter", "id_adopter", func() *domain.Adopter { return &domain.Adopter{} }, logger),
	}
}

// TopAdopters returns the n adopters with the highest total contribution
func (r *AdopterRepository) TopAdopters(ctx context.Context, n int) ([]domain.TopAdopter, error) {
	op := r.op("topAdopters")
	if n <= 0 {
		return nil, validationError(op, "limit must be positive")
	}

	query := `
		SELECT a.id_adopter, a.username_adopter, a.total_kontribusi,
			COALESCE(i.nama, o.nama_organisasi, a.username_adopter) AS nama,
			RANK() OVER (ORDER BY a.total_kontribusi DESC) AS peringkat
		FROM adopter a
		LEFT JOIN individu i ON i.id_adopter = a.id_adopter
		LEFT JOIN organisasi o ON o.id_adopter = a.id_adopter
		ORDER BY a.total_kontribusi DESC, a.username_adopter
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}
	defer rows.Close()

	var results []domain.TopAdopter
	for rows.Next() {
		var t domain.TopAdopter
		dest := append(t.Adopter.Pointers(), &t.Name, &t.Rank)
		if err := rows.Scan(dest...); err != nil {
			return nil, r.fail(ctx, op, fmt.Errorf("failed to scan adopter: %w", err))
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, op, err)
	}

	return results, nil
}

// GetAdopterWithDetails returns the adopter resolved to its subtype, or nil.
// Type is "individu", "organisasi", or "Unknown" when neither row exists.
func (r *AdopterRepository) GetAdopterWithDetails(ctx context.Context, id any) (*domain.AdopterDetails, error) {
	op := r.op("getAdopterWithDetails")

	key, err := compositekey.Shape{{Column: "id_adopter", Kind: compositekey.KindUUID}}.Normalize(id)
	if err != nil {
		return nil, validationError(op, "%v", err)
	}

	query := `
		SELECT a.id_adopter, a.username_adopter, a.total_kontribusi,
			COALESCE(i.nama, o.nama_organisasi, '') AS nama,
			CASE
				WHEN i.nik IS NOT NULL THEN 'individu'
				WHEN o.npp IS NOT NULL THEN 'organisasi'
				ELSE 'Unknown'
			END AS type
		FROM adopter a
		LEFT JOIN individu i ON i.id_adopter = a.id_adopter
		LEFT JOIN organisasi o ON o.id_adopter = a.id_adopter
		WHERE a.id_adopter = $1`

	var d domain.AdopterDetails
	dest := append(d.Adopter.Pointers(), &d.Name, &d.Type)
	if err := r.db.QueryRowContext(ctx, query, key.Values()[0]).Scan(dest...); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, r.fail(ctx, op, err)
	}

	return &d, nil
}
