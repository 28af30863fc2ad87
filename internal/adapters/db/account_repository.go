// internal/adapters/db/account_repository.go
package db

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
)

// rolePriority is the order GetRole checks the staff tables in. The first
// table holding the username wins; accounts in none of them are visitors.
var rolePriority = []struct {
	role   domain.Role
	table  string
	column string
}{
	{domain.RoleAdmin, "staf_admin", "username_sa"},
	{domain.RoleVeterinarian, "dokter_hewan", "username_dh"},
	{domain.RoleTrainer, "pelatih_hewan", "username_lh"},
	{domain.RoleCaretaker, "penjaga_hewan", "username_jh"},
}

// AccountRepository is the gateway for pengguna
type AccountRepository struct {
	*BaseRepository[*domain.Account]
	database *Database
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates a new account repository
func NewAccountRepository(database *Database, logger *slog.Logger) *AccountRepository {
	return &AccountRepository{
		BaseRepository: NewRepository(database, "pengguna", "username", func() *domain.Account { return &domain.Account{} }, logger),
		database:       database,
	}
}

// FindByEmail returns the account with the given email, or nil
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.FindBy(ctx, "email", email)
}

// FindByUsername returns the account with the given username, or nil
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.FindBy(ctx, "username", username)
}

// UpdateByUsername patches the account and returns it, or nil
func (r *AccountRepository) UpdateByUsername(ctx context.Context, username string, patch Patch) (*domain.Account, error) {
	return r.Update(ctx, "username", username, patch)
}

// VerifyPassword checks candidate against the stored hash using the
// database's verifikasi_password function. Unknown users verify false.
func (r *AccountRepository) VerifyPassword(ctx context.Context, username, candidate string) (bool, error) {
	var ok sql.NullBool
	err := r.db.QueryRowContext(ctx, "SELECT verifikasi_password($1, $2)", username, candidate).Scan(&ok)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, r.fail(ctx, r.op("verifyPassword"), err)
	}

	return ok.Valid && ok.Bool, nil
}

// GetRole returns the highest-priority role the username holds
func (r *AccountRepository) GetRole(ctx context.Context, username string) (domain.Role, error) {
	for _, p := range rolePriority {
		var exists bool
		query := "SELECT EXISTS(SELECT 1 FROM " + p.table + " WHERE " + p.column + " = $1)"
		if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
			return "", r.fail(ctx, r.op("getRole"), err)
		}
		if exists {
			r.logger.DebugContext(ctx, "role resolved",
				slog.String("username", username),
				slog.String("role", string(p.role)),
			)
			return p.role, nil
		}
	}

	return domain.RoleVisitor, nil
}

// RegisterVisitor creates the account and its visitor row in one
// transaction. The returned account carries the stored password hash.
func (r *AccountRepository) RegisterVisitor(ctx context.Context, account *domain.Account, visitor *domain.Visitor) (*domain.Account, error) {
	visitors := NewRepository(r.database, "pengunjung", "username_p", func() *domain.Visitor { return &domain.Visitor{} }, r.logger)
	visitor.Username = account.Username
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))

	var created *domain.Account
	err := r.database.Transaction(ctx, func(tx *sql.Tx) error {
		var err error
		created, err = r.WithTx(tx).Create(ctx, account)
		if err != nil {
			return err
		}
		_, err = visitors.WithTx(tx).Create(ctx, visitor)
		return err
	})
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "visitor registered", slog.String("username", created.Username))
	return created, nil
}
