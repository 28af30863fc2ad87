// internal/core/services/account.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
)

// AccountService handles login, profile and visitor registration
type AccountService struct {
	repo   ports.AccountRepository
	logger *slog.Logger
}

var _ ports.AccountService = (*AccountService)(nil)

// NewAccountService creates a new account service
func NewAccountService(repo ports.AccountRepository, logger *slog.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		logger: logger.With(slog.String("service", "account")),
	}
}

// Login verifies the password against the stored hash and resolves the
// account's role. Unknown users and wrong passwords fail the same way.
func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.NewError(domain.KindValidation, "login", "username and password are required")
	}

	ok, err := s.repo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.logger.WarnContext(ctx, "login rejected", slog.String("username", username))
		return nil, domain.ErrUnauthorized
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}

	role, err := s.repo.GetRole(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	s.logger.InfoContext(ctx, "login succeeded",
		slog.String("username", username),
		slog.String("role", string(role)),
	)

	return &domain.Session{Username: account.Username, Role: role, Name: account.FullName()}, nil
}

// Profile returns the account without its password hash
func (s *AccountService) Profile(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil {
		return nil, domain.NewError(domain.KindNotFound, "profile", "account %q not found", username)
	}

	account.Password = ""
	return account, nil
}

// Role returns the account's highest-priority role
func (s *AccountService) Role(ctx context.Context, username string) (domain.Role, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil {
		return "", domain.NewError(domain.KindNotFound, "role", "account %q not found", username)
	}

	return s.repo.GetRole(ctx, username)
}

// Register creates a visitor account and returns its session
func (s *AccountService) Register(ctx context.Context, account *domain.Account, visitor *domain.Visitor) (*domain.Session, error) {
	if err := account.Validate(); err != nil {
		return nil, domain.NewError(domain.KindValidation, "register", "%v", err)
	}
	if visitor.BirthDate.IsZero() {
		return nil, domain.NewError(domain.KindValidation, "register", "tgl_lahir is required")
	}

	existing, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(account.Email)))
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domain.NewError(domain.KindAlreadyExists, "register", "email %q is already registered", account.Email)
	}

	created, err := s.repo.RegisterVisitor(ctx, account, visitor)
	if err != nil {
		return nil, fmt.Errorf("failed to register visitor: %w", err)
	}

	return &domain.Session{Username: created.Username, Role: domain.RoleVisitor, Name: created.FullName()}, nil
}
