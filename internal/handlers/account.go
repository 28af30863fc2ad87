// internal/handlers/account.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

// AccountHandler handles login, registration and profile lookups
type AccountHandler struct {
	service ports.AccountService
	logger  *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service ports.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "account")),
	}
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   string  `json:"nama_depan"`
	MiddleName  *string `json:"nama_tengah,omitempty"`
	LastName    string  `json:"nama_belakang"`
	PhoneNumber string  `json:"no_telepon"`
	Address     string  `json:"alamat"`
	BirthDate   string  `json:"tgl_lahir"`
}

// ToDomain splits the request into the account and visitor rows
func (req *RegisterRequest) ToDomain() (*domain.Account, *domain.Visitor, error) {
	birth, err := compositekey.ParseDate(req.BirthDate)
	if err != nil {
		return nil, nil, domain.NewError(domain.KindValidation, "register", "tgl_lahir: %v", err)
	}

	account := &domain.Account{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	visitor := &domain.Visitor{
		Username:  req.Username,
		Address:   req.Address,
		BirthDate: birth,
	}
	return account, visitor, nil
}

// Login handles POST /api/v1/auth/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondFailure(ctx, h.logger, w, "invalid login body", err)
		return
	}

	session, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		respondFailure(ctx, h.logger, w, "login failed", err)
		return
	}

	respondJSON(ctx, h.logger, w, http.StatusOK, session)
}

// Register handles POST /api/v1/auth/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondFailure(ctx, h.logger, w, "invalid registration body", err)
		return
	}

	account, visitor, err := req.ToDomain()
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid registration", err)
		return
	}

	session, err := h.service.Register(ctx, account, visitor)
	if err != nil {
		respondFailure(ctx, h.logger, w, "registration failed", err)
		return
	}

	respondJSON(ctx, h.logger, w, http.StatusCreated, session)
}

// Profile handles GET /api/v1/users/{username}
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := h.service.Profile(ctx, r.PathValue("username"))
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to load profile", err)
		return
	}

	respondJSON(ctx, h.logger, w, http.StatusOK, account)
}

// Role handles GET /api/v1/users/{username}/role
func (h *AccountHandler) Role(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := r.PathValue("username")

	role, err := h.service.Role(ctx, username)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to resolve role", err)
		return
	}

	respondJSON(ctx, h.logger, w, http.StatusOK, map[string]any{
		"username": username,
		"role":     role,
		"is_staff": role.IsStaff(),
	})
}
