// internal/handlers/resource.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
	maxPage         = 1_000_000
)

type validatable interface {
	Validate() error
}

type preparable interface {
	PrepareForStorage()
}

// ResourceHandler serves list/get/create/patch/delete for a single-key table
type ResourceHandler[T any] struct {
	name   string
	key    string
	store  ports.Store[T]
	newFn  func() T
	logger *slog.Logger
}

// NewResourceHandler creates a CRUD handler over store. key is the column
// the {key} path segment addresses.
func NewResourceHandler[T any](name, key string, store ports.Store[T], newFn func() T, logger *slog.Logger) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		name:   name,
		key:    key,
		store:  store,
		newFn:  newFn,
		logger: logger.With(slog.String("handler", name)),
	}
}

// Register mounts the handler's routes under prefix
func (h *ResourceHandler[T]) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix, h.List)
	mux.HandleFunc("POST "+prefix, h.Create)
	mux.HandleFunc("GET "+prefix+"/{key}", h.Get)
	mux.HandleFunc("PATCH "+prefix+"/{key}", h.Update)
	mux.HandleFunc("DELETE "+prefix+"/{key}", h.Delete)
}

// ListResponse is a page of rows
type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page,omitempty"`
	Limit int   `json:"limit,omitempty"`
}

// List handles GET /{resource}. Without page or limit every row is returned.
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if q.Get("page") == "" && q.Get("limit") == "" {
		rows, err := h.store.FindAll(ctx)
		if err != nil {
			respondFailure(ctx, h.logger, w, "failed to list "+h.name, err)
			return
		}
		respondJSON(ctx, h.logger, w, http.StatusOK, ListResponse[T]{Data: rows, Total: int64(len(rows))})
		return
	}

	page, err := queryInt(r, "page", 1)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid page", err)
		return
	}
	limit, err := queryInt(r, "limit", defaultPageSize)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid limit", err)
		return
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		respondFailure(ctx, h.logger, w, "invalid page",
			domain.NewError(domain.KindValidation, "query", "page must be at most %d", maxPage))
		return
	}

	rows, err := h.store.FindAllWithPagination(ctx, limit, page)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to list "+h.name, err)
		return
	}
	total, err := h.store.Count(ctx)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to count "+h.name, err)
		return
	}

	respondJSON(ctx, h.logger, w, http.StatusOK, ListResponse[T]{Data: rows, Total: total, Page: page, Limit: limit})
}

// Get handles GET /{resource}/{key}
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := r.PathValue("key")

	row, err := h.store.FindBy(ctx, h.key, key)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to get "+h.name, err)
		return
	}
	if isNil(row) {
		respondFailure(ctx, h.logger, w, "lookup missed", notFound("get", h.name, key))
		return
	}

	respondJSON(ctx, h.logger, w, http.StatusOK, row)
}

// Create handles POST /{resource}
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec := h.newFn()
	if err := decodeJSON(w, r, rec); err != nil {
		respondFailure(ctx, h.logger, w, "invalid body", err)
		return
	}

	if p, ok := any(rec).(preparable); ok {
		p.PrepareForStorage()
	}
	if v, ok := any(rec).(validatable); ok {
		if err := v.Validate(); err != nil {
			respondFailure(ctx, h.logger, w, "invalid "+h.name, domain.NewError(domain.KindValidation, "create", "%v", err))
			return
		}
	}

	created, err := h.store.Create(ctx, rec)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to create "+h.name, err)
		return
	}

	h.logger.InfoContext(ctx, h.name+" created")
	respondJSON(ctx, h.logger, w, http.StatusCreated, created)
}

// Update handles PATCH /{resource}/{key}
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := r.PathValue("key")

	patch, err := decodePatch(w, r)
	if err != nil {
		respondFailure(ctx, h.logger, w, "invalid patch", err)
		return
	}

	updated, err := h.store.Update(ctx, h.key, key, patch)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to update "+h.name, err)
		return
	}
	if isNil(updated) {
		respondFailure(ctx, h.logger, w, "update missed", notFound("update", h.name, key))
		return
	}

	respondJSON(ctx, h.logger, w, http.StatusOK, updated)
}

// Delete handles DELETE /{resource}/{key}
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := r.PathValue("key")

	deleted, err := h.store.Delete(ctx, h.key, key)
	if err != nil {
		respondFailure(ctx, h.logger, w, "failed to delete "+h.name, err)
		return
	}
	if isNil(deleted) {
		respondFailure(ctx, h.logger, w, "delete missed", notFound("delete", h.name, key))
		return
	}

	h.logger.InfoContext(ctx, h.name+" deleted", slog.String("key", key))
	respondJSON(ctx, h.logger, w, http.StatusOK, deleted)
}

// isNil reports whether a pointer row is the gateway's nil miss
func isNil[T any](v T) bool {
	var zero T
	return any(v) == any(zero)
}
