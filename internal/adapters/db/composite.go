// internal/adapters/db/composite.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

// CompositeRepository is a gateway for tables whose primary key spans
// several columns. Raw key values pass through the shared normalizer, so a
// date written as "2025-06-01" or "2025-06-01T00:00:00" addresses the same row.
type CompositeRepository[T Record] struct {
	*BaseRepository[T]
	shape    compositekey.Shape
	database *Database
	keyIdx   []int
}

// NewCompositeRepository creates a gateway keyed by shape. The first key
// column doubles as the ordering column.
func NewCompositeRepository[T Record](database *Database, table string, shape compositekey.Shape, newFn func() T, logger *slog.Logger) *CompositeRepository[T] {
	base := NewRepository(database, table, shape[0].Column, newFn, logger)

	keyIdx := make([]int, len(shape))
	for i, part := range shape {
		keyIdx[i] = -1
		for j, col := range base.columns {
			if col == part.Column {
				keyIdx[i] = j
				break
			}
		}
		if keyIdx[i] < 0 {
			panic("composite key column " + part.Column + " is not declared by " + table)
		}
	}

	return &CompositeRepository[T]{
		BaseRepository: base,
		shape:          shape,
		database:       database,
		keyIdx:         keyIdx,
	}
}

// WithTx returns a copy of the gateway that runs on tx
func (r *CompositeRepository[T]) WithTx(tx *sql.Tx) *CompositeRepository[T] {
	clone := *r
	clone.BaseRepository = r.BaseRepository.WithTx(tx)
	return &clone
}

// Shape returns the key columns
func (r *CompositeRepository[T]) Shape() compositekey.Shape {
	return r.shape
}

// NormalizeKey converts raw key values to the canonical key
func (r *CompositeRepository[T]) NormalizeKey(raw ...any) (compositekey.Key, error) {
	key, err := r.shape.Normalize(raw...)
	if err != nil {
		return compositekey.Key{}, &domain.Error{
			Kind:    domain.KindValidation,
			Op:      r.op("key"),
			Message: err.Error(),
			Err:     err,
		}
	}
	return key, nil
}

// keyOf extracts and normalizes the key of rec
func (r *CompositeRepository[T]) keyOf(rec T) (compositekey.Key, []any, error) {
	values := rec.Values()
	raw := make([]any, len(r.keyIdx))
	for i, idx := range r.keyIdx {
		raw[i] = values[idx]
	}

	key, err := r.NormalizeKey(raw...)
	if err != nil {
		return key, nil, err
	}

	for i, v := range key.Values() {
		values[r.keyIdx[i]] = v
	}
	return key, values, nil
}

// normalizePatch rewrites key columns present in patch to canonical values
func (r *CompositeRepository[T]) normalizePatch(patch Patch) (Patch, error) {
	out := make(Patch, len(patch))
	for col, v := range patch {
		out[col] = v
	}
	for _, part := range r.shape {
		v, ok := out[part.Column]
		if !ok {
			continue
		}
		single := compositekey.Shape{part}
		key, err := single.Normalize(v)
		if err != nil {
			return nil, validationError(r.op("patch"), "%v", err)
		}
		out[part.Column] = key.Values()[0]
	}
	return out, nil
}

// Create inserts rec with its key normalized
func (r *CompositeRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	_, values, err := r.keyOf(rec)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.insert(ctx, values)
}

// CreateWithCompositeCheck inserts rec unless a row with the same key
// exists, in which case it fails with KindAlreadyExists
func (r *CompositeRepository[T]) CreateWithCompositeCheck(ctx context.Context, rec T) (T, error) {
	var zero T
	op := r.op("createWithCompositeCheck")

	key, values, err := r.keyOf(rec)
	if err != nil {
		return zero, err
	}

	existing, err := r.FindWhere(ctx, Where(key.Map()))
	if err != nil {
		return zero, err
	}
	if len(existing) > 0 {
		return zero, domain.NewError(domain.KindAlreadyExists, op, "row with key %s already exists", key)
	}

	created, err := r.insert(ctx, values)
	if err != nil {
		// lost a race with a concurrent insert
		var de *domain.Error
		if errors.As(err, &de) && de.Code == "23505" {
			return zero, &domain.Error{Kind: domain.KindAlreadyExists, Code: de.Code, Op: op, Message: de.Message, Err: err}
		}
		return zero, err
	}
	return created, nil
}

// FindByKey returns the row with the given key, or nil
func (r *CompositeRepository[T]) FindByKey(ctx context.Context, raw ...any) (T, error) {
	var zero T

	key, err := r.NormalizeKey(raw...)
	if err != nil {
		return zero, err
	}

	rows, err := r.FindWhere(ctx, Where(key.Map()))
	if err != nil || len(rows) == 0 {
		return zero, err
	}
	return rows[0], nil
}

// UpdateByKey applies patch to the row with the given key and returns the
// updated row, or nil when no row has that key
func (r *CompositeRepository[T]) UpdateByKey(ctx context.Context, patch Patch, raw ...any) (T, error) {
	var zero T

	key, err := r.NormalizeKey(raw...)
	if err != nil {
		return zero, err
	}
	patch, err = r.normalizePatch(patch)
	if err != nil {
		return zero, err
	}

	rows, err := r.UpdateMultiple(ctx, Where(key.Map()), patch)
	if err != nil || len(rows) == 0 {
		return zero, err
	}
	return rows[0], nil
}

// DeleteByKey removes the row with the given key and returns it, or nil
func (r *CompositeRepository[T]) DeleteByKey(ctx context.Context, raw ...any) (T, error) {
	var zero T

	key, err := r.NormalizeKey(raw...)
	if err != nil {
		return zero, err
	}

	rows, err := r.DeleteWhere(ctx, Where(key.Map()))
	if err != nil || len(rows) == 0 {
		return zero, err
	}
	return rows[0], nil
}

// CreateWithNotices inserts rec in a transaction and returns the NOTICE
// messages raised by the table's triggers
func (r *CompositeRepository[T]) CreateWithNotices(ctx context.Context, rec T) (T, []string, error) {
	var created T

	_, values, err := r.keyOf(rec)
	if err != nil {
		return created, nil, err
	}

	notices, err := r.database.WithNotices(ctx, func(tx *sql.Tx) error {
		var err error
		created, err = r.WithTx(tx).insert(ctx, values)
		return err
	})
	if err != nil {
		var zero T
		return zero, nil, err
	}

	return created, notices, nil
}

// UpdateWithNotices applies patch to the row with the given key in a
// transaction and returns the NOTICE messages raised by the table's triggers
func (r *CompositeRepository[T]) UpdateWithNotices(ctx context.Context, patch Patch, raw ...any) (T, []string, error) {
	var updated T

	notices, err := r.database.WithNotices(ctx, func(tx *sql.Tx) error {
		var err error
		updated, err = r.WithTx(tx).UpdateByKey(ctx, patch, raw...)
		return err
	})
	if err != nil {
		var zero T
		return zero, nil, err
	}

	return updated, notices, nil
}
