// internal/adapters/db/repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strings"

	"github.com/Masterminds/squirrel"
)

// BaseRepository is a table gateway bound to one table and its key column.
// Column names passed in patches and conditions are checked against the
// record's declared columns before any SQL is built.
type BaseRepository[T Record] struct {
	db      querier
	table   string
	key     string
	newFn   func() T
	columns []string
	allowed map[string]struct{}
	logger  *slog.Logger
}

// NewRepository creates a gateway for table, keyed by key
func NewRepository[T Record](database *Database, table, key string, newFn func() T, logger *slog.Logger) *BaseRepository[T] {
	columns := newFn().Columns()
	allowed := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		allowed[c] = struct{}{}
	}

	return &BaseRepository[T]{
		db:      database.sql,
		table:   table,
		key:     key,
		newFn:   newFn,
		columns: columns,
		allowed: allowed,
		logger:  logger.With(slog.String("repository", table)),
	}
}

// WithTx returns a copy of the gateway that runs on tx
func (r *BaseRepository[T]) WithTx(tx *sql.Tx) *BaseRepository[T] {
	clone := *r
	clone.db = tx
	return &clone
}

// Table returns the gateway's table name
func (r *BaseRepository[T]) Table() string {
	return r.table
}

// Key returns the gateway's key column
func (r *BaseRepository[T]) Key() string {
	return r.key
}

func (r *BaseRepository[T]) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *BaseRepository[T]) selectAll() squirrel.SelectBuilder {
	return r.builder().Select(r.columns...).From(r.table)
}

func (r *BaseRepository[T]) returning() string {
	return "RETURNING " + strings.Join(r.columns, ", ")
}

func (r *BaseRepository[T]) op(name string) string {
	return r.table + "." + name
}

func (r *BaseRepository[T]) checkColumn(op, column string) error {
	if _, ok := r.allowed[column]; !ok {
		return validationError(op, "unknown column %q", column)
	}
	return nil
}

func (r *BaseRepository[T]) checkWhere(op string, where Where) error {
	if len(where) == 0 {
		return validationError(op, "at least one condition is required")
	}
	for col := range where {
		if err := r.checkColumn(op, col); err != nil {
			return err
		}
	}
	return nil
}

func (r *BaseRepository[T]) checkPatch(op string, patch Patch) error {
	if len(patch) == 0 {
		return validationError(op, "nothing to update")
	}
	for col := range patch {
		if err := r.checkColumn(op, col); err != nil {
			return err
		}
	}
	return nil
}

// fail logs and classifies a query error
func (r *BaseRepository[T]) fail(ctx context.Context, op string, err error) error {
	err = classify(op, err)
	r.logger.ErrorContext(ctx, "query failed",
		slog.String("op", op),
		slog.Any("error", err),
	)
	return err
}

func (r *BaseRepository[T]) queryMany(ctx context.Context, op string, qb squirrel.Sqlizer) ([]T, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}

	results, err := scanRecords(rows, r.newFn)
	if err != nil {
		return nil, r.fail(ctx, op, err)
	}

	return results, nil
}

func (r *BaseRepository[T]) queryOne(ctx context.Context, op string, qb squirrel.Sqlizer) (T, error) {
	var zero T

	query, args, err := qb.ToSql()
	if err != nil {
		return zero, fmt.Errorf("failed to build query: %w", err)
	}

	rec := r.newFn()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(rec.Pointers()...); err != nil {
		if isNoRows(err) {
			return zero, nil
		}
		return zero, r.fail(ctx, op, err)
	}

	return rec, nil
}

// FindAll returns every row ordered by the key column
func (r *BaseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	return r.queryMany(ctx, r.op("findAll"), r.selectAll().OrderBy(r.key))
}

// FindAllWithPagination returns one page of rows ordered by the key column.
// Pages start at 1; the offset is (page-1)*limit.
func (r *BaseRepository[T]) FindAllWithPagination(ctx context.Context, limit, page int) ([]T, error) {
	op := r.op("findAllWithPagination")
	if limit <= 0 {
		return nil, validationError(op, "limit must be positive")
	}
	if page < 1 {
		page = 1
	}
	if page-1 > math.MaxInt/limit {
		return nil, validationError(op, "page %d is out of range", page)
	}

	qb := r.selectAll().
		OrderBy(r.key).
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	return r.queryMany(ctx, op, qb)
}

// Count returns the number of rows in the table
func (r *BaseRepository[T]) Count(ctx context.Context) (int64, error) {
	query, args, err := r.builder().Select("COUNT(*)").From(r.table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, r.fail(ctx, r.op("count"), err)
	}
	return count, nil
}

// Create inserts rec and returns the stored row
func (r *BaseRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	return r.insert(ctx, rec.Values())
}

// insert writes one row from values given in declared column order
func (r *BaseRepository[T]) insert(ctx context.Context, values []any) (T, error) {
	qb := r.builder().
		Insert(r.table).
		Columns(r.columns...).
		Values(values...).
		Suffix(r.returning())

	created, err := r.queryOne(ctx, r.op("create"), qb)
	if err != nil {
		return created, err
	}

	r.logger.DebugContext(ctx, "row created", slog.String("table", r.table))
	return created, nil
}

// FindBy returns the first row where column = value, or nil
func (r *BaseRepository[T]) FindBy(ctx context.Context, column string, value any) (T, error) {
	op := r.op("findBy")
	if err := r.checkColumn(op, column); err != nil {
		var zero T
		return zero, err
	}

	qb := r.selectAll().
		Where(squirrel.Eq{column: value}).
		OrderBy(r.key).
		Limit(1)

	return r.queryOne(ctx, op, qb)
}

// FindMany returns every row where column = value
func (r *BaseRepository[T]) FindMany(ctx context.Context, column string, value any) ([]T, error) {
	op := r.op("findMany")
	if err := r.checkColumn(op, column); err != nil {
		return nil, err
	}

	return r.queryMany(ctx, op, r.selectAll().Where(squirrel.Eq{column: value}).OrderBy(r.key))
}

// FindWhere returns rows matching every condition
func (r *BaseRepository[T]) FindWhere(ctx context.Context, where Where) ([]T, error) {
	op := r.op("findWhere")
	if err := r.checkWhere(op, where); err != nil {
		return nil, err
	}

	return r.queryMany(ctx, op, r.selectAll().Where(squirrel.Eq(where)).OrderBy(r.key))
}

// Update sets the patch's columns on the row where column = value and
// returns the full updated row, or nil when nothing matched. The lookup
// column may appear in the patch only with its current value.
func (r *BaseRepository[T]) Update(ctx context.Context, column string, value any, patch Patch) (T, error) {
	var zero T
	op := r.op("update")

	if err := r.checkColumn(op, column); err != nil {
		return zero, err
	}

	set := make(Patch, len(patch))
	for col, v := range patch {
		if col == column {
			if !sameValue(v, value) {
				return zero, validationError(op, "column %q is the lookup key and cannot be changed", column)
			}
			continue
		}
		set[col] = v
	}
	if err := r.checkPatch(op, set); err != nil {
		return zero, err
	}

	qb := r.builder().
		Update(r.table).
		SetMap(set).
		Where(squirrel.Eq{column: value}).
		Suffix(r.returning())

	updated, err := r.queryOne(ctx, op, qb)
	if err != nil {
		return zero, err
	}

	r.logger.DebugContext(ctx, "row updated",
		slog.String("table", r.table),
		slog.Bool("matched", !isNil(updated)),
	)
	return updated, nil
}

// UpdateMultiple sets the patch's columns on every row matching where and
// returns the updated rows
func (r *BaseRepository[T]) UpdateMultiple(ctx context.Context, where Where, patch Patch) ([]T, error) {
	op := r.op("updateMultiple")
	if err := r.checkWhere(op, where); err != nil {
		return nil, err
	}
	if err := r.checkPatch(op, patch); err != nil {
		return nil, err
	}

	qb := r.builder().
		Update(r.table).
		SetMap(patch).
		Where(squirrel.Eq(where)).
		Suffix(r.returning())

	updated, err := r.queryMany(ctx, op, qb)
	if err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "rows updated",
		slog.String("table", r.table),
		slog.Int("count", len(updated)),
	)
	return updated, nil
}

// Delete removes rows where column = value and returns the first removed
// row, or nil when nothing matched
func (r *BaseRepository[T]) Delete(ctx context.Context, column string, value any) (T, error) {
	var zero T
	op := r.op("delete")

	if err := r.checkColumn(op, column); err != nil {
		return zero, err
	}

	qb := r.builder().
		Delete(r.table).
		Where(squirrel.Eq{column: value}).
		Suffix(r.returning())

	deleted, err := r.queryMany(ctx, op, qb)
	if err != nil {
		return zero, err
	}
	if len(deleted) == 0 {
		return zero, nil
	}

	r.logger.DebugContext(ctx, "rows deleted",
		slog.String("table", r.table),
		slog.Int("count", len(deleted)),
	)
	return deleted[0], nil
}

// DeleteWhere removes every row matching where and returns them
func (r *BaseRepository[T]) DeleteWhere(ctx context.Context, where Where) ([]T, error) {
	op := r.op("deleteWhere")
	if err := r.checkWhere(op, where); err != nil {
		return nil, err
	}

	qb := r.builder().
		Delete(r.table).
		Where(squirrel.Eq(where)).
		Suffix(r.returning())

	return r.queryMany(ctx, op, qb)
}

// CustomQuery runs raw SQL and returns untyped rows
func (r *BaseRepository[T]) CustomQuery(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.fail(ctx, r.op("customQuery"), err)
	}

	out, err := scanRows(rows)
	if err != nil {
		return nil, r.fail(ctx, r.op("customQuery"), err)
	}
	return out, nil
}

// Query runs raw SQL and returns the first row, or nil
func (r *BaseRepository[T]) Query(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := r.CustomQuery(ctx, query, args...)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func sameValue(a, b any) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
