// internal/adapters/db/record.go
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ammerola/sizopi-be/internal/core/domain"
)

// Record is a typed row that declares its own column schema. Values and
// Pointers must follow the order of Columns.
type Record interface {
	Columns() []string
	Values() []any
	Pointers() []any
}

// Row is an untyped result row keyed by column name
type Row map[string]any

// Patch holds the columns to change in an update
type Patch = domain.Patch

// Where holds column equality conditions joined with AND
type Where = domain.Where

// QueryResult is the outcome of a raw query
type QueryResult struct {
	Rows     []Row `json:"rows"`
	RowCount int64 `json:"rowCount"`
}

// querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// scanRows collects untyped rows, turning byte slices into strings
func scanRows(rows *sql.Rows) ([]Row, error) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// scanRecords scans every row into a fresh record from newFn
func scanRecords[T Record](rows *sql.Rows, newFn func() T) ([]T, error) {
	defer rows.Close()

	var results []T
	for rows.Next() {
		rec := newFn()
		if err := rows.Scan(rec.Pointers()...); err != nil {
			return nil, err
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
