// internal/adapters/db/errors.go
package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/sizopi-be/internal/core/domain"
)

// classify tags err with a domain kind, keeping the SQLSTATE when the
// database supplied one. Errors that are already tagged pass through.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.Error{
			Kind:    kindForCode(pgErr.Code),
			Code:    pgErr.Code,
			Op:      op,
			Message: pgErr.Message,
			Err:     err,
		}
	}

	if isConnectivity(err) {
		return &domain.Error{Kind: domain.KindConnectivity, Op: op, Err: err}
	}

	return &domain.Error{Kind: domain.KindUnknown, Op: op, Err: err}
}

func kindForCode(code string) domain.ErrorKind {
	switch {
	case strings.HasPrefix(code, "23"):
		return domain.KindConstraintViolation
	case strings.HasPrefix(code, "08"),
		code == "57P01", code == "57P02", code == "57P03",
		code == "53300":
		return domain.KindConnectivity
	case code == "P0001", strings.HasPrefix(code, "22"):
		// raise_exception from triggers and malformed input values
		return domain.KindValidation
	default:
		return domain.KindUnknown
	}
}

func isConnectivity(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone)
}

func validationError(op, format string, args ...any) error {
	return domain.NewError(domain.KindValidation, op, format, args...)
}
