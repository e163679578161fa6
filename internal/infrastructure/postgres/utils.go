package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/frostkeep/freezer-api/internal/domain"
)

// isUniqueViolation reports whether err is a unique constraint violation (23505).
func isUniqueViolation(err error) bool {
	return hasSQLState(err, "23505")
}

// isForeignKeyViolation reports whether err is a foreign key violation (23503):
// a write referencing a row that does not exist.
func isForeignKeyViolation(err error) bool {
	return hasSQLState(err, "23503")
}

// isCheckViolation reports whether err is a check constraint violation (23514),
// e.g. non-positive weight or date_out before date_in.
func isCheckViolation(err error) bool {
	return hasSQLState(err, "23514")
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// wrapErr wraps a database error with the operation name, translating
// connectivity failures into domain.ErrUnavailable so clients know a retry may
// help.
func wrapErr(op string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
