package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Classify wraps err with the sentinel matching its PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of codes.
//
//   - Class 28, invalid authorization: [ErrAuthFailed]
//   - 3D000 invalid catalog name: [ErrUnknownDatabase]
//   - Class 08 and 57P03: [ErrUnavailable]
//
// Errors that are not *pgconn.PgError, such as dial failures, are treated as
// [ErrUnavailable]. A nil err stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if sentinel := classifyPgError(pgErr); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	return err
}

func classifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	// Class 28: invalid authorization specification
	case pgerrcode.InvalidAuthorizationSpecification, // 28000
		pgerrcode.InvalidPassword: // 28P01
		return ErrAuthFailed

	// Class 3D: invalid catalog name
	case pgerrcode.InvalidCatalogName: // 3D000
		return ErrUnknownDatabase

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
		return ErrUnavailable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow, // 57P03
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown:
		return ErrUnavailable
	}

	return nil
}
