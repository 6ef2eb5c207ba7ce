package store

import "errors"

// Sentinel errors returned by [Classify]. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrInvalidDSN is returned when DJANGO_DATABASE_URL cannot be turned into
	// a pgx connection config.
	ErrInvalidDSN = errors.New("invalid database connection url")

	// ErrAuthFailed is returned when the server rejects the user or password.
	ErrAuthFailed = errors.New("database authentication failed")

	// ErrUnknownDatabase is returned when the database named in the url does
	// not exist on the server.
	ErrUnknownDatabase = errors.New("database does not exist")

	// ErrUnavailable is returned when the server cannot be reached or refuses
	// connections for now.
	ErrUnavailable = errors.New("database is unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning the session row fails.
	ErrScanningRow = errors.New("failed to scan session row")
)
