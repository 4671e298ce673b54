package store

import "errors"

// Sentinel errors returned by repository and storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrEntryAlreadyExists is returned when a password entry with the same
	// name is already stored.
	ErrEntryAlreadyExists = errors.New("password entry already exists")

	// ErrEntryNotFound is returned when no password entry has the requested id.
	ErrEntryNotFound = errors.New("password entry was not found")

	// ErrEnvelopeNotFound is returned when the envelope storage holds no
	// object with the requested name.
	ErrEnvelopeNotFound = errors.New("envelope was not found")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither sqlite3 nor pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrUnsupportedBackend is returned when the configured envelope backend
	// is neither local nor s3.
	ErrUnsupportedBackend = errors.New("unsupported envelope storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan password entry row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan password entry rows")
)
