package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBlogNotFound is returned when a query, update or delete targets a
	// blog post ID that does not exist.
	ErrBlogNotFound = errors.New("blog was not found")

	// ErrUserNotFound is returned when no user matches the requested name.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUserAlreadyExists is returned when an attempt to create a user fails
	// because the user name is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrConflict is returned when a write violates a constraint of the
	// stored data (for example a CHECK on the post status).
	ErrConflict = errors.New("data conflict")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// database driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
