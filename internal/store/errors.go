package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when a lookup by login or id matches no
	// user.
	ErrUserNotFound = errors.New("no user was found")

	// ErrQuotaExhausted is returned by DecrementQuota when a finite-tier
	// user has no checks left. The counter is left untouched.
	ErrQuotaExhausted = errors.New("check quota exhausted")

	// ErrCheckNotFound is returned when a check does not exist or belongs to
	// another user. The two cases are deliberately indistinguishable.
	ErrCheckNotFound = errors.New("check was not found")

	// ErrCheckAlreadyExists is returned when a check id collides.
	ErrCheckAlreadyExists = errors.New("check already exists")

	// ErrAlreadyFinalized is returned when a terminal update or a stage
	// transition targets a check that already reached a terminal status.
	ErrAlreadyFinalized = errors.New("check already finalized")

	// ErrInvalidTransition is returned when a status update would move a
	// check backwards, skip to an unknown status or finalize it with a
	// non-terminal status.
	ErrInvalidTransition = errors.New("invalid check status transition")

	// ErrWorkflowNotFound is returned when no check references a workflow id.
	ErrWorkflowNotFound = errors.New("workflow was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan check row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan check rows")

	// ErrEncodingResults is returned when check results cannot be
	// serialised to or from their JSON column.
	ErrEncodingResults = errors.New("failed to encode check results")
)
