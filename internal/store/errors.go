package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLocalSessionNotFound is returned by [SessionStore.Load] when no
	// session has been persisted yet.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrSyncStateNotFound is returned by [LocalCache.GetSyncState] when the
	// requested key was never written.
	ErrSyncStateNotFound = errors.New("sync state not found")

	// ErrMessageNotFound is returned when a lookup targets a message that is
	// not in the cache, e.g. no preview matches an original-ready message.
	ErrMessageNotFound = errors.New("message not found")

	// ErrCacheUnavailable is returned by the degraded cache for operations
	// whose caller must know nothing was stored.
	ErrCacheUnavailable = errors.New("local cache unavailable")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingValue is returned when a sync state value cannot be
	// serialised or deserialised.
	ErrEncodingValue = errors.New("failed to encode value")
)
