package store

import "errors"

// Low-level database operation errors. Callers match them with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	ErrScanningRows = errors.New("failed to scan journal rows")
)

// ErrJournalDisabled is returned by the no-op journal on reads.
var ErrJournalDisabled = errors.New("scenario journal is disabled")
