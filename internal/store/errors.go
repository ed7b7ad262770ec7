package store

import "errors"

// ErrKeyNotFound is returned by [SessionRepository.GetItem] when nothing is
// stored under the requested key.
var ErrKeyNotFound = errors.New("key not found")

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
)
