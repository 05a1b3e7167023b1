package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an account with the same
	// username already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrAccountNotFound is returned when no account matches a username.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrRecordNotFound is returned when a record does not exist or belongs
	// to another user.
	ErrRecordNotFound = errors.New("record not found")
)

// Low-level database operation errors, wrapped together with the driver
// error.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
