package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same username or email already
	// exists. The uniqueness is enforced by database constraints, so
	// concurrent registrations of the same identity resolve with exactly one
	// succeeding and the other receiving this error.
	ErrIdentityAlreadyExists = errors.New("username or email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrFollowAlreadyExists is returned when an INSERT into the follows
	// table violates the (follower_id, followee_id) uniqueness constraint.
	// The constraint, not a pre-check, is the authority: racing requests for
	// the same pair are resolved by the database.
	ErrFollowAlreadyExists = errors.New("follow relationship already exists")

	// ErrFollowNotFound is returned when a query, update, or delete targets
	// a follow relationship that does not exist.
	ErrFollowNotFound = errors.New("follow relationship was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty predicate).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
