package store

import (
	"context"

	"github.com/akosyrev/snapthread/models"
)

// UserRepository is the credential store. It owns the users table and is the
// only component allowed to read or write password hashes.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrIdentityAlreadyExists when the username
	// or email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByIdentifier looks up an account whose username OR email
	// matches identifier. Returns ErrNoUserWasFound on an empty result.
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)

	// FindUserByUsername looks up an account by its exact username.
	// Returns ErrNoUserWasFound on an empty result.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks up an account by its internal ID.
	// Returns ErrNoUserWasFound on an empty result.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// FollowFilter is the predicate accepted by [FollowRepository.FindOne].
// Nil fields are ignored; at least one field must be set.
type FollowFilter struct {
	FollowerID *int64
	FolloweeID *int64
	Status     *models.FollowStatus
}

// FollowRepository persists directed follow relationships. At most one
// record exists per ordered (follower, followee) pair, enforced by a
// database uniqueness constraint.
type FollowRepository interface {
	// Create inserts a new relationship in pending status and returns it
	// with server-assigned fields populated. Returns ErrFollowAlreadyExists
	// when a record for the pair already exists.
	Create(ctx context.Context, follow models.Follow) (models.Follow, error)

	// FindOne returns the single relationship matching the filter, with
	// follower and followee usernames resolved. Returns ErrFollowNotFound
	// on an empty result.
	FindOne(ctx context.Context, filter FollowFilter) (models.Follow, error)

	// UpdateStatus persists a status transition for the given record.
	// Returns ErrFollowNotFound when no such record exists.
	UpdateStatus(ctx context.Context, id int64, status models.FollowStatus) error

	// DeleteByID removes the relationship record entirely.
	// Returns ErrFollowNotFound when no such record exists.
	DeleteByID(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Used for diagnostics on unexpected driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
