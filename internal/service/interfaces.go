package service

import (
	"context"

	"github.com/akosyrev/snapthread/models"
)

// AuthService orchestrates account registration, credential verification,
// and the session-token lifecycle.
type AuthService interface {
	// Register creates a new account from the request fields and returns the
	// persisted user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the password of the account matching identifier
	// (username or email) and returns the user record.
	Login(ctx context.Context, identifier, password string) (models.User, error)

	// CurrentUser resolves a verified identity back to its account record.
	CurrentUser(ctx context.Context, identity models.Identity) (models.User, error)

	// CreateToken issues a signed session token bound to the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns its decoded form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SocialGraphService orchestrates the follow-relationship lifecycle against
// the follow and user repositories, enforcing authorization and the
// pending → accepted/rejected state machine.
type SocialGraphService interface {
	// Follow requests a follow from actor to targetUsername. The returned
	// bool is true when a new relationship was created and false when an
	// existing one was returned idempotently.
	Follow(ctx context.Context, actor models.Identity, targetUsername string) (models.Follow, bool, error)

	// Unfollow deletes the actor→targetUsername relationship regardless of
	// its status.
	Unfollow(ctx context.Context, actor models.Identity, targetUsername string) error

	// AcceptRequest transitions the pending request from requesterUsername
	// to actor into accepted status.
	AcceptRequest(ctx context.Context, actor models.Identity, requesterUsername string) (models.Follow, error)

	// RejectRequest transitions the pending request from requesterUsername
	// to actor into rejected status.
	RejectRequest(ctx context.Context, actor models.Identity, requesterUsername string) (models.Follow, error)
}
