// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kosyrev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akosyrev/snapthread/internal/logger"
	"github.com/akosyrev/snapthread/internal/store"
	"github.com/akosyrev/snapthread/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = models.Identity{UserID: 1, Username: "alice"}
	bob   = models.Identity{UserID: 2, Username: "bob"}
)

// usersByName returns a user repository resolving the given fixtures by
// username.
func usersByName(fixtures ...models.User) *mockUserRepository {
	return &mockUserRepository{
		findUserByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			for _, u := range fixtures {
				if u.Username == username {
					return u, nil
				}
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
}

func bobUser() models.User {
	return models.User{UserID: bob.UserID, Username: bob.Username, Email: "b@x.com"}
}

func pendingFollow() models.Follow {
	now := time.Now()
	return models.Follow{
		ID:               3,
		FollowerID:       alice.UserID,
		FolloweeID:       bob.UserID,
		FollowerUsername: alice.Username,
		FolloweeUsername: bob.Username,
		Status:           models.FollowStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestFollow_SelfFollow(t *testing.T) {
	svc := NewSocialGraphService(usersByName(), &mockFollowRepository{}, logger.Nop())

	_, _, err := svc.Follow(context.Background(), alice, "alice")
	assert.ErrorIs(t, err, ErrSelfFollowNotAllowed)
}

func TestFollow_TargetNotFound(t *testing.T) {
	svc := NewSocialGraphService(usersByName(), &mockFollowRepository{}, logger.Nop())

	_, _, err := svc.Follow(context.Background(), alice, "ghost")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestFollow_CreatesPending(t *testing.T) {
	var created models.Follow
	follows := &mockFollowRepository{
		createFn: func(ctx context.Context, follow models.Follow) (models.Follow, error) {
			follow.ID = 3
			created = follow
			return follow, nil
		},
	}
	svc := NewSocialGraphService(usersByName(bobUser()), follows, logger.Nop())

	follow, isNew, err := svc.Follow(context.Background(), alice, "bob")
	require.NoError(t, err)

	assert.True(t, isNew)
	assert.Equal(t, models.FollowStatusPending, follow.Status)
	assert.Equal(t, alice.UserID, created.FollowerID)
	assert.Equal(t, bob.UserID, created.FolloweeID)
}

func TestFollow_IdempotentOnExisting(t *testing.T) {
	existing := pendingFollow()
	createCalled := false
	follows := &mockFollowRepository{
		findOneFn: func(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
			return existing, nil
		},
		createFn: func(ctx context.Context, follow models.Follow) (models.Follow, error) {
			createCalled = true
			return follow, nil
		},
	}
	svc := NewSocialGraphService(usersByName(bobUser()), follows, logger.Nop())

	follow, isNew, err := svc.Follow(context.Background(), alice, "bob")
	require.NoError(t, err)

	assert.False(t, isNew)
	assert.Equal(t, existing.ID, follow.ID)
	assert.Equal(t, existing.Status, follow.Status)
	assert.False(t, createCalled, "existing relationship must be returned without a create")
}

func TestFollow_RaceResolvedByConstraint(t *testing.T) {
	existing := pendingFollow()
	firstLookup := true
	follows := &mockFollowRepository{
		findOneFn: func(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
			// the advisory pre-check misses, then the post-conflict re-read hits
			if firstLookup {
				firstLookup = false
				return models.Follow{}, store.ErrFollowNotFound
			}
			return existing, nil
		},
		createFn: func(ctx context.Context, follow models.Follow) (models.Follow, error) {
			return models.Follow{}, store.ErrFollowAlreadyExists
		},
	}
	svc := NewSocialGraphService(usersByName(bobUser()), follows, logger.Nop())

	follow, isNew, err := svc.Follow(context.Background(), alice, "bob")
	require.NoError(t, err)

	assert.False(t, isNew)
	assert.Equal(t, existing.ID, follow.ID)
}

func TestUnfollow_Success(t *testing.T) {
	var deletedID int64
	follows := &mockFollowRepository{
		findOneFn: func(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
			return pendingFollow(), nil
		},
		deleteByIDFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	svc := NewSocialGraphService(usersByName(bobUser()), follows, logger.Nop())

	require.NoError(t, svc.Unfollow(context.Background(), alice, "bob"))
	assert.Equal(t, int64(3), deletedID)
}

func TestUnfollow_DeletesFromAnyStatus(t *testing.T) {
	accepted := pendingFollow()
	accepted.Status = models.FollowStatusAccepted

	follows := &mockFollowRepository{
		findOneFn: func(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
			return accepted, nil
		},
	}
	svc := NewSocialGraphService(usersByName(bobUser()), follows, logger.Nop())

	assert.NoError(t, svc.Unfollow(context.Background(), alice, "bob"))
}

func TestUnfollow_RelationshipNotFound(t *testing.T) {
	svc := NewSocialGraphService(usersByName(bobUser()), &mockFollowRepository{}, logger.Nop())

	err := svc.Unfollow(context.Background(), alice, "bob")
	assert.ErrorIs(t, err, store.ErrFollowNotFound)
}

func TestUnfollow_TargetAccountGone(t *testing.T) {
	svc := NewSocialGraphService(usersByName(), &mockFollowRepository{}, logger.Nop())

	err := svc.Unfollow(context.Background(), alice, "ghost")
	assert.ErrorIs(t, err, store.ErrFollowNotFound)
}

func TestAcceptRequest_Success(t *testing.T) {
	var updatedID int64
	var updatedStatus models.FollowStatus
	follows := &mockFollowRepository{
		findOneFn: func(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
			require.NotNil(t, filter.FollowerID)
			require.NotNil(t, filter.FolloweeID)
			assert.Equal(t, alice.UserID, *filter.FollowerID)
			assert.Equal(t, bob.UserID, *filter.FolloweeID)
			return pendingFollow(), nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status models.FollowStatus) error {
			updatedID = id
			updatedStatus = status
			return nil
		},
	}
	svc := NewSocialGraphService(usersByName(aliceUser()), follows, logger.Nop())

	follow, err := svc.AcceptRequest(context.Background(), bob, "alice")
	require.NoError(t, err)

	assert.Equal(t, models.FollowStatusAccepted, follow.Status)
	assert.Equal(t, int64(3), updatedID)
	assert.Equal(t, models.FollowStatusAccepted, updatedStatus)
}

func TestRejectRequest_Success(t *testing.T) {
	follows := &mockFollowRepository{
		findOneFn: func(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
			return pendingFollow(), nil
		},
	}
	svc := NewSocialGraphService(usersByName(aliceUser()), follows, logger.Nop())

	follow, err := svc.RejectRequest(context.Background(), bob, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.FollowStatusRejected, follow.Status)
}

func TestDecideRequest_RequestNotFound(t *testing.T) {
	svc := NewSocialGraphService(usersByName(aliceUser()), &mockFollowRepository{}, logger.Nop())

	_, err := svc.AcceptRequest(context.Background(), bob, "alice")
	assert.ErrorIs(t, err, store.ErrFollowNotFound)
}

func TestDecideRequest_RequesterAccountGone(t *testing.T) {
	svc := NewSocialGraphService(usersByName(), &mockFollowRepository{}, logger.Nop())

	_, err := svc.AcceptRequest(context.Background(), bob, "ghost")
	assert.ErrorIs(t, err, store.ErrFollowNotFound)
}

func TestDecideRequest_NotRecipient(t *testing.T) {
	stray := pendingFollow()
	stray.FolloweeID = 99

	follows := &mockFollowRepository{
		findOneFn: func(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
			return stray, nil
		},
	}
	svc := NewSocialGraphService(usersByName(aliceUser()), follows, logger.Nop())

	_, err := svc.AcceptRequest(context.Background(), bob, "alice")
	assert.ErrorIs(t, err, ErrNotRequestRecipient)
}

func TestDecideRequest_AlreadyHandled(t *testing.T) {
	for _, status := range []models.FollowStatus{models.FollowStatusAccepted, models.FollowStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			handled := pendingFollow()
			handled.Status = status

			updateCalled := false
			follows := &mockFollowRepository{
				findOneFn: func(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
					return handled, nil
				},
				updateStatusFn: func(ctx context.Context, id int64, s models.FollowStatus) error {
					updateCalled = true
					return nil
				},
			}
			svc := NewSocialGraphService(usersByName(aliceUser()), follows, logger.Nop())

			_, err := svc.AcceptRequest(context.Background(), bob, "alice")
			assert.ErrorIs(t, err, ErrRequestAlreadyHandled)
			assert.False(t, updateCalled, "terminal states must never be mutated")
		})
	}
}

func TestDecideRequest_UpdateFailurePropagates(t *testing.T) {
	dbErr := errors.New("db down")
	follows := &mockFollowRepository{
		findOneFn: func(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
			return pendingFollow(), nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status models.FollowStatus) error {
			return dbErr
		},
	}
	svc := NewSocialGraphService(usersByName(aliceUser()), follows, logger.Nop())

	_, err := svc.AcceptRequest(context.Background(), bob, "alice")
	assert.ErrorIs(t, err, dbErr)
}

func aliceUser() models.User {
	return models.User{UserID: alice.UserID, Username: alice.Username, Email: "a@x.com"}
}
