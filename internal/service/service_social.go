// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kosyrev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akosyrev/snapthread/internal/logger"
	"github.com/akosyrev/snapthread/internal/store"
	"github.com/akosyrev/snapthread/models"
)

// socialGraphService is the concrete implementation of SocialGraphService.
//
// Relationship lifecycle: a follow starts as pending; the followee decides
// it exactly once (accepted or rejected, both terminal); unfollow deletes
// the record from any status. The at-most-one-record-per-pair invariant is
// owned by the follows table uniqueness constraint — the service-level
// existence check is advisory and duplicate races are resolved by the store.
type socialGraphService struct {
	userRepository   store.UserRepository
	followRepository store.FollowRepository

	logger *logger.Logger
}

// NewSocialGraphService constructs a SocialGraphService over the given
// repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSocialGraphService(userRepository store.UserRepository, followRepository store.FollowRepository, logger *logger.Logger) SocialGraphService {
	return &socialGraphService{
		userRepository:   userRepository,
		followRepository: followRepository,
		logger:           logger,
	}
}

// Follow requests a follow from actor to targetUsername.
//
// Returns the relationship and a created flag, or:
//   - ErrSelfFollowNotAllowed when actor addresses their own account.
//   - A wrapped store.ErrNoUserWasFound when targetUsername does not exist.
//
// Re-following an existing pair is idempotent regardless of status: the
// existing record is returned unchanged with created == false. When two
// requests race past the advisory check, the INSERT of exactly one fails
// with store.ErrFollowAlreadyExists; the loser re-reads and returns the
// winner's record.
func (s *socialGraphService) Follow(ctx context.Context, actor models.Identity, targetUsername string) (models.Follow, bool, error) {
	log := logger.FromContext(ctx)

	if actor.Username == targetUsername {
		log.Error().Str("username", actor.Username).Msg("self follow attempt")
		return models.Follow{}, false, ErrSelfFollowNotAllowed
	}

	targetUser, err := s.userRepository.FindUserByUsername(ctx, targetUsername)
	if err != nil {
		log.Err(err).Str("target", targetUsername).Msg("follow target lookup failed")
		return models.Follow{}, false, fmt.Errorf("follow target lookup failed: %w", err)
	}

	existing, err := s.findPair(ctx, actor.UserID, targetUser.UserID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrFollowNotFound) {
		log.Err(err).Str("target", targetUsername).Msg("follow pair lookup failed")
		return models.Follow{}, false, err
	}

	created, err := s.followRepository.Create(ctx, models.Follow{
		FollowerID:       actor.UserID,
		FolloweeID:       targetUser.UserID,
		FollowerUsername: actor.Username,
		FolloweeUsername: targetUser.Username,
		Status:           models.FollowStatusPending,
	})
	if err != nil {
		if errors.Is(err, store.ErrFollowAlreadyExists) {
			// lost the race; the constraint guarantees the pair now exists
			existing, findErr := s.findPair(ctx, actor.UserID, targetUser.UserID)
			if findErr != nil {
				return models.Follow{}, false, findErr
			}
			return existing, false, nil
		}

		log.Err(err).Str("target", targetUsername).Msg("follow creation failed")
		return models.Follow{}, false, err
	}

	return created, true, nil
}

// Unfollow deletes the actor→targetUsername relationship.
//
// Deletion is valid from any status; it is not a state transition. Both a
// missing target account and a missing relationship surface as
// store.ErrFollowNotFound — from the caller's perspective there is nothing
// to unfollow either way.
func (s *socialGraphService) Unfollow(ctx context.Context, actor models.Identity, targetUsername string) error {
	log := logger.FromContext(ctx)

	targetUser, err := s.userRepository.FindUserByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return store.ErrFollowNotFound
		}
		log.Err(err).Str("target", targetUsername).Msg("unfollow target lookup failed")
		return fmt.Errorf("unfollow target lookup failed: %w", err)
	}

	existing, err := s.findPair(ctx, actor.UserID, targetUser.UserID)
	if err != nil {
		log.Err(err).Str("target", targetUsername).Msg("unfollow pair lookup failed")
		return err
	}

	if err := s.followRepository.DeleteByID(ctx, existing.ID); err != nil {
		log.Err(err).Int64("follow_id", existing.ID).Msg("unfollow deletion failed")
		return err
	}

	return nil
}

// AcceptRequest transitions the pending request from requesterUsername to
// actor into accepted status.
func (s *socialGraphService) AcceptRequest(ctx context.Context, actor models.Identity, requesterUsername string) (models.Follow, error) {
	return s.decideRequest(ctx, actor, requesterUsername, models.FollowStatusAccepted)
}

// RejectRequest transitions the pending request from requesterUsername to
// actor into rejected status.
func (s *socialGraphService) RejectRequest(ctx context.Context, actor models.Identity, requesterUsername string) (models.Follow, error) {
	return s.decideRequest(ctx, actor, requesterUsername, models.FollowStatusRejected)
}

// decideRequest locates the relationship where actor is the followee and
// requesterUsername the follower, verifies that actor really is the
// recipient, and persists the terminal status.
//
// Returns the updated relationship or:
//   - store.ErrFollowNotFound when the requester account or the
//     relationship does not exist.
//   - ErrNotRequestRecipient when the located relationship is not addressed
//     to the acting identity.
//   - ErrRequestAlreadyHandled when the relationship already left pending;
//     terminal states are never mutated.
func (s *socialGraphService) decideRequest(ctx context.Context, actor models.Identity, requesterUsername string, target models.FollowStatus) (models.Follow, error) {
	log := logger.FromContext(ctx)

	requester, err := s.userRepository.FindUserByUsername(ctx, requesterUsername)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Follow{}, store.ErrFollowNotFound
		}
		log.Err(err).Str("requester", requesterUsername).Msg("request follower lookup failed")
		return models.Follow{}, fmt.Errorf("request follower lookup failed: %w", err)
	}

	request, err := s.findPair(ctx, requester.UserID, actor.UserID)
	if err != nil {
		log.Err(err).Str("requester", requesterUsername).Msg("follow request lookup failed")
		return models.Follow{}, err
	}

	if request.FolloweeID != actor.UserID {
		log.Error().
			Int64("followee_id", request.FolloweeID).
			Int64("actor_id", actor.UserID).
			Msg("acting user is not the request recipient")
		return models.Follow{}, ErrNotRequestRecipient
	}

	if request.Status != models.FollowStatusPending {
		log.Error().
			Str("status", string(request.Status)).
			Int64("follow_id", request.ID).
			Msg("follow request already handled")
		return models.Follow{}, ErrRequestAlreadyHandled
	}

	if err := s.followRepository.UpdateStatus(ctx, request.ID, target); err != nil {
		log.Err(err).Int64("follow_id", request.ID).Msg("follow status update failed")
		return models.Follow{}, err
	}

	request.Status = target
	request.UpdatedAt = time.Now()

	return request, nil
}

// findPair fetches the single relationship for the ordered
// (follower, followee) pair.
func (s *socialGraphService) findPair(ctx context.Context, followerID, followeeID int64) (models.Follow, error) {
	return s.followRepository.FindOne(ctx, store.FollowFilter{
		FollowerID: &followerID,
		FolloweeID: &followeeID,
	})
}
