// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kosyrev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akosyrev/snapthread/internal/app"
	"github.com/akosyrev/snapthread/internal/logger"
	"github.com/akosyrev/snapthread/internal/service"
	"github.com/akosyrev/snapthread/internal/store"
	"github.com/akosyrev/snapthread/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithSocial builds a Handler with the given SocialGraphService mock.
func newHandlerWithSocial(t *testing.T, social service.SocialGraphService) *Handler {
	t.Helper()
	svcs := &service.Services{
		SocialGraphService: social,
	}
	return NewHandler(svcs, logger.Nop())
}

// socialRequest builds an authenticated request carrying the {username}
// route parameter, matching what chi injects when the route matches.
func socialRequest(t *testing.T, target, username string, identity models.Identity) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, nil)
	req = withIdentity(req, identity)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", username)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeFollow(t *testing.T, rec *httptest.ResponseRecorder) models.FollowResponse {
	t.Helper()
	var resp models.FollowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

var actorAlice = models.Identity{UserID: 1, Username: "alice"}

func pendingAliceToBob() models.Follow {
	return models.Follow{
		ID:               3,
		FollowerID:       1,
		FolloweeID:       2,
		FollowerUsername: "alice",
		FolloweeUsername: "bob",
		Status:           models.FollowStatusPending,
	}
}

// ─────────────────────────────────────────────
// follow
// ─────────────────────────────────────────────

// TestFollow_Created verifies that a fresh follow request yields 201 and the
// new pending relationship.
func TestFollow_Created(t *testing.T) {
	social := &mockSocialGraphService{
		followFn: func(_ context.Context, actor models.Identity, targetUsername string) (models.Follow, bool, error) {
			assert.Equal(t, actorAlice, actor)
			assert.Equal(t, "bob", targetUsername)
			return pendingAliceToBob(), true, nil
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.follow(rec, socialRequest(t, "/api/users/follow/bob", "bob", actorAlice))

	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeFollow(t, rec)
	assert.Equal(t, "alice", resp.Follow.FollowerUsername)
	assert.Equal(t, "bob", resp.Follow.FolloweeUsername)
	assert.Equal(t, models.FollowStatusPending, resp.Follow.Status)
}

// TestFollow_Idempotent verifies that repeating a follow returns the existing
// relationship with 200 instead of creating a duplicate.
func TestFollow_Idempotent(t *testing.T) {
	social := &mockSocialGraphService{
		followFn: func(_ context.Context, _ models.Identity, _ string) (models.Follow, bool, error) {
			return pendingAliceToBob(), false, nil
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.follow(rec, socialRequest(t, "/api/users/follow/bob", "bob", actorAlice))

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeFollow(t, rec)
	assert.Equal(t, models.FollowStatusPending, resp.Follow.Status)
}

func TestFollow_Self(t *testing.T) {
	social := &mockSocialGraphService{
		followFn: func(_ context.Context, _ models.Identity, _ string) (models.Follow, bool, error) {
			return models.Follow{}, false, service.ErrSelfFollowNotAllowed
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.follow(rec, socialRequest(t, "/api/users/follow/alice", "alice", actorAlice))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgSelfFollowNotAllowed, decodeMessage(t, rec))
}

func TestFollow_TargetNotFound(t *testing.T) {
	social := &mockSocialGraphService{
		followFn: func(_ context.Context, _ models.Identity, _ string) (models.Follow, bool, error) {
			return models.Follow{}, false, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.follow(rec, socialRequest(t, "/api/users/follow/ghost", "ghost", actorAlice))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgFollowTargetNotFound, decodeMessage(t, rec))
}

func TestFollow_UnexpectedError(t *testing.T) {
	social := &mockSocialGraphService{
		followFn: func(_ context.Context, _ models.Identity, _ string) (models.Follow, bool, error) {
			return models.Follow{}, false, errors.New("connection reset")
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.follow(rec, socialRequest(t, "/api/users/follow/bob", "bob", actorAlice))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFollow_MissingIdentity(t *testing.T) {
	h := newHandlerWithSocial(t, &mockSocialGraphService{})
	req := httptest.NewRequest(http.MethodPost, "/api/users/follow/bob", nil)
	rec := httptest.NewRecorder()

	h.follow(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// unfollow
// ─────────────────────────────────────────────

func TestUnfollow_Success(t *testing.T) {
	social := &mockSocialGraphService{
		unfollowFn: func(_ context.Context, actor models.Identity, targetUsername string) error {
			assert.Equal(t, actorAlice, actor)
			assert.Equal(t, "bob", targetUsername)
			return nil
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.unfollow(rec, socialRequest(t, "/api/users/unfollow/bob", "bob", actorAlice))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "you have unfollowed bob", decodeMessage(t, rec))
}

// TestUnfollow_NotFollowing verifies that removing an absent relationship is
// reported as 404, covering both an unknown target and a missing record.
func TestUnfollow_NotFollowing(t *testing.T) {
	social := &mockSocialGraphService{
		unfollowFn: func(_ context.Context, _ models.Identity, _ string) error {
			return store.ErrFollowNotFound
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.unfollow(rec, socialRequest(t, "/api/users/unfollow/bob", "bob", actorAlice))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNotFollowing, decodeMessage(t, rec))
}

func TestUnfollow_UnexpectedError(t *testing.T) {
	social := &mockSocialGraphService{
		unfollowFn: func(_ context.Context, _ models.Identity, _ string) error {
			return errors.New("connection reset")
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.unfollow(rec, socialRequest(t, "/api/users/unfollow/bob", "bob", actorAlice))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// accept / reject
// ─────────────────────────────────────────────

var actorBob = models.Identity{UserID: 2, Username: "bob"}

func TestAcceptRequest_Success(t *testing.T) {
	social := &mockSocialGraphService{
		acceptFn: func(_ context.Context, actor models.Identity, requesterUsername string) (models.Follow, error) {
			assert.Equal(t, actorBob, actor)
			assert.Equal(t, "alice", requesterUsername)

			accepted := pendingAliceToBob()
			accepted.Status = models.FollowStatusAccepted
			return accepted, nil
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.acceptRequest(rec, socialRequest(t, "/api/users/accept/alice", "alice", actorBob))

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeFollow(t, rec)
	assert.Equal(t, "follow request accepted", resp.Message)
	assert.Equal(t, models.FollowStatusAccepted, resp.Follow.Status)
}

func TestRejectRequest_Success(t *testing.T) {
	social := &mockSocialGraphService{
		rejectFn: func(_ context.Context, _ models.Identity, _ string) (models.Follow, error) {
			rejected := pendingAliceToBob()
			rejected.Status = models.FollowStatusRejected
			return rejected, nil
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.rejectRequest(rec, socialRequest(t, "/api/users/reject/alice", "alice", actorBob))

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeFollow(t, rec)
	assert.Equal(t, "follow request rejected", resp.Message)
	assert.Equal(t, models.FollowStatusRejected, resp.Follow.Status)
}

func TestAcceptRequest_NotFound(t *testing.T) {
	social := &mockSocialGraphService{
		acceptFn: func(_ context.Context, _ models.Identity, _ string) (models.Follow, error) {
			return models.Follow{}, store.ErrFollowNotFound
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.acceptRequest(rec, socialRequest(t, "/api/users/accept/ghost", "ghost", actorBob))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgRequestNotFound, decodeMessage(t, rec))
}

// TestAcceptRequest_NotRecipient verifies that a user who is not the request
// recipient is rejected with 403.
func TestAcceptRequest_NotRecipient(t *testing.T) {
	social := &mockSocialGraphService{
		acceptFn: func(_ context.Context, _ models.Identity, _ string) (models.Follow, error) {
			return models.Follow{}, service.ErrNotRequestRecipient
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.acceptRequest(rec, socialRequest(t, "/api/users/accept/alice", "alice", actorAlice))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgNotAuthorized, decodeMessage(t, rec))
}

// TestRejectRequest_AlreadyHandled verifies that deciding a request twice is
// reported as 400.
func TestRejectRequest_AlreadyHandled(t *testing.T) {
	social := &mockSocialGraphService{
		rejectFn: func(_ context.Context, _ models.Identity, _ string) (models.Follow, error) {
			return models.Follow{}, service.ErrRequestAlreadyHandled
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.rejectRequest(rec, socialRequest(t, "/api/users/reject/alice", "alice", actorBob))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgAlreadyHandled, decodeMessage(t, rec))
}

func TestAcceptRequest_UnexpectedError(t *testing.T) {
	social := &mockSocialGraphService{
		acceptFn: func(_ context.Context, _ models.Identity, _ string) (models.Follow, error) {
			return models.Follow{}, errors.New("connection reset")
		},
	}

	h := newHandlerWithSocial(t, social)
	rec := httptest.NewRecorder()

	h.acceptRequest(rec, socialRequest(t, "/api/users/accept/alice", "alice", actorBob))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
