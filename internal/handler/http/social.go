// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kosyrev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/akosyrev/snapthread/internal/app"
	"github.com/akosyrev/snapthread/internal/logger"
	"github.com/akosyrev/snapthread/internal/service"
	"github.com/akosyrev/snapthread/internal/store"
	"github.com/akosyrev/snapthread/internal/utils"
	"github.com/akosyrev/snapthread/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, err := identityFromRequest(r)
	if err != nil {
		log.Err(err).Msg("no identity in request context")
		writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	targetUsername := chi.URLParam(r, "username")

	follow, created, err := h.services.SocialGraphService.Follow(ctx, identity, targetUsername)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollowNotAllowed):
			log.Err(err).Msg("self follow attempt")
			writeMessage(w, app.MsgSelfFollowNotAllowed, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("target", targetUsername).Msg("follow target does not exist")
			writeMessage(w, app.MsgFollowTargetNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during follow")
			writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	if !created {
		utils.WriteJSON(w, models.FollowResponse{
			Message: fmt.Sprintf("you are already following %s", targetUsername),
			Follow:  follow,
		}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.FollowResponse{
		Message: fmt.Sprintf("you are following %s", targetUsername),
		Follow:  follow,
	}, http.StatusCreated)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, err := identityFromRequest(r)
	if err != nil {
		log.Err(err).Msg("no identity in request context")
		writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	targetUsername := chi.URLParam(r, "username")

	if err := h.services.SocialGraphService.Unfollow(ctx, identity, targetUsername); err != nil {
		switch {
		case errors.Is(err, store.ErrFollowNotFound):
			log.Err(err).Str("target", targetUsername).Msg("no relationship to unfollow")
			writeMessage(w, app.MsgNotFollowing, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during unfollow")
			writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	writeMessage(w, fmt.Sprintf("you have unfollowed %s", targetUsername), http.StatusOK)
}

func (h *Handler) acceptRequest(w http.ResponseWriter, r *http.Request) {
	h.decideRequest(w, r, "follow request accepted", h.services.SocialGraphService.AcceptRequest)
}

func (h *Handler) rejectRequest(w http.ResponseWriter, r *http.Request) {
	h.decideRequest(w, r, "follow request rejected", h.services.SocialGraphService.RejectRequest)
}

// decideRequest is the shared handler body of accept and reject. decide is
// the service operation that performs the actual transition.
func (h *Handler) decideRequest(
	w http.ResponseWriter,
	r *http.Request,
	successMessage string,
	decide func(ctx context.Context, actor models.Identity, requesterUsername string) (models.Follow, error),
) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, err := identityFromRequest(r)
	if err != nil {
		log.Err(err).Msg("no identity in request context")
		writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	requesterUsername := chi.URLParam(r, "username")

	follow, err := decide(ctx, identity, requesterUsername)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrFollowNotFound):
			log.Err(err).Str("requester", requesterUsername).Msg("follow request not found")
			writeMessage(w, app.MsgRequestNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotRequestRecipient):
			log.Err(err).Str("requester", requesterUsername).Msg("acting user is not the request recipient")
			writeMessage(w, app.MsgNotAuthorized, http.StatusForbidden)
			return
		case errors.Is(err, service.ErrRequestAlreadyHandled):
			log.Err(err).Str("requester", requesterUsername).Msg("follow request already handled")
			writeMessage(w, app.MsgAlreadyHandled, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred deciding follow request")
			writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.FollowResponse{
		Message: successMessage,
		Follow:  follow,
	}, http.StatusOK)
}
