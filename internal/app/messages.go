// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kosyrev

// Package app contains shared application-layer constants used across the
// snapthread server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIdentityAlreadyExists is returned when a registration attempt is
	// rejected because the requested username or email is already taken.
	MsgIdentityAlreadyExists = "username or email already exists"

	// MsgUserNotFound is returned when a login or lookup targets an account
	// that does not exist.
	MsgUserNotFound = "user not found"

	// MsgInvalidPassword is returned when the supplied password does not
	// match the stored credential of an existing account.
	MsgInvalidPassword = "invalid password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgSelfFollowNotAllowed is returned when a user attempts to follow
	// their own account.
	MsgSelfFollowNotAllowed = "you cannot follow yourself"

	// MsgFollowTargetNotFound is returned when the user addressed by a
	// follow request does not exist.
	MsgFollowTargetNotFound = "user you are trying to follow does not exist"

	// MsgNotFollowing is returned when an unfollow targets a relationship
	// that does not exist.
	MsgNotFollowing = "you are not following this user"

	// MsgRequestNotFound is returned when an accept or reject targets a
	// follow request that does not exist.
	MsgRequestNotFound = "follow request not found"

	// MsgNotAuthorized is returned when the acting user is not the
	// recipient of the follow request they are trying to decide.
	MsgNotAuthorized = "not authorized"

	// MsgAlreadyHandled is returned when an accept or reject targets a
	// follow request that has already been decided.
	MsgAlreadyHandled = "follow request already handled"
)
