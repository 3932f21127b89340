package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")
	ErrTokenIsInvalid = errors.New("token is invalid")
	ErrTokenCreation  = errors.New("token creation failed")

	ErrSelfFollowNotAllowed  = errors.New("self follow is not allowed")
	ErrNotRequestRecipient   = errors.New("acting user is not the recipient of the follow request")
	ErrRequestAlreadyHandled = errors.New("follow request already handled")
)
