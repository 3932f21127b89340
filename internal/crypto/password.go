// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kosyrev

package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when an empty plaintext password is passed to
// [PasswordHasher.Hash].
var ErrEmptyPassword = errors.New("password must not be empty")

// bcryptHasher is the private bcrypt-backed implementation of [PasswordHasher].
type bcryptHasher struct {
	// cost is the bcrypt work factor. Higher values slow hashing
	// exponentially; the value is fixed at construction time.
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt cost.
// Costs outside the range supported by the bcrypt package fall back to
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt digest from the plaintext password.
// bcrypt generates a fresh random salt per call, so hashing the same
// password twice yields different digests.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Verify reports whether password matches digest. The comparison inside
// bcrypt is constant time with respect to the derived key.
func (h *bcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
