package service

import (
	"context"

	"github.com/akosyrev/snapthread/internal/store"
	"github.com/akosyrev/snapthread/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn           func(ctx context.Context, user models.User) (models.User, error)
	findUserByIdentifierFn func(ctx context.Context, identifier string) (models.User, error)
	findUserByUsernameFn   func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn         func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	if m.findUserByIdentifierFn != nil {
		return m.findUserByIdentifierFn(ctx, identifier)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

// ─────────────────────────────────────────────
// Mock: store.FollowRepository
// ─────────────────────────────────────────────

type mockFollowRepository struct {
	createFn       func(ctx context.Context, follow models.Follow) (models.Follow, error)
	findOneFn      func(ctx context.Context, filter store.FollowFilter) (models.Follow, error)
	updateStatusFn func(ctx context.Context, id int64, status models.FollowStatus) error
	deleteByIDFn   func(ctx context.Context, id int64) error
}

func (m *mockFollowRepository) Create(ctx context.Context, follow models.Follow) (models.Follow, error) {
	if m.createFn != nil {
		return m.createFn(ctx, follow)
	}
	return follow, nil
}

func (m *mockFollowRepository) FindOne(ctx context.Context, filter store.FollowFilter) (models.Follow, error) {
	if m.findOneFn != nil {
		return m.findOneFn(ctx, filter)
	}
	return models.Follow{}, store.ErrFollowNotFound
}

func (m *mockFollowRepository) UpdateStatus(ctx context.Context, id int64, status models.FollowStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockFollowRepository) DeleteByID(ctx context.Context, id int64) error {
	if m.deleteByIDFn != nil {
		return m.deleteByIDFn(ctx, id)
	}
	return nil
}
