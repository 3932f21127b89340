package http

import (
	"context"

	"github.com/akosyrev/snapthread/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, identifier, password string) (models.User, error)
	currentUserFn func(ctx context.Context, identity models.Identity) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, identifier, password string) (models.User, error) {
	return m.loginFn(ctx, identifier, password)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, identity models.Identity) (models.User, error) {
	return m.currentUserFn(ctx, identity)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock SocialGraphService
// ─────────────────────────────────────────────

// mockSocialGraphService implements service.SocialGraphService for unit tests.
type mockSocialGraphService struct {
	followFn   func(ctx context.Context, actor models.Identity, targetUsername string) (models.Follow, bool, error)
	unfollowFn func(ctx context.Context, actor models.Identity, targetUsername string) error
	acceptFn   func(ctx context.Context, actor models.Identity, requesterUsername string) (models.Follow, error)
	rejectFn   func(ctx context.Context, actor models.Identity, requesterUsername string) (models.Follow, error)
}

func (m *mockSocialGraphService) Follow(ctx context.Context, actor models.Identity, targetUsername string) (models.Follow, bool, error) {
	return m.followFn(ctx, actor, targetUsername)
}

func (m *mockSocialGraphService) Unfollow(ctx context.Context, actor models.Identity, targetUsername string) error {
	return m.unfollowFn(ctx, actor, targetUsername)
}

func (m *mockSocialGraphService) AcceptRequest(ctx context.Context, actor models.Identity, requesterUsername string) (models.Follow, error) {
	return m.acceptFn(ctx, actor, requesterUsername)
}

func (m *mockSocialGraphService) RejectRequest(ctx context.Context, actor models.Identity, requesterUsername string) (models.Follow, error) {
	return m.rejectFn(ctx, actor, requesterUsername)
}
