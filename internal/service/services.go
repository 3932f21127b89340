package service

import (
	"github.com/akosyrev/snapthread/internal/config"
	"github.com/akosyrev/snapthread/internal/crypto"
	"github.com/akosyrev/snapthread/internal/logger"
	"github.com/akosyrev/snapthread/internal/store"
)

// Services bundles all business-logic components for injection into the
// transport layer.
type Services struct {
	AuthService        AuthService
	SocialGraphService SocialGraphService
}

// NewServices constructs every service over the given repositories and
// application configuration.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)

	return &Services{
		AuthService:        NewAuthService(repositories.UserRepository, hasher, cfg, logger),
		SocialGraphService: NewSocialGraphService(repositories.UserRepository, repositories.FollowRepository, logger),
	}
}
