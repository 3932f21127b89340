package store

import "github.com/akosyrev/snapthread/internal/logger"

// Repositories bundles all persistence-layer components for injection into
// the service layer.
type Repositories struct {
	UserRepository   UserRepository
	FollowRepository FollowRepository
}

// NewRepositories constructs every repository over the shared database
// handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, logger),
		FollowRepository: NewFollowRepository(db, logger),
	}
}
