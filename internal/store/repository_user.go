package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akosyrev/snapthread/internal/logger"
	"github.com/akosyrev/snapthread/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrIdentityAlreadyExists].
//     The constraint may be either users_username_key or users_email_key;
//     both collapse into the same sentinel because the caller treats them
//     identically.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.PasswordHash, user.Bio, user.ProfileImageURL)

	var created models.User
	if err := row.Scan(
		&created.UserID,
		&created.Username,
		&created.Email,
		&created.PasswordHash,
		&created.Bio,
		&created.ProfileImageURL,
		&created.CreatedAt,
	); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("identity already exists")
			return models.User{}, ErrIdentityAlreadyExists
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Str("classification", r.db.errorClassificator.Classify(err).String()).
				Msg("unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByIdentifier retrieves the account whose username or email matches
// identifier. The two identifying columns are both unique, so at most one
// row can match.
//
// Error handling:
//   - Empty result set ([sql.ErrNoRows]) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByIdentifier", findUserByIdentifier, identifier)
}

// FindUserByUsername retrieves the account with the exact username.
//
// Error handling mirrors [FindUserByIdentifier].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID retrieves the account with the given internal ID.
//
// Error handling mirrors [FindUserByIdentifier].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// findOne runs a single-row user query and applies the shared error mapping.
func (r *userRepository) findOne(ctx context.Context, caller, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(
		&found.UserID,
		&found.Username,
		&found.Email,
		&found.PasswordHash,
		&found.Bio,
		&found.ProfileImageURL,
		&found.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", caller).
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
