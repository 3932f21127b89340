package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akosyrev/snapthread/internal/config"
	"github.com/akosyrev/snapthread/internal/crypto"
	"github.com/akosyrev/snapthread/internal/logger"
	"github.com/akosyrev/snapthread/internal/store"
	"github.com/akosyrev/snapthread/internal/utils"
	"github.com/akosyrev/snapthread/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the session
// token lifecycle using a UserRepository for persistence, bcrypt for
// password hashing, and HMAC-SHA256 signed tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher turns plaintext passwords into bcrypt digests and verifies them.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and hasher, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that username, email and password are non-empty, hashes the
// password with bcrypt, applies the placeholder avatar when none was
// supplied, and delegates persistence to the UserRepository. The advisory
// duplicate check lives in the database: a concurrent registration of the
// same identity is resolved by the uniqueness constraints.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. identity
//     already taken — see store.ErrIdentityAlreadyExists).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	profileImageURL := req.ProfileImageURL
	if profileImageURL == "" {
		profileImageURL = models.DefaultProfileImageURL
	}

	user := models.User{
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    passwordHash,
		Bio:             req.Bio,
		ProfileImageURL: profileImageURL,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// It validates that identifier and password are non-empty, looks up the
// account by username or email, and only then verifies the password against
// the stored digest. The lookup result is checked BEFORE any password
// comparison: a missing account short-circuits immediately and never reaches
// the verification step.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if identifier or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, identifier, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if identifier == "" || password == "" {
		log.Error().Str("identifier", identifier).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		log.Err(err).Str("identifier", identifier).Msg("user search by identifier failed")
		return models.User{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	if !a.hasher.Verify(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CurrentUser resolves a verified identity to its account record.
//
// The token claims outlive the account: an identity whose record has been
// removed since token issuance resolves to a wrapped
// store.ErrNoUserWasFound, never to a nil dereference.
func (a *authService) CurrentUser(ctx context.Context, identity models.Identity) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Int64("id", identity.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the username as a custom
// claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, user.UserID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateSessionToken, verifying the signature and
// the issuer claim. Expiry is reported distinctly as ErrTokenIsExpired; any
// other validation failure (wrong signature, malformed, wrong issuer) is
// normalised to ErrTokenIsInvalid so that callers never inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
