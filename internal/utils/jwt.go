package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/akosyrev/snapthread/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token carries the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//   - username       : the subject's public handle
//
// ttl is always supplied by the caller; there is no hardcoded lifetime.
// Returns an error if issuer, username or signKey is empty or ttl is zero.
func GenerateSessionToken(issuer string, userID int64, username string, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || ttl == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{
		Token:         token,
		SessionClaims: claims,
		SignedString:  tokenString,
		UserID:        userID,
	}, nil
}

// ValidateSessionToken validates the given token string and extracts its claims.
//
// Validation includes:
//   - signature verification with signKey, restricted to the HS256 method
//   - issuer (iss) claim check against tokenIssuer
//   - expiration (exp) claim check
//   - subject (sub) claim presence and conversion to int64 UserID
//   - username claim presence
//
// Expired tokens surface as an error matching [jwt.ErrTokenExpired] via
// errors.Is, so callers can distinguish expiry from a bad signature or a
// malformed token.
func ValidateSessionToken(tokenString, signKey, tokenIssuer string) (models.Token, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	if claims.Username == "" {
		return models.Token{}, errors.New("empty username claim")
	}

	return models.Token{
		Token:         token,
		SessionClaims: *claims,
		SignedString:  tokenString,
		UserID:        userID,
	}, nil
}
