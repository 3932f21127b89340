// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, session token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/akosyrev/snapthread/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the verified caller identity in
// the request context. Only the authentication middleware writes this value;
// handlers read it via GetIdentityFromContext.
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the verified identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true  — value is found and has the correct models.Identity type
//   - ok == false — value is missing or has an unexpected type
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
