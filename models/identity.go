package models

// Identity is the verified caller identity extracted from a session token.
//
// It is produced exclusively by the authentication middleware and passed
// explicitly into service calls. Services trust its contents as-is: claims
// stay valid until token expiry even if the underlying account changes.
type Identity struct {
	// UserID is the stable internal identifier of the authenticated user.
	UserID int64

	// Username is the public handle the token was issued for.
	Username string
}
