package models

import "time"

// DefaultProfileImageURL is assigned to accounts registered without an
// avatar of their own.
const DefaultProfileImageURL = "https://cdn.snapthread.dev/avatars/placeholder.webp"

// User represents an account entity used for authentication and the social
// graph. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique public handle of the user. Follow operations
	// address users by this value.
	Username string `json:"username"`

	// Email is the unique contact address of the user. Accepted as a login
	// identifier interchangeably with Username.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// Bio is an optional free-form profile text.
	Bio string `json:"bio,omitempty"`

	// ProfileImageURL points at the user's avatar. Defaults to
	// [DefaultProfileImageURL] when registration omits it.
	ProfileImageURL string `json:"profile_image_url"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the sanitized projection of the user that is safe to write
// into response bodies. The password hash is excluded by construction.
func (u User) Public() PublicUser {
	return PublicUser{
		Username:        u.Username,
		Email:           u.Email,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
	}
}

// PublicUser is the outward-facing user projection. It deliberately has no
// field for the password hash so a future refactor cannot leak it by
// accident.
type PublicUser struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profile_image_url"`
}
