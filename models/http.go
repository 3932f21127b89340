package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login. UsernameOrEmail is
// matched against both identifying columns.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// AuthResponse is returned by register and login. Token carries the compact
// JWS string; the same value is duplicated in the Authorization response
// header.
type AuthResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token"`
}

// UserResponse is returned by GET /api/auth/me.
type UserResponse struct {
	User PublicUser `json:"user"`
}

// FollowResponse is returned by the follow-graph endpoints that address a
// relationship record.
type FollowResponse struct {
	Message string `json:"message"`
	Follow  Follow `json:"follow"`
}

// MessageResponse is the generic body for endpoints (and errors) that carry
// only a human-readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}
