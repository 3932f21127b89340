package models

import "time"

// FollowStatus is the lifecycle state of a follow relationship.
type FollowStatus string

// Valid follow-relationship states. A relationship starts as pending and
// moves exactly once to accepted or rejected; both are terminal. Unfollow is
// not a state — it deletes the record.
const (
	FollowStatusPending  FollowStatus = "pending"
	FollowStatusAccepted FollowStatus = "accepted"
	FollowStatusRejected FollowStatus = "rejected"
)

// IsValid reports whether s is one of the known follow states.
func (s FollowStatus) IsValid() bool {
	switch s {
	case FollowStatusPending, FollowStatusAccepted, FollowStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is allowed from s.
func (s FollowStatus) Terminal() bool {
	return s == FollowStatusAccepted || s == FollowStatusRejected
}

// Follow is a directed follow relationship between two users.
//
// Users are referenced by their stable internal IDs; usernames are resolved
// by the store at read time purely for presentation, so a future username
// rename cannot orphan the relationship. At most one record exists per
// ordered (follower, followee) pair, enforced by a database uniqueness
// constraint.
type Follow struct {
	// ID is the internal unique identifier of the relationship record.
	ID int64 `json:"-"`

	// FollowerID references the user who requested the follow.
	FollowerID int64 `json:"-"`

	// FolloweeID references the user being followed.
	FolloweeID int64 `json:"-"`

	// FollowerUsername is the follower's handle resolved at read time.
	FollowerUsername string `json:"follower"`

	// FolloweeUsername is the followee's handle resolved at read time.
	FolloweeUsername string `json:"followee"`

	// Status is the lifecycle state of the relationship.
	Status FollowStatus `json:"status"`

	// CreatedAt is when the follow was first requested.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the record was last mutated (status transition).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Follow model.
func (f Follow) TableName() string {
	return "follows"
}
