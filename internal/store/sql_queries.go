package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, bio, profile_image_url)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, username, email, password_hash, bio, profile_image_url, created_at;`

	findUserByIdentifier = `SELECT user_id, username, email, password_hash, bio, profile_image_url, created_at
    FROM users
    WHERE username = $1 OR email = $1;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, bio, profile_image_url, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, bio, profile_image_url, created_at
    FROM users
    WHERE user_id = $1;`

	createFollow = `INSERT INTO follows (follower_id, followee_id, status)
    VALUES ($1, $2, $3)
    RETURNING id, follower_id, followee_id, status, created_at, updated_at;`

	updateFollowStatus = `UPDATE follows
    SET status = $1, updated_at = NOW()
    WHERE id = $2;`

	deleteFollowByID = `DELETE FROM follows
    WHERE id = $1;`
)

// buildFindFollowQuery builds the SELECT for [FollowRepository.FindOne].
// Usernames are resolved through two joins against the users table so the
// presentation layer never needs a second lookup. Nil filter fields are
// skipped; an entirely empty filter yields ErrBuildingSQLQuery.
func buildFindFollowQuery(filter FollowFilter) (string, []any, error) {
	if filter.FollowerID == nil && filter.FolloweeID == nil && filter.Status == nil {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.
		Select(
			"f.id",
			"f.follower_id",
			"f.followee_id",
			"fr.username AS follower_username",
			"fe.username AS followee_username",
			"f.status",
			"f.created_at",
			"f.updated_at",
		).
		From("follows f").
		Join("users fr ON fr.user_id = f.follower_id").
		Join("users fe ON fe.user_id = f.followee_id").
		PlaceholderFormat(sq.Dollar)

	if filter.FollowerID != nil {
		builder = builder.Where(sq.Eq{"f.follower_id": *filter.FollowerID})
	}
	if filter.FolloweeID != nil {
		builder = builder.Where(sq.Eq{"f.followee_id": *filter.FolloweeID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"f.status": string(*filter.Status)})
	}

	return builder.ToSql()
}
