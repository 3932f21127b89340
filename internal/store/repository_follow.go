// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kosyrev

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

// followRepository is the PostgreSQL-backed implementation of
// [FollowRepository]. It owns the "follows" table, whose
// (follower_id, followee_id) uniqueness constraint is the single authority
// for the at-most-one-relationship-per-pair invariant.
type followRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFollowRepository constructs a [FollowRepository] backed by the provided
// database connection and logger.
func NewFollowRepository(db *DB, logger *logger.Logger) FollowRepository {
	logger.Debug().Msg("creating follow repository")
	return &followRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new relationship record and returns it with
// server-assigned fields (ID, CreatedAt, UpdatedAt). The follower and
// followee usernames from the input are carried over untouched; the caller
// resolved them while validating the operation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrFollowAlreadyExists]. This
//     is how racing follow requests for the same pair are resolved: exactly
//     one INSERT succeeds.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *followRepository) Create(ctx context.Context, follow models.Follow) (models.Follow, error) {
	log := logger.FromContext(ctx)

	if follow.Status == "" {
		follow.Status = models.FollowStatusPending
	}

	row := r.db.QueryRowContext(ctx, createFollow,
		follow.FollowerID, follow.FolloweeID, string(follow.Status))

	if err := row.Scan(
		&follow.ID,
		&follow.FollowerID,
		&follow.FolloweeID,
		&follow.Status,
		&follow.CreatedAt,
		&follow.UpdatedAt,
	); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*followRepository.Create").Msg("follow pair already exists")
			return models.Follow{}, ErrFollowAlreadyExists
		case "":
			log.Err(err).Str("func", "*followRepository.Create").Msg("error: scanning error")
			return models.Follow{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).
				Str("func", "*followRepository.Create").
				Str("classification", r.db.errorClassificator.Classify(err).String()).
				Msg("unexpected DB error")
			return models.Follow{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return follow, nil
}

// FindOne returns the single relationship matching filter, with both
// usernames resolved via joins (see [buildFindFollowQuery]).
//
// Error handling:
//   - Empty filter → [ErrBuildingSQLQuery].
//   - Empty result set ([sql.ErrNoRows]) → [ErrFollowNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *followRepository) FindOne(ctx context.Context, filter FollowFilter) (models.Follow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindFollowQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*followRepository.FindOne").Msg("error building query")
		return models.Follow{}, err
	}

	var found models.Follow
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(
		&found.ID,
		&found.FollowerID,
		&found.FolloweeID,
		&found.FollowerUsername,
		&found.FolloweeUsername,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Follow{}, ErrFollowNotFound
		}

		log.Err(err).
			Str("func", "*followRepository.FindOne").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("unexpected DB error")
		return models.Follow{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateStatus persists a status transition for the record with the given id
// and bumps updated_at.
//
// Error handling:
//   - Zero rows affected → [ErrFollowNotFound].
//   - Any driver-level error → wrapped as [ErrExecutingStatement].
func (r *followRepository) UpdateStatus(ctx context.Context, id int64, status models.FollowStatus) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateFollowStatus, string(status), id)
	if err != nil {
		log.Err(err).Str("func", "*followRepository.UpdateStatus").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFollowNotFound
	}

	return nil
}

// DeleteByID removes the relationship record entirely. Unfollow is a
// deletion, not a status transition, so it is valid from any status.
//
// Error handling mirrors [UpdateStatus].
func (r *followRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFollowByID, id)
	if err != nil {
		log.Err(err).Str("func", "*followRepository.DeleteByID").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFollowNotFound
	}

	return nil
}
