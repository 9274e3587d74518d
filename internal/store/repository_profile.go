// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. The propagation trigger runs profile and detail
// writes through a tx-bound copy obtained via WithTx, so every mirror write
// commits or rolls back together with the originating mutation.
type profileRepository struct {
	q      querier
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		q:      db.DB,
		logger: logger,
	}
}

func (r *profileRepository) WithTx(tx *sql.Tx) ProfileRepository {
	return &profileRepository{q: tx, logger: r.logger}
}

func (r *profileRepository) GetProfile(ctx context.Context, profileID string) (models.Profile, error) {
	row := r.q.QueryRowContext(ctx, getProfile, profileID)

	profile, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, fmt.Errorf("%w: profile %s", ErrNotFound, profileID)
		}
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

func (r *profileRepository) GetPrimaryProfile(ctx context.Context, userID string) (models.Profile, error) {
	row := r.q.QueryRowContext(ctx, getPrimaryProfile, userID)

	profile, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, fmt.Errorf("%w: primary profile for user %s", ErrNotFound, userID)
		}
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

func (r *profileRepository) ListProfiles(ctx context.Context, accountID string) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, listProfiles, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.ListProfiles").
			Str("account_id", accountID).
			Msg("failed to execute query for listing profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		profile, scanErr := scanProfile(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		profiles = append(profiles, profile)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return profiles, nil
}

func (r *profileRepository) SaveProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, saveProfile,
		profile.ID,
		profile.AccountID,
		profile.UserID,
		profile.IsPrimary,
		profile.Name,
		profile.PreferredName,
		profile.Email,
		profile.Birthday,
		profile.Deceased,
		profile.DateOfDeath,
		profile.Address,
		profile.Phone,
		profile.PhotoURL,
		profile.SourceUserID,
		profile.IsLocalOnly,
		profile.SyncConnectionID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.SaveProfile").
			Str("profile_id", profile.ID).
			Msg("failed to execute upsert for profile")
		return fmt.Errorf("failed to save profile (profile_id=%s): %w", profile.ID, err)
	}

	return nil
}

func (r *profileRepository) DeleteProfile(ctx context.Context, profileID string) error {
	if _, err := r.q.ExecContext(ctx, deleteProfile, profileID); err != nil {
		return fmt.Errorf("failed to delete profile (profile_id=%s): %w", profileID, err)
	}

	return nil
}

func (r *profileRepository) ClearSharedCoreFields(ctx context.Context, profileID string) error {
	if _, err := r.q.ExecContext(ctx, clearSharedCoreFields, profileID); err != nil {
		return fmt.Errorf("failed to clear shared core fields (profile_id=%s): %w", profileID, err)
	}

	return nil
}

func (r *profileRepository) MarkLocalOnly(ctx context.Context, profileID string) error {
	result, err := r.q.ExecContext(ctx, markProfileLocalOnly, profileID)
	if err != nil {
		return fmt.Errorf("failed to mark profile local-only (profile_id=%s): %w", profileID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (profile_id=%s): %w", profileID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: profile %s", ErrNotFound, profileID)
	}

	return nil
}

func (r *profileRepository) GetDetail(ctx context.Context, detailID string) (models.ProfileDetail, error) {
	row := r.q.QueryRowContext(ctx, getDetail, detailID)

	detail, err := scanDetail(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProfileDetail{}, fmt.Errorf("%w: detail %s", ErrNotFound, detailID)
		}
		return models.ProfileDetail{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return detail, nil
}

// ListDetails narrows to the given categories when any are passed; the
// query is built dynamically because the category set varies per call site
// (per-category reconciliation fetches, sharing re-mirror scans).
func (r *profileRepository) ListDetails(ctx context.Context, profileID string, categories ...string) ([]models.ProfileDetail, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("detail_id", "account_id", "profile_id", "category", "label", "value").
		From("profile_details").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("detail_id").
		PlaceholderFormat(sq.Dollar)
	if len(categories) > 0 {
		builder = builder.Where(sq.Eq{"category": categories})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build details query: %w", err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.ListDetails").
			Str("profile_id", profileID).
			Msg("failed to execute query for listing details")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectDetails(rows)
}

func (r *profileRepository) ListDetailsByAccount(ctx context.Context, accountID string) ([]models.ProfileDetail, error) {
	rows, err := r.q.QueryContext(ctx, listDetailsByAccount, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectDetails(rows)
}

func (r *profileRepository) SaveDetail(ctx context.Context, detail models.ProfileDetail) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, saveDetail,
		detail.ID,
		detail.AccountID,
		detail.ProfileID,
		detail.Category,
		detail.Label,
		detail.Value,
	)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.SaveDetail").
			Str("detail_id", detail.ID).
			Str("profile_id", detail.ProfileID).
			Msg("failed to execute upsert for profile detail")
		return fmt.Errorf("failed to save detail (detail_id=%s): %w", detail.ID, err)
	}

	return nil
}

func (r *profileRepository) DeleteDetail(ctx context.Context, detailID string) error {
	if _, err := r.q.ExecContext(ctx, deleteDetail, detailID); err != nil {
		return fmt.Errorf("failed to delete detail (detail_id=%s): %w", detailID, err)
	}

	return nil
}

func scanProfile(scan func(dest ...any) error) (models.Profile, error) {
	var profile models.Profile
	if err := scan(
		&profile.ID,
		&profile.AccountID,
		&profile.UserID,
		&profile.IsPrimary,
		&profile.Name,
		&profile.PreferredName,
		&profile.Email,
		&profile.Birthday,
		&profile.Deceased,
		&profile.DateOfDeath,
		&profile.Address,
		&profile.Phone,
		&profile.PhotoURL,
		&profile.SourceUserID,
		&profile.IsLocalOnly,
		&profile.SyncConnectionID,
	); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func scanDetail(scan func(dest ...any) error) (models.ProfileDetail, error) {
	var detail models.ProfileDetail
	if err := scan(
		&detail.ID,
		&detail.AccountID,
		&detail.ProfileID,
		&detail.Category,
		&detail.Label,
		&detail.Value,
	); err != nil {
		return models.ProfileDetail{}, err
	}

	return detail, nil
}

func collectDetails(rows *sql.Rows) ([]models.ProfileDetail, error) {
	var details []models.ProfileDetail
	for rows.Next() {
		detail, err := scanDetail(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return details, nil
}
