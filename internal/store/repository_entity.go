// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package store

import (
	"context"
	"fmt"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// entityRepository is the PostgreSQL-backed implementation of
// [EntityRepository]. Payloads are stored as JSONB keyed by (family,
// entity_id); replaying the same client mutation converges on the same row.
type entityRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	return &entityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *entityRepository) UpsertEntity(ctx context.Context, record models.EntityRecord) (models.EntityRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertEntity,
		record.Family,
		record.EntityID,
		record.AccountID,
		record.Payload,
		record.LastModifiedAt,
	)

	var saved models.EntityRecord
	if err := row.Scan(
		&saved.Family,
		&saved.EntityID,
		&saved.AccountID,
		&saved.Payload,
		&saved.LastModifiedAt,
	); err != nil {
		log.Err(err).
			Str("func", "entityRepository.UpsertEntity").
			Str("family", record.Family).
			Str("entity_id", record.EntityID).
			Msg("failed to upsert entity record")
		return models.EntityRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	saved.IsSynced = true
	return saved, nil
}

func (r *entityRepository) ListEntities(ctx context.Context, family, accountID string) ([]models.EntityRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listEntities, family, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.ListEntities").
			Str("family", family).
			Str("account_id", accountID).
			Msg("failed to execute query for listing entity records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.EntityRecord
	for rows.Next() {
		var record models.EntityRecord
		if scanErr := rows.Scan(
			&record.Family,
			&record.EntityID,
			&record.AccountID,
			&record.Payload,
			&record.LastModifiedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		record.IsSynced = true
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (r *entityRepository) DeleteEntity(ctx context.Context, family, entityID, accountID string) error {
	// deleting an already-absent row is fine: delete mutations are
	// replayed at-least-once by flushing clients
	if _, err := r.db.ExecContext(ctx, deleteEntity, family, entityID, accountID); err != nil {
		return fmt.Errorf("failed to delete entity record (family=%s, entity_id=%s): %w", family, entityID, err)
	}

	return nil
}
