// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// connectionRepository is the PostgreSQL-backed implementation of
// [ConnectionRepository].
type connectionRepository struct {
	q      querier
	logger *logger.Logger
}

func NewConnectionRepository(db *DB, logger *logger.Logger) ConnectionRepository {
	return &connectionRepository{
		q:      db.DB,
		logger: logger,
	}
}

func (r *connectionRepository) WithTx(tx *sql.Tx) ConnectionRepository {
	return &connectionRepository{q: tx, logger: r.logger}
}

func (r *connectionRepository) CreateConnection(ctx context.Context, connection models.SyncConnection) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, createConnection,
		connection.ID,
		connection.Status,
		connection.SideA.AccountID,
		connection.SideA.UserID,
		connection.SideA.SourceProfileID,
		connection.SideA.SyncedProfileID,
		connection.SideB.AccountID,
		connection.SideB.UserID,
		connection.SideB.SourceProfileID,
		connection.SideB.SyncedProfileID,
		connection.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: connection %s", ErrDuplicate, connection.ID)
		}
		log.Err(err).
			Str("func", "connectionRepository.CreateConnection").
			Str("connection_id", connection.ID).
			Msg("failed to insert sync connection")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *connectionRepository) GetConnection(ctx context.Context, connectionID string) (models.SyncConnection, error) {
	row := r.q.QueryRowContext(ctx, getConnection, connectionID)

	connection, err := scanConnection(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncConnection{}, fmt.Errorf("%w: connection %s", ErrNotFound, connectionID)
		}
		return models.SyncConnection{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return connection, nil
}

func (r *connectionRepository) ListActiveConnectionsForUser(ctx context.Context, userID string) ([]models.SyncConnection, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, listActiveConnectionsForUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "connectionRepository.ListActiveConnectionsForUser").
			Str("user_id", userID).
			Msg("failed to execute query for listing active connections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var connections []models.SyncConnection
	for rows.Next() {
		connection, scanErr := scanConnection(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		connections = append(connections, connection)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return connections, nil
}

func (r *connectionRepository) SeverConnection(ctx context.Context, connectionID string, at time.Time) error {
	result, err := r.q.ExecContext(ctx, severConnection, connectionID, at)
	if err != nil {
		return fmt.Errorf("failed to sever connection (connection_id=%s): %w", connectionID, err)
	}

	// zero rows means the connection is absent or already severed; the
	// state machine has no way back from severed, so treat it as not found.
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (connection_id=%s): %w", connectionID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: active connection %s", ErrNotFound, connectionID)
	}

	return nil
}

func (r *connectionRepository) IsShared(ctx context.Context, sourceProfileID, targetUserID, category string) (bool, error) {
	var shared bool
	err := r.q.QueryRowContext(ctx, getSharingPreference, sourceProfileID, targetUserID, category).Scan(&shared)
	if err != nil {
		// default-open: no stored preference means the category is shared
		if errors.Is(err, sql.ErrNoRows) {
			return true, nil
		}
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return shared, nil
}

func (r *connectionRepository) UpsertSharingPreference(ctx context.Context, pref models.SharingPreference) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, upsertSharingPreference,
		pref.SourceProfileID,
		pref.TargetUserID,
		pref.Category,
		pref.IsShared,
	)
	if err != nil {
		log.Err(err).
			Str("func", "connectionRepository.UpsertSharingPreference").
			Str("source_profile_id", pref.SourceProfileID).
			Str("category", pref.Category).
			Msg("failed to upsert sharing preference")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *connectionRepository) SaveMapping(ctx context.Context, mapping models.DetailSyncMapping) error {
	_, err := r.q.ExecContext(ctx, saveDetailMapping,
		mapping.ConnectionID,
		mapping.SourceDetailID,
		mapping.SyncedDetailID,
	)
	if err != nil {
		return fmt.Errorf("failed to save detail mapping (source_detail_id=%s): %w", mapping.SourceDetailID, err)
	}

	return nil
}

func (r *connectionRepository) ListMappingsBySourceDetail(ctx context.Context, sourceDetailID string) ([]models.DetailSyncMapping, error) {
	rows, err := r.q.QueryContext(ctx, listMappingsBySourceDetail, sourceDetailID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectMappings(rows)
}

func (r *connectionRepository) ListMappingsByConnection(ctx context.Context, connectionID string) ([]models.DetailSyncMapping, error) {
	rows, err := r.q.QueryContext(ctx, listMappingsByConnection, connectionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectMappings(rows)
}

func (r *connectionRepository) DeleteMapping(ctx context.Context, connectionID, sourceDetailID string) error {
	if _, err := r.q.ExecContext(ctx, deleteDetailMapping, connectionID, sourceDetailID); err != nil {
		return fmt.Errorf("failed to delete detail mapping (source_detail_id=%s): %w", sourceDetailID, err)
	}

	return nil
}

func scanConnection(scan func(dest ...any) error) (models.SyncConnection, error) {
	var connection models.SyncConnection
	if err := scan(
		&connection.ID,
		&connection.Status,
		&connection.SideA.AccountID,
		&connection.SideA.UserID,
		&connection.SideA.SourceProfileID,
		&connection.SideA.SyncedProfileID,
		&connection.SideB.AccountID,
		&connection.SideB.UserID,
		&connection.SideB.SourceProfileID,
		&connection.SideB.SyncedProfileID,
		&connection.CreatedAt,
		&connection.SeveredAt,
	); err != nil {
		return models.SyncConnection{}, err
	}

	return connection, nil
}

func collectMappings(rows *sql.Rows) ([]models.DetailSyncMapping, error) {
	var mappings []models.DetailSyncMapping
	for rows.Next() {
		var mapping models.DetailSyncMapping
		if err := rows.Scan(&mapping.ConnectionID, &mapping.SourceDetailID, &mapping.SyncedDetailID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		mappings = append(mappings, mapping)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return mappings, nil
}
