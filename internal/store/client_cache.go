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

type localEntityCache struct {
	*ClientDB
	logger *logger.Logger
}

func NewEntityCache(db *ClientDB, logger *logger.Logger) EntityCache {
	return &localEntityCache{
		ClientDB: db,
		logger:   logger,
	}
}

func (c *localEntityCache) Save(ctx context.Context, records ...models.EntityRecord) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		if err := validateFamily(record.Family); err != nil {
			return err
		}

		_, err := c.DB.ExecContext(ctx, fmt.Sprintf(upsertCacheRecord, cacheTableName(record.Family)),
			record.EntityID,
			record.AccountID,
			string(record.Payload),
			record.IsSynced,
			record.LocallyDeleted,
			record.LastModifiedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localEntityCache.Save").
				Str("family", record.Family).
				Str("entity_id", record.EntityID).
				Msg("failed to execute upsert for cache record")
			return fmt.Errorf("failed to save cache record (entity_id=%s): %w", record.EntityID, err)
		}
	}

	return nil
}

// SaveQueued commits the upsert and its queue entry in one transaction.
// A plain Save followed by an Enqueue would leave a window in which a
// crash strands an unsynced row the flush worker never learns about.
func (c *localEntityCache) SaveQueued(ctx context.Context, record models.EntityRecord, change models.ChangeType) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validateFamily(record.Family); err != nil {
		return 0, err
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin save queued tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, fmt.Sprintf(upsertCacheRecord, cacheTableName(record.Family)),
		record.EntityID,
		record.AccountID,
		string(record.Payload),
		record.IsSynced,
		record.LocallyDeleted,
		record.LastModifiedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localEntityCache.SaveQueued").
			Str("family", record.Family).
			Str("entity_id", record.EntityID).
			Msg("failed to execute upsert for cache record")
		return 0, fmt.Errorf("failed to save cache record (entity_id=%s): %w", record.EntityID, err)
	}

	mutationID, err := c.enqueueInTx(ctx, tx, models.Mutation{
		Family:     record.Family,
		EntityID:   record.EntityID,
		AccountID:  record.AccountID,
		ChangeType: change,
		EnqueuedAt: record.LastModifiedAt,
	})
	if err != nil {
		log.Err(err).
			Str("func", "localEntityCache.SaveQueued").
			Str("family", record.Family).
			Str("entity_id", record.EntityID).
			Msg("failed to enqueue mutation for cache record")
		return 0, fmt.Errorf("failed to enqueue mutation (entity_id=%s): %w", record.EntityID, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save queued tx: %w", err)
	}

	return mutationID, nil
}

func (c *localEntityCache) Get(ctx context.Context, family, entityID string) (models.EntityRecord, error) {
	log := logger.FromContext(ctx)

	if err := validateFamily(family); err != nil {
		return models.EntityRecord{}, err
	}

	row := c.DB.QueryRowContext(ctx, fmt.Sprintf(getCacheRecord, cacheTableName(family)), entityID)

	record, err := scanCacheRecord(family, row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EntityRecord{}, fmt.Errorf("%w: %s/%s", ErrNotFound, family, entityID)
		}
		log.Err(err).
			Str("func", "localEntityCache.Get").
			Str("family", family).
			Str("entity_id", entityID).
			Msg("failed to scan cache record")
		return models.EntityRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (c *localEntityCache) List(ctx context.Context, family, accountID string, includeDeleted bool) ([]models.EntityRecord, error) {
	log := logger.FromContext(ctx)

	if err := validateFamily(family); err != nil {
		return nil, err
	}

	query := listCacheRecords
	if includeDeleted {
		query = listCacheRecordsWithDeleted
	}

	rows, err := c.DB.QueryContext(ctx, fmt.Sprintf(query, cacheTableName(family)), accountID)
	if err != nil {
		log.Err(err).
			Str("func", "localEntityCache.List").
			Str("family", family).
			Str("account_id", accountID).
			Msg("failed to execute query for listing cache records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.EntityRecord
	for rows.Next() {
		record, scanErr := scanCacheRecord(family, rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localEntityCache.List").
				Str("family", family).
				Msg("failed to scan cache record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localEntityCache.List").
			Str("family", family).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// SoftDelete tombstones the parent row and all cascaded children and
// enqueues their delete mutations in one transaction, so a crash
// mid-operation never leaves a child referencing a tombstoned parent or a
// tombstone the flush worker never learns about.
func (c *localEntityCache) SoftDelete(ctx context.Context, family, entityID string, cascades []Cascade, at time.Time) ([]models.Mutation, error) {
	log := logger.FromContext(ctx)

	if err := validateFamily(family); err != nil {
		return nil, err
	}
	for _, cascade := range cascades {
		if err := validateFamily(cascade.ChildFamily); err != nil {
			return nil, err
		}
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin soft delete tx: %w", err)
	}
	defer tx.Rollback()

	var accountID string
	err = tx.QueryRowContext(ctx, fmt.Sprintf(getCacheRecordAccount, cacheTableName(family)), entityID).Scan(&accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, family, entityID)
		}
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if _, err = tx.ExecContext(ctx, fmt.Sprintf(softDeleteCacheRecord, cacheTableName(family)), at, entityID); err != nil {
		log.Err(err).
			Str("func", "localEntityCache.SoftDelete").
			Str("family", family).
			Str("entity_id", entityID).
			Msg("failed to execute soft delete")
		return nil, fmt.Errorf("failed to soft delete (entity_id=%s): %w", entityID, err)
	}

	mutations := []models.Mutation{{
		Family:     family,
		EntityID:   entityID,
		AccountID:  accountID,
		ChangeType: models.ChangeDelete,
		EnqueuedAt: at,
	}}
	for _, cascade := range cascades {
		children, cascadeErr := c.cascadeChildren(ctx, tx, cascade, entityID, at)
		if cascadeErr != nil {
			log.Err(cascadeErr).
				Str("func", "localEntityCache.SoftDelete").
				Str("family", family).
				Str("child_family", cascade.ChildFamily).
				Str("entity_id", entityID).
				Msg("failed to cascade soft delete to children")
			return nil, fmt.Errorf("failed to cascade soft delete to %s: %w", cascade.ChildFamily, cascadeErr)
		}
		mutations = append(mutations, children...)
	}

	for i := range mutations {
		mutations[i].ID, err = c.enqueueInTx(ctx, tx, mutations[i])
		if err != nil {
			return nil, fmt.Errorf("failed to enqueue delete mutation (entity_id=%s): %w", mutations[i].EntityID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit soft delete tx: %w", err)
	}

	return mutations, nil
}

func (c *localEntityCache) cascadeChildren(ctx context.Context, tx *sql.Tx, cascade Cascade, parentID string, at time.Time) ([]models.Mutation, error) {
	table := cacheTableName(cascade.ChildFamily)
	field := "$." + cascade.ParentField

	rows, err := tx.QueryContext(ctx, fmt.Sprintf(selectCascadeChildren, table), field, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []models.Mutation
	for rows.Next() {
		child := models.Mutation{
			Family:     cascade.ChildFamily,
			ChangeType: models.ChangeDelete,
			EnqueuedAt: at,
		}
		if err = rows.Scan(&child.EntityID, &child.AccountID); err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, fmt.Sprintf(softDeleteCacheChildren, table), at, field, parentID); err != nil {
		return nil, err
	}

	return children, nil
}

func (c *localEntityCache) enqueueInTx(ctx context.Context, tx *sql.Tx, m models.Mutation) (int64, error) {
	result, err := tx.ExecContext(ctx, enqueueMutation,
		m.Family,
		m.EntityID,
		m.AccountID,
		string(m.ChangeType),
		m.EnqueuedAt,
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (c *localEntityCache) MarkSynced(ctx context.Context, family, entityID string) error {
	if err := validateFamily(family); err != nil {
		return err
	}

	result, err := c.DB.ExecContext(ctx, fmt.Sprintf(markCacheRecordSynced, cacheTableName(family)), entityID)
	if err != nil {
		return fmt.Errorf("failed to mark record synced (entity_id=%s): %w", entityID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (entity_id=%s): %w", entityID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, family, entityID)
	}

	return nil
}

func (c *localEntityCache) Delete(ctx context.Context, family, entityID string) error {
	if err := validateFamily(family); err != nil {
		return err
	}

	if _, err := c.DB.ExecContext(ctx, fmt.Sprintf(deleteCacheRecord, cacheTableName(family)), entityID); err != nil {
		return fmt.Errorf("failed to delete cache record (entity_id=%s): %w", entityID, err)
	}

	return nil
}

func (c *localEntityCache) Sweep(ctx context.Context, family string, cutoff time.Time) (int64, error) {
	if err := validateFamily(family); err != nil {
		return 0, err
	}

	result, err := c.DB.ExecContext(ctx, fmt.Sprintf(sweepCacheTombstones, cacheTableName(family)), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep tombstones for %s: %w", family, err)
	}

	return result.RowsAffected()
}

func scanCacheRecord(family string, scan func(dest ...any) error) (models.EntityRecord, error) {
	var record models.EntityRecord
	var payload string

	if err := scan(
		&record.EntityID,
		&record.AccountID,
		&payload,
		&record.IsSynced,
		&record.LocallyDeleted,
		&record.LastModifiedAt,
	); err != nil {
		return models.EntityRecord{}, err
	}

	record.Family = family
	record.Payload = []byte(payload)

	return record, nil
}
