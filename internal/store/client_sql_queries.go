// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package store

// Cache table queries. Every query is instantiated per entity family via
// fmt.Sprintf with a validated table name; the data placeholders stay
// positional.
const (
	createCacheTable = `
		CREATE TABLE IF NOT EXISTS %s (
			entity_id        TEXT PRIMARY KEY,
			account_id       TEXT NOT NULL,
			payload          TEXT NOT NULL,
			is_synced        INTEGER NOT NULL DEFAULT 0,
			locally_deleted  INTEGER NOT NULL DEFAULT 0,
			last_modified_at TIMESTAMP NOT NULL
		);`

	upsertCacheRecord = `
		INSERT INTO %s (
			entity_id,
			account_id,
			payload,
			is_synced,
			locally_deleted,
			last_modified_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (entity_id) DO UPDATE SET
			account_id       = excluded.account_id,
			payload          = excluded.payload,
			is_synced        = excluded.is_synced,
			locally_deleted  = excluded.locally_deleted,
			last_modified_at = excluded.last_modified_at;`

	getCacheRecord = `
		SELECT
			entity_id,
			account_id,
			payload,
			is_synced,
			locally_deleted,
			last_modified_at
		FROM %s
		WHERE entity_id = $1;`

	listCacheRecords = `
		SELECT
			entity_id,
			account_id,
			payload,
			is_synced,
			locally_deleted,
			last_modified_at
		FROM %s
		WHERE account_id = $1 AND locally_deleted = 0
		ORDER BY entity_id;`

	listCacheRecordsWithDeleted = `
		SELECT
			entity_id,
			account_id,
			payload,
			is_synced,
			locally_deleted,
			last_modified_at
		FROM %s
		WHERE account_id = $1
		ORDER BY entity_id;`

	getCacheRecordAccount = `
		SELECT account_id
		FROM %s
		WHERE entity_id = $1;`

	softDeleteCacheRecord = `
		UPDATE %s SET
			locally_deleted  = 1,
			is_synced        = 0,
			last_modified_at = $1
		WHERE entity_id = $2;`

	selectCascadeChildren = `
		SELECT entity_id, account_id
		FROM %s
		WHERE locally_deleted = 0
		  AND json_extract(payload, $1) = $2;`

	softDeleteCacheChildren = `
		UPDATE %s SET
			locally_deleted  = 1,
			is_synced        = 0,
			last_modified_at = $1
		WHERE locally_deleted = 0
		  AND json_extract(payload, $2) = $3;`

	markCacheRecordSynced = `
		UPDATE %s SET is_synced = 1
		WHERE entity_id = $1;`

	deleteCacheRecord = `
		DELETE FROM %s
		WHERE entity_id = $1;`

	sweepCacheTombstones = `
		DELETE FROM %s
		WHERE locally_deleted = 1
		  AND is_synced = 1
		  AND last_modified_at < $1;`
)

// Mutation queue queries.
const (
	createMutationQueueTable = `
		CREATE TABLE IF NOT EXISTS mutation_queue (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			family      TEXT NOT NULL,
			entity_id   TEXT NOT NULL,
			account_id  TEXT NOT NULL,
			change_type TEXT NOT NULL,
			enqueued_at TIMESTAMP NOT NULL
		);`

	enqueueMutation = `
		INSERT INTO mutation_queue (family, entity_id, account_id, change_type, enqueued_at)
		VALUES ($1, $2, $3, $4, $5);`

	listPendingMutations = `
		SELECT id, family, entity_id, account_id, change_type, enqueued_at
		FROM mutation_queue
		ORDER BY id;`

	dequeueMutation = `
		DELETE FROM mutation_queue
		WHERE id = $1;`
)
