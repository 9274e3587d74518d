// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/kinkeeper-app/kinkeeper/models"
)

// Cascade declares one parent→child soft-delete rule: when a parent entity
// is tombstoned, every row of ChildFamily whose payload's ParentField equals
// the parent id is tombstoned in the same local transaction.
type Cascade struct {
	ChildFamily string
	ParentField string
}

// EntityCache is the durable local cache of entity records, one table per
// entity family. All operations run on a single-connection SQLite handle,
// so cache access is serialized process-wide. The mutation queue lives in
// the same database file, which is what lets SaveQueued and SoftDelete
// commit a row change and its queue entry together.
type EntityCache interface {
	// Save upserts records by (family, entity id), overwriting both the
	// payload and the sync columns.
	Save(ctx context.Context, records ...models.EntityRecord) error

	// SaveQueued upserts one record and appends the matching mutation
	// queue entry in a single transaction, so a crash can never strand
	// an unsynced row without a queued change. Returns the queue id of
	// the appended entry.
	SaveQueued(ctx context.Context, record models.EntityRecord, change models.ChangeType) (int64, error)

	// Get returns one record, tombstoned or not. Returns ErrNotFound if
	// no row exists.
	Get(ctx context.Context, family, entityID string) (models.EntityRecord, error)

	// List returns the records of one family within one account scope.
	// Tombstoned rows are excluded unless includeDeleted is set.
	List(ctx context.Context, family, accountID string, includeDeleted bool) ([]models.EntityRecord, error)

	// SoftDelete tombstones a record and any cascaded children and
	// enqueues one delete mutation per tombstoned row, all within a
	// single transaction, marking the touched rows unsynced. Returns
	// the enqueued mutations in queue order, parent first, and
	// ErrNotFound if the parent row does not exist.
	SoftDelete(ctx context.Context, family, entityID string, cascades []Cascade, at time.Time) ([]models.Mutation, error)

	// MarkSynced flags a record as acknowledged by the remote backend.
	MarkSynced(ctx context.Context, family, entityID string) error

	// Delete physically removes a record. Used only for confirmed-deleted
	// orphans and pushed tombstones; ordinary deletion is SoftDelete.
	Delete(ctx context.Context, family, entityID string) error

	// Sweep physically removes tombstoned rows that are synced and whose
	// last modification is older than cutoff, bounding tombstone
	// accumulation. Returns the number of pruned rows.
	Sweep(ctx context.Context, family string, cutoff time.Time) (int64, error)
}

// MutationQueue is the durable, append-only list of entity mutations not
// yet confirmed by the remote backend.
type MutationQueue interface {
	// Enqueue appends one mutation. A later entry for the same entity
	// never cancels an earlier one.
	Enqueue(ctx context.Context, m models.Mutation) error

	// ListPending returns all queued mutations in enqueue order.
	ListPending(ctx context.Context) ([]models.Mutation, error)

	// Dequeue removes one confirmed entry by its queue id.
	Dequeue(ctx context.Context, id int64) error
}
