// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

// No mockgen directive here: Reconcile's variadic ReconcileOption would
// force the generated mock to import this package, and the in-package
// tests already import internal/mock, which would close an import cycle.
// The client sync tests run against the real SQLite-backed store instead.

import (
	"context"
	"time"

	"github.com/kinkeeper-app/kinkeeper/models"
)

// Reconciler merges an authoritative remote snapshot of one entity family
// into the local cache. The merge never consults timestamps: a local row
// with unacknowledged changes always wins over the snapshot, and only rows
// the server has previously acknowledged may be pruned as orphans.
type Reconciler interface {
	Reconcile(ctx context.Context, family, accountID string, remote []models.EntityRecord, opts ...ReconcileOption) error

	// SweepTombstones physically removes confirmed-synced tombstones older
	// than the retention window and returns the count.
	SweepTombstones(ctx context.Context, family string, retention time.Duration) (int64, error)
}

// FlushService drains the mutation queue against the remote backend,
// oldest entry first.
type FlushService interface {
	Flush(ctx context.Context) error
}

// FlushJob runs a FlushService periodically in the background. Start and
// Stop are idempotent; SyncNow requests an immediate out-of-schedule drain.
type FlushJob interface {
	Start(ctx context.Context, interval time.Duration)
	SyncNow()
	Stop()
}
