// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/models"
)

type reconcileOptions struct {
	scopeField  string
	scopeValues map[string]struct{}
}

type ReconcileOption func(*reconcileOptions)

// WithCategoryScope restricts orphan pruning to local rows whose payload
// field matches one of the given values. Used when the remote snapshot
// covers only a slice of the family (e.g. details of one category): rows
// outside the fetched scope are absent from the snapshot for scoping
// reasons, not because the server deleted them.
func WithCategoryScope(payloadField string, values ...string) ReconcileOption {
	return func(o *reconcileOptions) {
		o.scopeField = payloadField
		o.scopeValues = make(map[string]struct{}, len(values))
		for _, v := range values {
			o.scopeValues[v] = struct{}{}
		}
	}
}

type reconciler struct {
	cache  store.EntityCache
	now    func() time.Time
	logger *logger.Logger
}

func NewReconciler(cache store.EntityCache, log *logger.Logger) Reconciler {
	return &reconciler{
		cache:  cache,
		now:    time.Now,
		logger: log,
	}
}

// Reconcile merges the remote snapshot into the cache:
//
//   - a remote record lands locally unless the local row carries
//     unacknowledged changes (IsSynced=false), which includes pending
//     tombstones — local intent is never lost to a refresh;
//   - local rows absent from the snapshot are pruned only when the server
//     had previously acknowledged them (IsSynced=true) and they fall inside
//     the snapshot's scope; unsynced rows are pending creates, not orphans.
func (r *reconciler) Reconcile(ctx context.Context, family, accountID string, remote []models.EntityRecord, opts ...ReconcileOption) error {
	log := logger.FromContext(ctx)

	var options reconcileOptions
	for _, opt := range opts {
		opt(&options)
	}

	local, err := r.cache.List(ctx, family, accountID, true)
	if err != nil {
		return fmt.Errorf("reconcile %s: list local: %w", family, err)
	}

	localByID := make(map[string]models.EntityRecord, len(local))
	for _, record := range local {
		localByID[record.EntityID] = record
	}

	remoteIDs := make(map[string]struct{}, len(remote))
	for _, record := range remote {
		remoteIDs[record.EntityID] = struct{}{}

		if existing, ok := localByID[record.EntityID]; ok && !existing.IsSynced {
			continue
		}

		record.Family = family
		record.IsSynced = true
		record.LocallyDeleted = false
		if record.AccountID == "" {
			record.AccountID = accountID
		}
		if err = r.cache.Save(ctx, record); err != nil {
			return fmt.Errorf("reconcile %s: save %s: %w", family, record.EntityID, err)
		}
	}

	pruned := 0
	for _, record := range local {
		if _, onServer := remoteIDs[record.EntityID]; onServer {
			continue
		}
		if !record.IsSynced {
			continue
		}
		if !inScope(record, options) {
			continue
		}
		if err = r.cache.Delete(ctx, family, record.EntityID); err != nil {
			return fmt.Errorf("reconcile %s: prune orphan %s: %w", family, record.EntityID, err)
		}
		pruned++
	}

	if pruned > 0 {
		log.Debug().
			Str("func", "reconciler.Reconcile").
			Str("family", family).
			Int("pruned", pruned).
			Msg("pruned orphaned cache rows")
	}

	return nil
}

func (r *reconciler) SweepTombstones(ctx context.Context, family string, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	return r.cache.Sweep(ctx, family, r.now().Add(-retention))
}

func inScope(record models.EntityRecord, options reconcileOptions) bool {
	if options.scopeField == "" {
		return true
	}

	var payload map[string]any
	if err := json.Unmarshal(record.Payload, &payload); err != nil {
		return false
	}
	value, ok := payload[options.scopeField].(string)
	if !ok {
		return false
	}

	_, ok = options.scopeValues[value]
	return ok
}
