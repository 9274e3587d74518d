// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/adapter"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/internal/utils"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// Facade is the single generic repository implementation shared by every
// entity family. Reads serve the local cache; writes try the remote
// backend first while connectivity is available and fall back to an
// unsynced cache row plus a queued mutation when it is not, leaving the
// flush worker to converge later.
//
// All operations take an explicit account scope; the facade holds no notion
// of a current user.
type Facade[T any, P entityPtr[T]] struct {
	family       string
	cache        store.EntityCache
	queue        store.MutationQueue
	remote       adapter.RemoteRepository
	connectivity adapter.ConnectivityObserver
	reconciler   Reconciler

	cascades  []store.Cascade
	reconOpts []ReconcileOption
	ids       *utils.UUIDGenerator
	now       func() time.Time
	kick      func()
	logger    *logger.Logger
}

type FacadeOption[T any, P entityPtr[T]] func(*Facade[T, P])

// WithCascade registers a parent→child soft-delete rule applied by Delete.
func WithCascade[T any, P entityPtr[T]](childFamily, parentField string) FacadeOption[T, P] {
	return func(f *Facade[T, P]) {
		f.cascades = append(f.cascades, store.Cascade{ChildFamily: childFamily, ParentField: parentField})
	}
}

// WithReconcileOptions forwards options (such as a category scope) to every
// reconciliation this facade triggers.
func WithReconcileOptions[T any, P entityPtr[T]](opts ...ReconcileOption) FacadeOption[T, P] {
	return func(f *Facade[T, P]) {
		f.reconOpts = append(f.reconOpts, opts...)
	}
}

// WithFlushKick registers a callback invoked after every local write that
// left a queued mutation behind, typically wired to FlushJob.SyncNow.
func WithFlushKick[T any, P entityPtr[T]](kick func()) FacadeOption[T, P] {
	return func(f *Facade[T, P]) {
		f.kick = kick
	}
}

// WithClock overrides the time source, for tests.
func WithClock[T any, P entityPtr[T]](now func() time.Time) FacadeOption[T, P] {
	return func(f *Facade[T, P]) {
		f.now = now
	}
}

func NewFacade[T any, P entityPtr[T]](
	family string,
	cache store.EntityCache,
	queue store.MutationQueue,
	remote adapter.RemoteRepository,
	connectivity adapter.ConnectivityObserver,
	reconciler Reconciler,
	log *logger.Logger,
	opts ...FacadeOption[T, P],
) *Facade[T, P] {
	f := &Facade[T, P]{
		family:       family,
		cache:        cache,
		queue:        queue,
		remote:       remote,
		connectivity: connectivity,
		reconciler:   reconciler,
		ids:          utils.NewUUIDGenerator(),
		now:          time.Now,
		logger:       log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// List serves the live cached rows of one account scope. Only when the
// cache holds nothing at all and the backend is reachable does it perform
// a single remote fetch, seeding the cache with the result; a fetch error
// at that point propagates, because there is no local state to fall back
// to.
func (f *Facade[T, P]) List(ctx context.Context, accountID string) ([]P, error) {
	records, err := f.cache.List(ctx, f.family, accountID, false)
	if err != nil {
		return nil, err
	}

	if len(records) > 0 {
		entities := make([]P, 0, len(records))
		for _, record := range records {
			entity, decodeErr := decodeRecord[T, P](record)
			if decodeErr != nil {
				return nil, decodeErr
			}
			entities = append(entities, entity)
		}
		return entities, nil
	}

	if !f.online(ctx) {
		return []P{}, nil
	}

	return f.seedFromRemote(ctx, accountID)
}

// seedFromRemote performs the one cold-cache fetch and returns the remote
// result directly, skipping the cache upsert for any id that gained a local
// row while the fetch was in flight.
func (f *Facade[T, P]) seedFromRemote(ctx context.Context, accountID string) ([]P, error) {
	remote, err := f.remote.ListRecords(ctx, f.family)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", f.family, err)
	}

	entities := make([]P, 0, len(remote))
	for _, record := range remote {
		cached, getErr := f.cache.Get(ctx, f.family, record.EntityID)
		switch {
		case getErr == nil:
			// the local row is newer than the fetch; it wins
			record = cached
		case errors.Is(getErr, store.ErrNotFound):
			record.IsSynced = true
			record.LocallyDeleted = false
			if err = f.cache.Save(ctx, record); err != nil {
				return nil, err
			}
		default:
			return nil, getErr
		}

		if record.AccountID != accountID || record.LocallyDeleted {
			continue
		}
		entity, decodeErr := decodeRecord[T, P](record)
		if decodeErr != nil {
			return nil, decodeErr
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// Refresh pulls the authoritative snapshot and reconciles it into the
// cache. Offline it is a no-op: callers degrade to the cached view.
func (f *Facade[T, P]) Refresh(ctx context.Context, accountID string) error {
	if !f.online(ctx) {
		return nil
	}

	remote, err := f.remote.ListRecords(ctx, f.family)
	if err != nil {
		return fmt.Errorf("refresh %s: %w", f.family, err)
	}

	return f.reconciler.Reconcile(ctx, f.family, accountID, remote, f.reconOpts...)
}

// Get returns one live entity from the cache. Tombstoned rows read as
// absent.
func (f *Facade[T, P]) Get(ctx context.Context, entityID string) (P, error) {
	record, err := f.cache.Get(ctx, f.family, entityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, f.family, entityID)
		}
		return nil, err
	}
	if record.LocallyDeleted {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, f.family, entityID)
	}

	return decodeRecord[T, P](record)
}

// Create writes a new entity. While the backend is reachable the remote
// write goes first and the authoritative result is cached as synced;
// otherwise the entity lands as an unsynced cache row with a queued create
// mutation, in one transaction. A missing id gets a fresh UUID, which
// becomes the permanent key on the server too.
func (f *Facade[T, P]) Create(ctx context.Context, entity P) error {
	if entity == nil {
		return fmt.Errorf("%w: nil entity", ErrInvalidEntity)
	}
	if entity.EntityAccount() == "" {
		return fmt.Errorf("%w: missing account id", ErrInvalidEntity)
	}
	if entity.EntityID() == "" {
		entity.SetEntityID(f.ids.Generate())
	}

	meta := entity.SyncState()
	meta.LocallyDeleted = false
	meta.MarkModified(f.now())

	record, err := encodeRecord[T, P](f.family, entity)
	if err != nil {
		return err
	}

	if f.online(ctx) {
		pushed, pushErr := f.remote.UpsertRecord(ctx, record)
		if pushErr == nil {
			pushed.IsSynced = true
			pushed.LocallyDeleted = false
			if err = f.cache.Save(ctx, pushed); err != nil {
				return err
			}
			return adoptRecord[T, P](pushed, entity)
		}
		if !errors.Is(pushErr, adapter.ErrRemoteUnavailable) {
			return fmt.Errorf("create %s: %w", f.family, pushErr)
		}
		logger.FromContext(ctx).Warn().
			Err(pushErr).
			Str("func", "Facade.Create").
			Str("family", f.family).
			Str("entity_id", record.EntityID).
			Msg("remote unreachable, queueing create")
	}

	if _, err = f.cache.SaveQueued(ctx, record, models.ChangeCreate); err != nil {
		return err
	}

	f.notify()
	return nil
}

// Update overwrites an existing live entity. The edit lands in the cache
// together with a queued update mutation first, so it is never lost; while
// the backend is reachable the same change is then pushed immediately and
// the queue entry cleared on success.
func (f *Facade[T, P]) Update(ctx context.Context, entity P) error {
	if entity == nil || entity.EntityID() == "" {
		return fmt.Errorf("%w: missing entity id", ErrInvalidEntity)
	}

	existing, err := f.cache.Get(ctx, f.family, entity.EntityID())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, f.family, entity.EntityID())
		}
		return err
	}
	if existing.LocallyDeleted {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, f.family, entity.EntityID())
	}

	meta := entity.SyncState()
	meta.LocallyDeleted = false
	meta.MarkModified(f.now())

	record, err := encodeRecord[T, P](f.family, entity)
	if err != nil {
		return err
	}

	mutationID, err := f.cache.SaveQueued(ctx, record, models.ChangeUpdate)
	if err != nil {
		return err
	}

	if f.online(ctx) {
		pushed, pushErr := f.remote.UpsertRecord(ctx, record)
		if pushErr == nil {
			pushed.IsSynced = true
			pushed.LocallyDeleted = false
			if err = f.cache.Save(ctx, pushed); err != nil {
				return err
			}
			if err = f.queue.Dequeue(ctx, mutationID); err != nil {
				return err
			}
			return adoptRecord[T, P](pushed, entity)
		}
		logger.FromContext(ctx).Warn().
			Err(pushErr).
			Str("func", "Facade.Update").
			Str("family", f.family).
			Str("entity_id", record.EntityID).
			Msg("remote update failed, leaving change queued")
	}

	f.notify()
	return nil
}

// Delete tombstones the entity and its cascaded children together with
// their queued delete mutations in one local transaction, then pushes the
// deletions immediately while the backend is reachable, pruning confirmed
// rows and their queue entries.
func (f *Facade[T, P]) Delete(ctx context.Context, entityID string) error {
	existing, err := f.cache.Get(ctx, f.family, entityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, f.family, entityID)
		}
		return err
	}
	if existing.LocallyDeleted {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, f.family, entityID)
	}

	queued, err := f.cache.SoftDelete(ctx, f.family, entityID, f.cascades, f.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, f.family, entityID)
		}
		return err
	}

	if f.online(ctx) {
		pushErr := f.pushDeletes(ctx, queued)
		if pushErr == nil {
			return nil
		}
		logger.FromContext(ctx).Warn().
			Err(pushErr).
			Str("func", "Facade.Delete").
			Str("family", f.family).
			Str("entity_id", entityID).
			Msg("remote delete failed, leaving tombstones queued")
	}

	f.notify()
	return nil
}

// pushDeletes confirms queued delete mutations against the backend in
// queue order, parent first. A failure leaves the remaining tombstones
// queued for the flush worker.
func (f *Facade[T, P]) pushDeletes(ctx context.Context, queued []models.Mutation) error {
	for _, mutation := range queued {
		if err := f.remote.DeleteRecord(ctx, mutation.Family, mutation.EntityID); err != nil {
			return err
		}
		if err := f.cache.Delete(ctx, mutation.Family, mutation.EntityID); err != nil {
			return err
		}
		if err := f.queue.Dequeue(ctx, mutation.ID); err != nil {
			return err
		}
	}
	return nil
}

func (f *Facade[T, P]) online(ctx context.Context) bool {
	return f.connectivity == nil || f.connectivity.Online(ctx)
}

func (f *Facade[T, P]) notify() {
	if f.kick != nil {
		f.kick()
	}
}
