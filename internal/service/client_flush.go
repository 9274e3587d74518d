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
	"github.com/kinkeeper-app/kinkeeper/models"
	"github.com/sethvargo/go-retry"
)

const (
	flushRetryBase     = 200 * time.Millisecond
	flushRetryAttempts = 4
)

type flushService struct {
	cache        store.EntityCache
	queue        store.MutationQueue
	remote       adapter.RemoteRepository
	connectivity adapter.ConnectivityObserver
	logger       *logger.Logger
}

func NewFlushService(
	cache store.EntityCache,
	queue store.MutationQueue,
	remote adapter.RemoteRepository,
	connectivity adapter.ConnectivityObserver,
	log *logger.Logger,
) FlushService {
	return &flushService{
		cache:        cache,
		queue:        queue,
		remote:       remote,
		connectivity: connectivity,
		logger:       log,
	}
}

// Flush drains the queue in enqueue order. Each entry is pushed
// idempotently from the entity's current cached state, so replaying an
// already-applied entry converges instead of corrupting. The first hard
// failure stops the drain and leaves the remaining entries queued.
func (s *flushService) Flush(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if s.connectivity != nil && !s.connectivity.Online(ctx) {
		log.Debug().Str("func", "flushService.Flush").Msg("offline, skipping flush")
		return nil
	}

	pending, err := s.queue.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("list pending mutations: %w", err)
	}

	for _, mutation := range pending {
		if err = s.flushOne(ctx, mutation); err != nil {
			return fmt.Errorf("flush stopped at mutation %d (%s/%s): %w",
				mutation.ID, mutation.Family, mutation.EntityID, err)
		}
	}

	return nil
}

func (s *flushService) flushOne(ctx context.Context, mutation models.Mutation) error {
	record, err := s.cache.Get(ctx, mutation.Family, mutation.EntityID)
	if err != nil {
		// the row is already physically gone (pruned orphan or an
		// earlier delete entry confirmed it); nothing left to push
		if errors.Is(err, store.ErrNotFound) {
			return s.queue.Dequeue(ctx, mutation.ID)
		}
		return err
	}

	if record.LocallyDeleted {
		if err = s.withRetry(ctx, func(ctx context.Context) error {
			return s.remote.DeleteRecord(ctx, mutation.Family, mutation.EntityID)
		}); err != nil {
			return err
		}
		// confirmed remotely: the tombstone has served its purpose
		if err = s.cache.Delete(ctx, mutation.Family, mutation.EntityID); err != nil {
			return err
		}
	} else {
		if err = s.withRetry(ctx, func(ctx context.Context) error {
			_, upsertErr := s.remote.UpsertRecord(ctx, record)
			return upsertErr
		}); err != nil {
			return err
		}
		if err = s.cache.MarkSynced(ctx, mutation.Family, mutation.EntityID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}

	return s.queue.Dequeue(ctx, mutation.ID)
}

// withRetry retries transient transport failures with fibonacci backoff.
// Anything else (unauthorized, bad request) is hard and fails immediately.
func (s *flushService) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(flushRetryAttempts, retry.NewFibonacci(flushRetryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if errors.Is(err, adapter.ErrRemoteUnavailable) {
			return retry.RetryableError(err)
		}
		return err
	})
}
