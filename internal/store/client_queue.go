package store

import (
	"context"
	"fmt"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/models"
)

type localMutationQueue struct {
	*ClientDB
	logger *logger.Logger
}

func NewMutationQueue(db *ClientDB, logger *logger.Logger) MutationQueue {
	return &localMutationQueue{
		ClientDB: db,
		logger:   logger,
	}
}

func (q *localMutationQueue) Enqueue(ctx context.Context, m models.Mutation) error {
	log := logger.FromContext(ctx)

	if err := validateFamily(m.Family); err != nil {
		return err
	}

	_, err := q.DB.ExecContext(ctx, enqueueMutation,
		m.Family,
		m.EntityID,
		m.AccountID,
		string(m.ChangeType),
		m.EnqueuedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localMutationQueue.Enqueue").
			Str("family", m.Family).
			Str("entity_id", m.EntityID).
			Str("change_type", string(m.ChangeType)).
			Msg("failed to enqueue mutation")
		return fmt.Errorf("failed to enqueue mutation (entity_id=%s): %w", m.EntityID, err)
	}

	return nil
}

func (q *localMutationQueue) ListPending(ctx context.Context) ([]models.Mutation, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, listPendingMutations)
	if err != nil {
		log.Err(err).
			Str("func", "localMutationQueue.ListPending").
			Msg("failed to execute query for pending mutations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var mutations []models.Mutation
	for rows.Next() {
		var m models.Mutation
		var changeType string

		if scanErr := rows.Scan(&m.ID, &m.Family, &m.EntityID, &m.AccountID, &changeType, &m.EnqueuedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localMutationQueue.ListPending").
				Msg("failed to scan mutation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		m.ChangeType = models.ChangeType(changeType)
		mutations = append(mutations, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localMutationQueue.ListPending").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return mutations, nil
}

func (q *localMutationQueue) Dequeue(ctx context.Context, id int64) error {
	if _, err := q.DB.ExecContext(ctx, dequeueMutation, id); err != nil {
		return fmt.Errorf("failed to dequeue mutation (id=%d): %w", id, err)
	}

	return nil
}
