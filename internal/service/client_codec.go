package service

import (
	"encoding/json"
	"fmt"

	"github.com/kinkeeper-app/kinkeeper/models"
)

// entityPtr constrains P to a pointer to a concrete entity type, which lets
// the generic facade allocate and decode entities without reflection.
type entityPtr[T any] interface {
	*T
	models.Entity
}

func encodeRecord[T any, P entityPtr[T]](family string, entity P) (models.EntityRecord, error) {
	payload, err := json.Marshal(entity)
	if err != nil {
		return models.EntityRecord{}, fmt.Errorf("encode %s payload: %w", family, err)
	}

	meta := entity.SyncState()
	return models.EntityRecord{
		Family:         family,
		EntityID:       entity.EntityID(),
		AccountID:      entity.EntityAccount(),
		Payload:        payload,
		IsSynced:       meta.IsSynced,
		LocallyDeleted: meta.LocallyDeleted,
		LastModifiedAt: meta.LastModifiedAt,
	}, nil
}

// decodeRecord rebuilds the entity from the payload and then overwrites its
// sync metadata from the record's first-class columns, which are the source
// of truth.
func decodeRecord[T any, P entityPtr[T]](record models.EntityRecord) (P, error) {
	entity := P(new(T))
	if err := json.Unmarshal(record.Payload, entity); err != nil {
		return nil, fmt.Errorf("decode %s payload (entity_id=%s): %w", record.Family, record.EntityID, err)
	}

	meta := entity.SyncState()
	meta.IsSynced = record.IsSynced
	meta.LocallyDeleted = record.LocallyDeleted
	meta.LastModifiedAt = record.LastModifiedAt

	return entity, nil
}

// adoptRecord copies an authoritative remote record back into the caller's
// entity, so the caller observes the server-normalized state in place.
func adoptRecord[T any, P entityPtr[T]](record models.EntityRecord, entity P) error {
	if err := json.Unmarshal(record.Payload, entity); err != nil {
		return fmt.Errorf("decode %s payload (entity_id=%s): %w", record.Family, record.EntityID, err)
	}

	meta := entity.SyncState()
	meta.IsSynced = record.IsSynced
	meta.LocallyDeleted = record.LocallyDeleted
	meta.LastModifiedAt = record.LastModifiedAt

	return nil
}
