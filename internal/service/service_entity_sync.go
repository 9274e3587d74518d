// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// entitySyncService is the concrete implementation of EntitySyncService.
// Non-profile families go straight to the generic entity store; the profile
// and profile_detail families are dispatched to the ProfileService, which is
// where cross-account propagation lives.
type entitySyncService struct {
	entities   store.EntityRepository
	profiles   store.ProfileRepository
	profileSvc ProfileService
	now        func() time.Time
	logger     *logger.Logger
}

func NewEntitySyncService(repos *store.Repositories, profileSvc ProfileService, logger *logger.Logger) EntitySyncService {
	return &entitySyncService{
		entities:   repos.Entities,
		profiles:   repos.Profiles,
		profileSvc: profileSvc,
		now:        time.Now,
		logger:     logger,
	}
}

// Snapshot returns the authoritative state of one family within one account
// scope. Profile families are assembled from the relational profile store;
// everything else is read back from the generic entity table.
func (s *entitySyncService) Snapshot(ctx context.Context, family, accountID string) ([]models.EntityRecord, error) {
	switch family {
	case models.FamilyProfile:
		profiles, err := s.profiles.ListProfiles(ctx, accountID)
		if err != nil {
			return nil, fmt.Errorf("list profiles: %w", err)
		}
		records := make([]models.EntityRecord, 0, len(profiles))
		for i := range profiles {
			record, err := s.serverRecord(models.FamilyProfile, &profiles[i])
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
		return records, nil

	case models.FamilyProfileDetail:
		details, err := s.profiles.ListDetailsByAccount(ctx, accountID)
		if err != nil {
			return nil, fmt.Errorf("list details: %w", err)
		}
		records := make([]models.EntityRecord, 0, len(details))
		for i := range details {
			record, err := s.serverRecord(models.FamilyProfileDetail, &details[i])
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
		return records, nil

	default:
		records, err := s.entities.ListEntities(ctx, family, accountID)
		if err != nil {
			return nil, fmt.Errorf("list entities: %w", err)
		}
		return records, nil
	}
}

// Upsert stores the pushed state of one entity. Records are keyed by the
// client-generated entity id, so replaying the same push converges on the
// same row.
//
// Returns ErrAccountMismatch when the record claims an account other than
// the authenticated one.
func (s *entitySyncService) Upsert(ctx context.Context, accountID string, record models.EntityRecord) (models.EntityRecord, error) {
	log := logger.FromContext(ctx)

	if record.EntityID == "" || record.Family == "" {
		return models.EntityRecord{}, fmt.Errorf("%w: family and entity id are required", ErrInvalidEntity)
	}
	if record.AccountID != accountID {
		return models.EntityRecord{}, fmt.Errorf("%w: record account %s", ErrAccountMismatch, record.AccountID)
	}

	switch record.Family {
	case models.FamilyProfile:
		profile, err := decodeRecord[models.Profile](record)
		if err != nil {
			return models.EntityRecord{}, fmt.Errorf("%w: %w", ErrInvalidEntity, err)
		}
		if profile.AccountID != accountID {
			return models.EntityRecord{}, fmt.Errorf("%w: profile account %s", ErrAccountMismatch, profile.AccountID)
		}
		if err = s.profileSvc.SaveProfile(ctx, *profile); err != nil {
			return models.EntityRecord{}, err
		}
		return s.serverRecord(models.FamilyProfile, profile)

	case models.FamilyProfileDetail:
		detail, err := decodeRecord[models.ProfileDetail](record)
		if err != nil {
			return models.EntityRecord{}, fmt.Errorf("%w: %w", ErrInvalidEntity, err)
		}
		if detail.AccountID != accountID {
			return models.EntityRecord{}, fmt.Errorf("%w: detail account %s", ErrAccountMismatch, detail.AccountID)
		}
		if err = s.profileSvc.SaveDetail(ctx, *detail); err != nil {
			return models.EntityRecord{}, err
		}
		return s.serverRecord(models.FamilyProfileDetail, detail)

	default:
		saved, err := s.entities.UpsertEntity(ctx, record)
		if err != nil {
			log.Err(err).
				Str("func", "entitySyncService.Upsert").
				Str("family", record.Family).
				Str("entity_id", record.EntityID).
				Msg("failed to upsert entity")
			return models.EntityRecord{}, err
		}
		return saved, nil
	}
}

// Delete removes one entity. Deleting an id the server never saw (or
// already deleted) succeeds: clients replay delete mutations at-least-once.
func (s *entitySyncService) Delete(ctx context.Context, family, entityID, accountID string) error {
	if entityID == "" || family == "" {
		return fmt.Errorf("%w: family and entity id are required", ErrInvalidEntity)
	}

	switch family {
	case models.FamilyProfile:
		profile, err := s.profiles.GetProfile(ctx, entityID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("load profile: %w", err)
		}
		if profile.AccountID != accountID {
			return fmt.Errorf("%w: profile %s", ErrAccountMismatch, entityID)
		}
		return s.profileSvc.DeleteProfile(ctx, entityID)

	case models.FamilyProfileDetail:
		detail, err := s.profiles.GetDetail(ctx, entityID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("load detail: %w", err)
		}
		if detail.AccountID != accountID {
			return fmt.Errorf("%w: detail %s", ErrAccountMismatch, entityID)
		}
		return s.profileSvc.DeleteDetail(ctx, entityID)

	default:
		return s.entities.DeleteEntity(ctx, family, entityID, accountID)
	}
}

// serverRecord encodes a stored entity as an acknowledged wire record.
func (s *entitySyncService) serverRecord(family string, entity models.Entity) (models.EntityRecord, error) {
	meta := entity.SyncState()
	meta.IsSynced = true
	meta.LocallyDeleted = false
	if meta.LastModifiedAt.IsZero() {
		meta.LastModifiedAt = s.now()
	}

	payload, err := json.Marshal(entity)
	if err != nil {
		return models.EntityRecord{}, fmt.Errorf("encode %s payload: %w", family, err)
	}

	return models.EntityRecord{
		Family:         family,
		EntityID:       entity.EntityID(),
		AccountID:      entity.EntityAccount(),
		Payload:        payload,
		IsSynced:       true,
		LastModifiedAt: meta.LastModifiedAt,
	}, nil
}
