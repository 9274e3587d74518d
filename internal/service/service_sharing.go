// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/internal/utils"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// sharingService is the concrete implementation of SharingService. A toggle
// write and its effect on already-mirrored data commit in one transaction,
// like every other propagation-bearing mutation.
type sharingService struct {
	db          *store.DB
	profiles    store.ProfileRepository
	connections store.ConnectionRepository
	ids         *utils.UUIDGenerator
	logger      *logger.Logger
}

func NewSharingService(db *store.DB, repos *store.Repositories, logger *logger.Logger) SharingService {
	return &sharingService{
		db:          db,
		profiles:    repos.Profiles,
		connections: repos.Connections,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// SetSharing stores one sharing toggle and applies it to the active
// connection (if any) between the source profile and the target viewer.
// Turning a category off purges its mirrored rows; turning it back on
// re-mirrors whatever is missing, so repeating either call is a no-op.
//
// The toggle is stored even without an active connection: it takes effect
// the moment such a connection appears.
func (s *sharingService) SetSharing(ctx context.Context, accountID string, req models.SharingRequest) error {
	if req.SourceProfileID == "" || req.TargetUserID == "" {
		return fmt.Errorf("%w: source profile id and target user id are required", ErrInvalidEntity)
	}
	if !models.IsSharingCategory(req.Category) {
		return fmt.Errorf("%w: unknown sharing category %q", ErrInvalidEntity, req.Category)
	}

	return s.db.InTx(ctx, func(tx *sql.Tx) error {
		pr := s.profiles.WithTx(tx)
		cr := s.connections.WithTx(tx)

		source, err := pr.GetProfile(ctx, req.SourceProfileID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: profile %s", ErrNotFound, req.SourceProfileID)
			}
			return fmt.Errorf("load source profile: %w", err)
		}
		if source.AccountID != accountID {
			return fmt.Errorf("%w: profile %s", ErrAccountMismatch, req.SourceProfileID)
		}

		if err = cr.UpsertSharingPreference(ctx, models.SharingPreference{
			SourceProfileID: req.SourceProfileID,
			TargetUserID:    req.TargetUserID,
			Category:        req.Category,
			IsShared:        req.IsShared,
		}); err != nil {
			return fmt.Errorf("store sharing preference: %w", err)
		}

		connection, viewer, found, err := s.findConnection(ctx, cr, source, req.TargetUserID)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}

		if req.Category == models.SharingProfileCoreFields {
			return s.applyCoreFieldsToggle(ctx, pr, source, viewer, req.IsShared)
		}
		return s.applyDetailToggle(ctx, pr, cr, connection, source, viewer, req.Category, req.IsShared)
	})
}

// findConnection locates the active connection where source is the owning
// side's source profile and targetUserID sits on the opposite side.
func (s *sharingService) findConnection(ctx context.Context, cr store.ConnectionRepository, source models.Profile, targetUserID string) (models.SyncConnection, models.ConnectionSide, bool, error) {
	connections, err := cr.ListActiveConnectionsForUser(ctx, source.UserID)
	if err != nil {
		return models.SyncConnection{}, models.ConnectionSide{}, false, fmt.Errorf("list connections: %w", err)
	}

	for _, connection := range connections {
		mine, viewer, ok := sidesFor(connection, source.UserID)
		if !ok || mine.SourceProfileID != source.ID || viewer.UserID != targetUserID {
			continue
		}
		return connection, viewer, true, nil
	}

	return models.SyncConnection{}, models.ConnectionSide{}, false, nil
}

func (s *sharingService) applyCoreFieldsToggle(ctx context.Context, pr store.ProfileRepository, source models.Profile, viewer models.ConnectionSide, shared bool) error {
	if !shared {
		if err := pr.ClearSharedCoreFields(ctx, viewer.SyncedProfileID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("clear core fields on %s: %w", viewer.SyncedProfileID, err)
		}
		return nil
	}

	copyProfile, err := pr.GetProfile(ctx, viewer.SyncedProfileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load synced copy: %w", err)
	}
	applyCoreFields(&copyProfile, source, true)
	if err = pr.SaveProfile(ctx, copyProfile); err != nil {
		return fmt.Errorf("save synced copy: %w", err)
	}

	return nil
}

func (s *sharingService) applyDetailToggle(ctx context.Context, pr store.ProfileRepository, cr store.ConnectionRepository, connection models.SyncConnection, source models.Profile, viewer models.ConnectionSide, category string, shared bool) error {
	detailCategories := models.DetailCategoriesForSharing(category)
	if len(detailCategories) == 0 {
		return nil
	}

	sourceDetails, err := pr.ListDetails(ctx, source.ID, detailCategories...)
	if err != nil {
		return fmt.Errorf("list source details: %w", err)
	}

	mappings, err := cr.ListMappingsByConnection(ctx, connection.ID)
	if err != nil {
		return fmt.Errorf("list mappings: %w", err)
	}
	bySource := make(map[string]models.DetailSyncMapping, len(mappings))
	for _, mapping := range mappings {
		bySource[mapping.SourceDetailID] = mapping
	}

	purged, mirrored := 0, 0
	for _, detail := range sourceDetails {
		mapping, have := bySource[detail.ID]

		if !shared {
			if !have {
				continue
			}
			if err = pr.DeleteDetail(ctx, mapping.SyncedDetailID); err != nil {
				return fmt.Errorf("delete mirrored detail %s: %w", mapping.SyncedDetailID, err)
			}
			if err = cr.DeleteMapping(ctx, connection.ID, detail.ID); err != nil {
				return fmt.Errorf("delete mapping: %w", err)
			}
			purged++
			continue
		}

		copyDetail := models.ProfileDetail{
			ID:        s.ids.Generate(),
			AccountID: viewer.AccountID,
			ProfileID: viewer.SyncedProfileID,
			Category:  detail.Category,
			Label:     detail.Label,
			Value:     detail.Value,
		}
		if have {
			copyDetail.ID = mapping.SyncedDetailID
		}
		if err = pr.SaveDetail(ctx, copyDetail); err != nil {
			return fmt.Errorf("save mirrored detail %s: %w", copyDetail.ID, err)
		}
		if !have {
			if err = cr.SaveMapping(ctx, models.DetailSyncMapping{
				ConnectionID:   connection.ID,
				SourceDetailID: detail.ID,
				SyncedDetailID: copyDetail.ID,
			}); err != nil {
				return fmt.Errorf("save mapping: %w", err)
			}
			mirrored++
		}
	}

	logger.FromContext(ctx).Debug().
		Str("category", category).
		Bool("is_shared", shared).
		Int("purged", purged).
		Int("mirrored", mirrored).
		Msg("sharing toggle applied")

	return nil
}
