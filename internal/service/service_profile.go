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

// profileService is the concrete implementation of ProfileService. Every
// write opens one transaction, applies the mutation, and runs the
// cross-account propagation trigger against transaction-bound repositories,
// so the originating write and its mirrored side effects commit atomically.
type profileService struct {
	db          *store.DB
	profiles    store.ProfileRepository
	connections store.ConnectionRepository
	ids         *utils.UUIDGenerator
	logger      *logger.Logger
}

func NewProfileService(db *store.DB, repos *store.Repositories, logger *logger.Logger) ProfileService {
	return &profileService{
		db:          db,
		profiles:    repos.Profiles,
		connections: repos.Connections,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// SaveProfile upserts a profile and propagates its shared fields to every
// synced copy held by active connections where this profile is the source.
func (s *profileService) SaveProfile(ctx context.Context, profile models.Profile) error {
	if profile.ID == "" || profile.AccountID == "" || profile.UserID == "" {
		return fmt.Errorf("%w: profile id, account id and user id are required", ErrInvalidEntity)
	}

	return s.db.InTx(ctx, func(tx *sql.Tx) error {
		pr := s.profiles.WithTx(tx)
		cr := s.connections.WithTx(tx)

		if err := pr.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		return s.propagateProfile(ctx, pr, cr, profile)
	})
}

// DeleteProfile removes a profile, its detail mappings, and severs any
// active connection for which the profile was a source. Synced copies on
// the opposite side survive as local-only keepsakes. Deleting an unknown
// profile is a no-op: delete mutations replay at-least-once.
func (s *profileService) DeleteProfile(ctx context.Context, profileID string) error {
	if profileID == "" {
		return fmt.Errorf("%w: profile id is required", ErrInvalidEntity)
	}

	return s.db.InTx(ctx, func(tx *sql.Tx) error {
		pr := s.profiles.WithTx(tx)
		cr := s.connections.WithTx(tx)

		profile, err := pr.GetProfile(ctx, profileID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("load profile: %w", err)
		}

		if !profile.IsSyncedCopy() {
			if err = s.severConnectionsOf(ctx, pr, cr, profile); err != nil {
				return err
			}
		}

		details, err := pr.ListDetails(ctx, profileID)
		if err != nil {
			return fmt.Errorf("list details: %w", err)
		}
		for _, detail := range details {
			if err = s.dropMappingsOf(ctx, cr, detail.ID); err != nil {
				return err
			}
			if err = pr.DeleteDetail(ctx, detail.ID); err != nil {
				return fmt.Errorf("delete detail %s: %w", detail.ID, err)
			}
		}

		if err = pr.DeleteProfile(ctx, profileID); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}

		return nil
	})
}

// SaveDetail upserts a detail record and propagates it to the synced-copy
// profiles of every active connection that shares its category.
func (s *profileService) SaveDetail(ctx context.Context, detail models.ProfileDetail) error {
	if detail.ID == "" || detail.AccountID == "" || detail.ProfileID == "" {
		return fmt.Errorf("%w: detail id, account id and profile id are required", ErrInvalidEntity)
	}

	return s.db.InTx(ctx, func(tx *sql.Tx) error {
		pr := s.profiles.WithTx(tx)
		cr := s.connections.WithTx(tx)

		if err := pr.SaveDetail(ctx, detail); err != nil {
			return fmt.Errorf("save detail: %w", err)
		}

		return s.propagateDetail(ctx, pr, cr, detail)
	})
}

// DeleteDetail removes a detail record together with every mirrored copy
// recorded in its sync mappings. Deleting an unknown detail is a no-op.
func (s *profileService) DeleteDetail(ctx context.Context, detailID string) error {
	if detailID == "" {
		return fmt.Errorf("%w: detail id is required", ErrInvalidEntity)
	}

	return s.db.InTx(ctx, func(tx *sql.Tx) error {
		pr := s.profiles.WithTx(tx)
		cr := s.connections.WithTx(tx)

		if _, err := pr.GetDetail(ctx, detailID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("load detail: %w", err)
		}

		mappings, err := cr.ListMappingsBySourceDetail(ctx, detailID)
		if err != nil {
			return fmt.Errorf("list mappings: %w", err)
		}
		for _, mapping := range mappings {
			if err = pr.DeleteDetail(ctx, mapping.SyncedDetailID); err != nil {
				return fmt.Errorf("delete mirrored detail %s: %w", mapping.SyncedDetailID, err)
			}
			if err = cr.DeleteMapping(ctx, mapping.ConnectionID, detailID); err != nil {
				return fmt.Errorf("delete mapping: %w", err)
			}
		}

		if err = pr.DeleteDetail(ctx, detailID); err != nil {
			return fmt.Errorf("delete detail: %w", err)
		}

		return nil
	})
}

// severConnectionsOf severs every active connection where profile is a
// source, marking both synced copies local-only and dropping the
// connection's detail mappings.
func (s *profileService) severConnectionsOf(ctx context.Context, pr store.ProfileRepository, cr store.ConnectionRepository, profile models.Profile) error {
	connections, err := cr.ListActiveConnectionsForUser(ctx, profile.UserID)
	if err != nil {
		return fmt.Errorf("list connections: %w", err)
	}

	for _, connection := range connections {
		mine, _, ok := sidesFor(connection, profile.UserID)
		if !ok || mine.SourceProfileID != profile.ID {
			continue
		}

		if err = severAndDetach(ctx, pr, cr, connection); err != nil {
			return err
		}

		logger.FromContext(ctx).Info().
			Str("connection_id", connection.ID).
			Str("profile_id", profile.ID).
			Msg("connection severed by source profile deletion")
	}

	return nil
}

func (s *profileService) dropMappingsOf(ctx context.Context, cr store.ConnectionRepository, detailID string) error {
	mappings, err := cr.ListMappingsBySourceDetail(ctx, detailID)
	if err != nil {
		return fmt.Errorf("list mappings: %w", err)
	}
	for _, mapping := range mappings {
		if err = cr.DeleteMapping(ctx, mapping.ConnectionID, mapping.SourceDetailID); err != nil {
			return fmt.Errorf("delete mapping: %w", err)
		}
	}
	return nil
}

// sidesFor splits a connection into the side owned by userID and the
// opposite (viewer) side. ok is false when the user is on neither side.
func sidesFor(connection models.SyncConnection, userID string) (mine, viewer models.ConnectionSide, ok bool) {
	switch userID {
	case connection.SideA.UserID:
		return connection.SideA, connection.SideB, true
	case connection.SideB.UserID:
		return connection.SideB, connection.SideA, true
	}
	return models.ConnectionSide{}, models.ConnectionSide{}, false
}
