// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/internal/utils"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// connectionService is the concrete implementation of ConnectionService.
// Accepting an invitation builds the entire cross-account structure in one
// transaction: the connection row, one synced-copy profile per side, the
// inviter's materialized sharing preferences, and the initial mirror of
// every shareable detail in both directions.
type connectionService struct {
	db          *store.DB
	profiles    store.ProfileRepository
	connections store.ConnectionRepository
	ids         *utils.UUIDGenerator
	now         func() time.Time
	logger      *logger.Logger
}

func NewConnectionService(db *store.DB, repos *store.Repositories, logger *logger.Logger) ConnectionService {
	return &connectionService{
		db:          db,
		profiles:    repos.Profiles,
		connections: repos.Connections,
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

// AcceptInvitation establishes an active sync connection between the inviter
// and invitee accounts, mirroring each side's primary profile into the
// other account. The inviter's declared preferences are written to the
// sharing preference store and applied to the initial mirror; categories
// absent from the map follow the default-open policy, as does everything
// the invitee shares back.
func (s *connectionService) AcceptInvitation(ctx context.Context, req models.AcceptInvitationRequest) (models.SyncConnection, error) {
	log := logger.FromContext(ctx)

	if req.InviterAccountID == "" || req.InviterUserID == "" || req.InviteeAccountID == "" || req.InviteeUserID == "" {
		return models.SyncConnection{}, fmt.Errorf("%w: both accounts and users are required", ErrInvalidEntity)
	}
	if req.InviterUserID == req.InviteeUserID || req.InviterAccountID == req.InviteeAccountID {
		return models.SyncConnection{}, fmt.Errorf("%w: cannot connect an account to itself", ErrInvalidEntity)
	}

	var connection models.SyncConnection

	err := s.db.InTx(ctx, func(tx *sql.Tx) error {
		pr := s.profiles.WithTx(tx)
		cr := s.connections.WithTx(tx)

		inviterProfile, err := pr.GetPrimaryProfile(ctx, req.InviterUserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: inviter %s", ErrNoPrimaryProfile, req.InviterUserID)
			}
			return fmt.Errorf("load inviter profile: %w", err)
		}
		inviteeProfile, err := pr.GetPrimaryProfile(ctx, req.InviteeUserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: invitee %s", ErrNoPrimaryProfile, req.InviteeUserID)
			}
			return fmt.Errorf("load invitee profile: %w", err)
		}

		connectionID := s.ids.Generate()

		// the inviter's toggles gate what of the inviter's data the
		// invitee sees; the invitee's data starts fully shared
		inviterCoreShared := preferenceOrDefault(req.Preferences, models.SharingProfileCoreFields)
		copyOfInviter := s.mirrorProfile(inviterProfile, req.InviteeAccountID, connectionID, inviterCoreShared)
		copyOfInvitee := s.mirrorProfile(inviteeProfile, req.InviterAccountID, connectionID, true)

		connection = models.SyncConnection{
			ID:     connectionID,
			Status: models.ConnectionActive,
			SideA: models.ConnectionSide{
				AccountID:       req.InviterAccountID,
				UserID:          req.InviterUserID,
				SourceProfileID: inviterProfile.ID,
				SyncedProfileID: copyOfInvitee.ID,
			},
			SideB: models.ConnectionSide{
				AccountID:       req.InviteeAccountID,
				UserID:          req.InviteeUserID,
				SourceProfileID: inviteeProfile.ID,
				SyncedProfileID: copyOfInviter.ID,
			},
			CreatedAt: s.now(),
		}
		if err = cr.CreateConnection(ctx, connection); err != nil {
			return fmt.Errorf("create connection: %w", err)
		}

		if err = pr.SaveProfile(ctx, copyOfInviter); err != nil {
			return fmt.Errorf("save inviter copy: %w", err)
		}
		if err = pr.SaveProfile(ctx, copyOfInvitee); err != nil {
			return fmt.Errorf("save invitee copy: %w", err)
		}

		for category, shared := range req.Preferences {
			if !models.IsSharingCategory(category) {
				return fmt.Errorf("%w: unknown sharing category %q", ErrInvalidEntity, category)
			}
			if err = cr.UpsertSharingPreference(ctx, models.SharingPreference{
				SourceProfileID: inviterProfile.ID,
				TargetUserID:    req.InviteeUserID,
				Category:        category,
				IsShared:        shared,
			}); err != nil {
				return fmt.Errorf("store sharing preference: %w", err)
			}
		}

		if err = s.mirrorDetails(ctx, pr, cr, connectionID, inviterProfile, connection.SideB); err != nil {
			return err
		}
		if err = s.mirrorDetails(ctx, pr, cr, connectionID, inviteeProfile, connection.SideA); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return models.SyncConnection{}, err
	}

	log.Info().
		Str("connection_id", connection.ID).
		Str("inviter_user_id", req.InviterUserID).
		Str("invitee_user_id", req.InviteeUserID).
		Msg("sync connection established")

	return connection, nil
}

// Sever transitions an active connection to severed. Both synced copies are
// detached into ordinary local-only profiles and the connection's detail
// mappings are dropped; the mirrored data itself stays where it is.
//
// Returns ErrNotParticipant when userID is on neither side and
// ErrInvalidConnectionState when the connection is already severed.
func (s *connectionService) Sever(ctx context.Context, connectionID, userID string) error {
	if connectionID == "" {
		return fmt.Errorf("%w: connection id is required", ErrInvalidEntity)
	}

	err := s.db.InTx(ctx, func(tx *sql.Tx) error {
		pr := s.profiles.WithTx(tx)
		cr := s.connections.WithTx(tx)

		connection, err := cr.GetConnection(ctx, connectionID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: connection %s", ErrNotFound, connectionID)
			}
			return fmt.Errorf("load connection: %w", err)
		}

		if _, _, ok := sidesFor(connection, userID); !ok {
			return fmt.Errorf("%w: user %s on connection %s", ErrNotParticipant, userID, connectionID)
		}
		if connection.Status != models.ConnectionActive {
			return fmt.Errorf("%w: connection %s is already severed", ErrInvalidConnectionState, connectionID)
		}

		return severAndDetach(ctx, pr, cr, connection)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("connection_id", connectionID).
		Str("user_id", userID).
		Msg("sync connection severed")

	return nil
}

// mirrorProfile builds the synced-copy profile of source for the viewer
// account. The copy gets its own id but describes the same person, linked
// back through SourceUserID and the connection id.
func (s *connectionService) mirrorProfile(source models.Profile, viewerAccountID, connectionID string, coreShared bool) models.Profile {
	sourceUserID := source.UserID
	copyProfile := models.Profile{
		ID:               s.ids.Generate(),
		AccountID:        viewerAccountID,
		UserID:           source.UserID,
		SourceUserID:     &sourceUserID,
		SyncConnectionID: &connectionID,
	}
	applySharedFields(&copyProfile, source)
	applyCoreFields(&copyProfile, source, coreShared)
	return copyProfile
}

// mirrorDetails seeds the viewer side with copies of every shareable detail
// of source, recording one sync mapping per copy.
func (s *connectionService) mirrorDetails(ctx context.Context, pr store.ProfileRepository, cr store.ConnectionRepository, connectionID string, source models.Profile, viewer models.ConnectionSide) error {
	details, err := pr.ListDetails(ctx, source.ID)
	if err != nil {
		return fmt.Errorf("list details of %s: %w", source.ID, err)
	}

	for _, detail := range details {
		sharingKey, mirrorable := models.SharingCategoryForDetail(detail.Category)
		if !mirrorable {
			continue
		}
		shared, err := cr.IsShared(ctx, source.ID, viewer.UserID, sharingKey)
		if err != nil {
			return fmt.Errorf("resolve %s sharing: %w", sharingKey, err)
		}
		if !shared {
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
		if err = pr.SaveDetail(ctx, copyDetail); err != nil {
			return fmt.Errorf("save mirrored detail: %w", err)
		}
		if err = cr.SaveMapping(ctx, models.DetailSyncMapping{
			ConnectionID:   connectionID,
			SourceDetailID: detail.ID,
			SyncedDetailID: copyDetail.ID,
		}); err != nil {
			return fmt.Errorf("save mapping: %w", err)
		}
	}

	return nil
}

// severAndDetach marks a connection severed, detaches both synced copies
// into local-only profiles, and drops the connection's detail mappings.
// Shared by the explicit sever operation and source-profile deletion.
func severAndDetach(ctx context.Context, pr store.ProfileRepository, cr store.ConnectionRepository, connection models.SyncConnection) error {
	if err := cr.SeverConnection(ctx, connection.ID, time.Now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: connection %s is already severed", ErrInvalidConnectionState, connection.ID)
		}
		return fmt.Errorf("sever connection: %w", err)
	}

	for _, syncedProfileID := range []string{connection.SideA.SyncedProfileID, connection.SideB.SyncedProfileID} {
		if err := pr.MarkLocalOnly(ctx, syncedProfileID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("detach synced copy %s: %w", syncedProfileID, err)
		}
	}

	mappings, err := cr.ListMappingsByConnection(ctx, connection.ID)
	if err != nil {
		return fmt.Errorf("list mappings: %w", err)
	}
	for _, mapping := range mappings {
		if err = cr.DeleteMapping(ctx, connection.ID, mapping.SourceDetailID); err != nil {
			return fmt.Errorf("delete mapping: %w", err)
		}
	}

	return nil
}

// preferenceOrDefault resolves one toggle from a declared preference map,
// falling back to the default-open policy for absent categories.
func preferenceOrDefault(preferences map[string]bool, category string) bool {
	if shared, ok := preferences[category]; ok {
		return shared
	}
	return true
}
