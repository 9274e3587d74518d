// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// The propagation trigger. After a profile or detail write commits its
// primary effect, these methods mirror the shared portion of the change into
// the synced-copy profiles held by the opposite side of every active
// connection. They always run on transaction-bound repositories: the
// originating write and its mirrored side effects are one atomic unit.
//
// Writes that land on a synced copy itself never re-enter the trigger,
// otherwise two connected accounts would bounce updates back and forth.

// propagateProfile mirrors the always-shared scalar tier (name, preferred
// name, email, birthday, deceased, date of death) into every synced copy of
// profile, plus the conditional tier (address, phone, photo) where the
// profile-core-fields toggle allows it.
func (s *profileService) propagateProfile(ctx context.Context, pr store.ProfileRepository, cr store.ConnectionRepository, profile models.Profile) error {
	if profile.IsSyncedCopy() {
		return nil
	}

	connections, err := cr.ListActiveConnectionsForUser(ctx, profile.UserID)
	if err != nil {
		return fmt.Errorf("list connections: %w", err)
	}

	for _, connection := range connections {
		mine, viewer, ok := sidesFor(connection, profile.UserID)
		if !ok || mine.SourceProfileID != profile.ID {
			continue
		}

		copyProfile, err := pr.GetProfile(ctx, viewer.SyncedProfileID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				logger.FromContext(ctx).Warn().
					Str("connection_id", connection.ID).
					Str("synced_profile_id", viewer.SyncedProfileID).
					Msg("synced copy missing, skipping propagation")
				continue
			}
			return fmt.Errorf("load synced copy: %w", err)
		}
		if !copyProfile.IsSyncedCopy() {
			// already detached, a keepsake now
			continue
		}

		applySharedFields(&copyProfile, profile)

		coreShared, err := cr.IsShared(ctx, profile.ID, viewer.UserID, models.SharingProfileCoreFields)
		if err != nil {
			return fmt.Errorf("resolve core-fields sharing: %w", err)
		}
		applyCoreFields(&copyProfile, profile, coreShared)

		if err = pr.SaveProfile(ctx, copyProfile); err != nil {
			return fmt.Errorf("save synced copy %s: %w", copyProfile.ID, err)
		}
	}

	return nil
}

// propagateDetail mirrors one detail record into the synced-copy profiles of
// every active connection whose sharing toggle admits the detail's category.
// A previously mirrored copy whose category stopped being shared is purged.
func (s *profileService) propagateDetail(ctx context.Context, pr store.ProfileRepository, cr store.ConnectionRepository, detail models.ProfileDetail) error {
	owner, err := pr.GetProfile(ctx, detail.ProfileID)
	if err != nil {
		return fmt.Errorf("load owning profile: %w", err)
	}
	if owner.IsSyncedCopy() {
		return nil
	}

	mappings, err := cr.ListMappingsBySourceDetail(ctx, detail.ID)
	if err != nil {
		return fmt.Errorf("list mappings: %w", err)
	}
	byConnection := make(map[string]models.DetailSyncMapping, len(mappings))
	for _, mapping := range mappings {
		byConnection[mapping.ConnectionID] = mapping
	}

	sharingKey, mirrorable := models.SharingCategoryForDetail(detail.Category)

	connections, err := cr.ListActiveConnectionsForUser(ctx, owner.UserID)
	if err != nil {
		return fmt.Errorf("list connections: %w", err)
	}

	for _, connection := range connections {
		mine, viewer, ok := sidesFor(connection, owner.UserID)
		if !ok || mine.SourceProfileID != owner.ID {
			continue
		}

		shared := false
		if mirrorable {
			shared, err = cr.IsShared(ctx, owner.ID, viewer.UserID, sharingKey)
			if err != nil {
				return fmt.Errorf("resolve %s sharing: %w", sharingKey, err)
			}
		}

		mapping, mirrored := byConnection[connection.ID]

		if !shared {
			// a category edit can move a detail out of a shared
			// category: its mirrored copy must go too
			if mirrored {
				if err = pr.DeleteDetail(ctx, mapping.SyncedDetailID); err != nil {
					return fmt.Errorf("delete mirrored detail %s: %w", mapping.SyncedDetailID, err)
				}
				if err = cr.DeleteMapping(ctx, connection.ID, detail.ID); err != nil {
					return fmt.Errorf("delete mapping: %w", err)
				}
			}
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
		if mirrored {
			copyDetail.ID = mapping.SyncedDetailID
		}

		if err = pr.SaveDetail(ctx, copyDetail); err != nil {
			return fmt.Errorf("save mirrored detail %s: %w", copyDetail.ID, err)
		}
		if !mirrored {
			if err = cr.SaveMapping(ctx, models.DetailSyncMapping{
				ConnectionID:   connection.ID,
				SourceDetailID: detail.ID,
				SyncedDetailID: copyDetail.ID,
			}); err != nil {
				return fmt.Errorf("save mapping: %w", err)
			}
		}
	}

	return nil
}

// applySharedFields copies the always-shared scalar tier from source onto a
// synced copy, leaving the copy's identity and linkage columns untouched.
func applySharedFields(copyProfile *models.Profile, source models.Profile) {
	copyProfile.Name = source.Name
	copyProfile.PreferredName = source.PreferredName
	copyProfile.Email = source.Email
	copyProfile.Birthday = source.Birthday
	copyProfile.Deceased = source.Deceased
	copyProfile.DateOfDeath = source.DateOfDeath
}

// applyCoreFields copies or clears the conditionally-shared scalars gated by
// the profile-core-fields toggle.
func applyCoreFields(copyProfile *models.Profile, source models.Profile, shared bool) {
	if shared {
		copyProfile.Address = source.Address
		copyProfile.Phone = source.Phone
		copyProfile.PhotoURL = source.PhotoURL
		return
	}
	copyProfile.Address = nil
	copyProfile.Phone = nil
	copyProfile.PhotoURL = nil
}
