// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package models

import "time"

// ConnectionStatus is the sync-connection state machine. The only
// transition is active → severed; severed is terminal.
type ConnectionStatus string

const (
	ConnectionActive  ConnectionStatus = "active"
	ConnectionSevered ConnectionStatus = "severed"
)

// ConnectionSide describes one account's half of a sync connection: its
// canonical source profile and the synced-copy profile it maintains of the
// opposite side.
type ConnectionSide struct {
	AccountID       string `json:"account_id"`
	UserID          string `json:"user_id"`
	SourceProfileID string `json:"source_profile_id"`
	SyncedProfileID string `json:"synced_profile_id"`
}

// SyncConnection links exactly one profile in account A to its mirrored copy
// in account B and vice versa: two independent synced-copy profiles, one per
// side.
type SyncConnection struct {
	ID        string           `json:"id"`
	Status    ConnectionStatus `json:"status"`
	SideA     ConnectionSide   `json:"side_a"`
	SideB     ConnectionSide   `json:"side_b"`
	CreatedAt time.Time        `json:"created_at"`
	SeveredAt *time.Time       `json:"severed_at,omitempty"`
}

// OppositeSide returns the side of the connection that mirrors data owned by
// sourceUserID, i.e. the viewer side. The second return value is false when
// the user is on neither side.
func (c *SyncConnection) OppositeSide(sourceUserID string) (ConnectionSide, bool) {
	switch sourceUserID {
	case c.SideA.UserID:
		return c.SideB, true
	case c.SideB.UserID:
		return c.SideA, true
	}
	return ConnectionSide{}, false
}

// Sharing category keys. A sharing preference row is keyed by
// (source profile, target viewer, category); a missing row means shared.
const (
	SharingProfileCoreFields = "profile-core-fields"
	SharingMedical           = "medical"
	SharingGiftIdea          = "gift-idea"
	SharingClothing          = "clothing"
	SharingHobby             = "hobby"
	SharingActivityIdea      = "activity-idea"
	SharingImportantAccounts = "important-accounts"
)

// SharingPreference controls whether one category of fields or detail
// records is mirrored to one specific viewer. Default-open: absence of a row
// means the category is shared.
type SharingPreference struct {
	SourceProfileID string `json:"source_profile_id"`
	TargetUserID    string `json:"target_user_id"`
	Category        string `json:"category"`
	IsShared        bool   `json:"is_shared"`
}

// DetailSyncMapping tracks the 1:1 correspondence between a source detail
// record and its mirrored copy on one connection, so update/delete
// propagation never re-matches by content.
type DetailSyncMapping struct {
	ConnectionID   string `json:"connection_id"`
	SourceDetailID string `json:"source_detail_id"`
	SyncedDetailID string `json:"synced_detail_id"`
}

// detailSharingCategories maps a detail record's category to the sharing
// category that gates its mirroring. Categories absent from the map (free
// text notes) are never propagated.
var detailSharingCategories = map[string]string{
	DetailCategoryMedical:          SharingMedical,
	DetailCategoryGiftIdea:         SharingGiftIdea,
	DetailCategoryClothing:         SharingClothing,
	DetailCategoryHobby:            SharingHobby,
	DetailCategoryActivityIdea:     SharingActivityIdea,
	DetailCategoryImportantAccount: SharingImportantAccounts,
}

// IsSharingCategory reports whether key is a recognized sharing category.
func IsSharingCategory(key string) bool {
	if key == SharingProfileCoreFields {
		return true
	}
	for _, sharing := range detailSharingCategories {
		if sharing == key {
			return true
		}
	}
	return false
}

// SharingCategoryForDetail resolves a detail category to its sharing
// category key. ok is false for categories that are never mirrored.
func SharingCategoryForDetail(detailCategory string) (string, bool) {
	key, ok := detailSharingCategories[detailCategory]
	return key, ok
}

// DetailCategoriesForSharing returns the detail categories gated by the
// given sharing category key. Empty for profile-core-fields, which gates
// scalar profile columns rather than detail records.
func DetailCategoriesForSharing(sharingCategory string) []string {
	var out []string
	for detail, key := range detailSharingCategories {
		if key == sharingCategory {
			out = append(out, detail)
		}
	}
	return out
}
