// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package models

import "time"

// Profile is a person record owned by an account. A profile is either a
// source profile (independently owned, the origin of mirrored data) or a
// synced copy (SourceUserID set, IsLocalOnly false) maintained by the
// cross-account propagation trigger.
type Profile struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`

	// UserID identifies the person this profile describes. For a primary
	// profile it equals the account owner's user id.
	UserID string `json:"user_id"`

	// IsPrimary marks the account's canonical profile, the one a sync
	// connection mirrors to the opposite account.
	IsPrimary bool `json:"is_primary"`

	// Always-shared tier: propagated to every active connection
	// unconditionally.
	Name          string     `json:"name"`
	PreferredName string     `json:"preferred_name,omitempty"`
	Email         string     `json:"email,omitempty"`
	Birthday      *time.Time `json:"birthday,omitempty"`
	Deceased      bool       `json:"deceased"`
	DateOfDeath   *time.Time `json:"date_of_death,omitempty"`

	// Conditionally-shared scalars, gated by the profile-core-fields
	// sharing category per target viewer.
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`

	// Synced-copy linkage. SourceUserID identifies whose data this record
	// mirrors; nil for source profiles. While IsLocalOnly is false the
	// record is propagation-controlled. Severing the connection flips
	// IsLocalOnly to true and clears SourceUserID, a one-way transition.
	SourceUserID     *string `json:"source_user_id,omitempty"`
	IsLocalOnly      bool    `json:"is_local_only"`
	SyncConnectionID *string `json:"sync_connection_id,omitempty"`

	SyncMeta
}

func (p *Profile) EntityID() string      { return p.ID }
func (p *Profile) EntityAccount() string { return p.AccountID }
func (p *Profile) SyncState() *SyncMeta  { return &p.SyncMeta }
func (p *Profile) SetEntityID(id string) { p.ID = id }

// IsSyncedCopy reports whether this profile is a live mirror of another
// account's source profile. Writes to such a profile must never re-enter the
// propagation trigger.
func (p *Profile) IsSyncedCopy() bool {
	return p.SourceUserID != nil && !p.IsLocalOnly
}

// ProfileDetail is one labelled value attached to a profile (a medication
// note, a gift idea, a clothing size...). Details are the unit of
// category-filtered cross-account mirroring.
type ProfileDetail struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	ProfileID string `json:"profile_id"`
	Category  string `json:"category"`
	Label     string `json:"label"`
	Value     string `json:"value"`

	SyncMeta
}

func (d *ProfileDetail) EntityID() string      { return d.ID }
func (d *ProfileDetail) EntityAccount() string { return d.AccountID }
func (d *ProfileDetail) SyncState() *SyncMeta  { return &d.SyncMeta }
func (d *ProfileDetail) SetEntityID(id string) { d.ID = id }

// Detail categories as stored on ProfileDetail.Category.
const (
	DetailCategoryMedical          = "medical"
	DetailCategoryGiftIdea         = "gift_idea"
	DetailCategoryClothing         = "clothing"
	DetailCategoryHobby            = "hobby"
	DetailCategoryActivityIdea     = "activity_idea"
	DetailCategoryImportantAccount = "important_account"
	DetailCategoryNote             = "note"
)
