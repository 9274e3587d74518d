// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package models

import (
	"encoding/json"
	"time"
)

// Entity family names. Each family maps to one local cache table and one
// authoritative collection on the server.
const (
	FamilyAccount       = "account"
	FamilyProfile       = "profile"
	FamilyProfileDetail = "profile_detail"
	FamilyAppointment   = "appointment"
	FamilyCountdown     = "countdown"
	FamilyMedication    = "medication"
	FamilyTodoList      = "todo_list"
	FamilyTodoItem      = "todo_item"
	FamilyContact       = "contact"
	FamilyMood          = "mood"
	FamilyReminder      = "reminder"
	FamilyMealPlan      = "meal_plan"
)

// ChangeType classifies a queued mutation.
type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// SyncMeta carries the synchronization state every cached entity embeds.
//
// IsSynced is true once the remote backend has acknowledged the entity's
// current state. LocallyDeleted is a soft-delete tombstone: the row stays in
// the cache until the deletion is confirmed pushed (or reconciliation prunes
// it). LastModifiedAt is set on every local mutation and is used only for
// tombstone-retention bookkeeping, never for conflict merging.
type SyncMeta struct {
	IsSynced       bool      `json:"is_synced"`
	LocallyDeleted bool      `json:"locally_deleted"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}

// MarkModified stamps the entity as locally changed and not yet acknowledged
// by the remote backend.
func (m *SyncMeta) MarkModified(now time.Time) {
	m.IsSynced = false
	m.LastModifiedAt = now
}

// MarkSynced records a remote acknowledgement of the current state.
func (m *SyncMeta) MarkSynced() {
	m.IsSynced = true
}

// Entity is the capability set the generic repository facade requires from
// every cached domain type: a client-generated globally-unique id (usable as
// the eventual remote primary key), the owning account, and mutable access
// to the embedded sync metadata. SetEntityID exists so the facade can
// assign a fresh UUID on create.
type Entity interface {
	EntityID() string
	EntityAccount() string
	SyncState() *SyncMeta
	SetEntityID(id string)
}

// EntityRecord is the family-agnostic row shape shared by the local cache
// and the sync wire protocol. Business fields travel as an opaque JSON
// payload; the sync columns are first-class so the cache and the
// reconciliation engine can reason about them without decoding payloads.
type EntityRecord struct {
	Family         string          `json:"family"`
	EntityID       string          `json:"entity_id"`
	AccountID      string          `json:"account_id"`
	Payload        json.RawMessage `json:"payload"`
	IsSynced       bool            `json:"is_synced"`
	LocallyDeleted bool            `json:"locally_deleted"`
	LastModifiedAt time.Time       `json:"last_modified_at"`
}

// Mutation is one append-only mutation-queue entry. A later entry for the
// same entity never cancels an earlier one; the flush step is idempotent
// against the entity's current cached state, not against a literal diff.
type Mutation struct {
	ID         int64      `json:"id"`
	Family     string     `json:"family"`
	EntityID   string     `json:"entity_id"`
	AccountID  string     `json:"account_id"`
	ChangeType ChangeType `json:"change_type"`
	EnqueuedAt time.Time  `json:"enqueued_at"`
}
