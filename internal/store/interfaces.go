// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

import (
	"context"
	"database/sql"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// AccountRepository persists registered accounts.
type AccountRepository interface {
	WithTx(tx *sql.Tx) AccountRepository

	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	GetAccount(ctx context.Context, accountID string) (models.Account, error)
}

// ProfileRepository persists profiles and their detail records. WithTx
// returns a copy of the repository bound to tx so profile writes and their
// propagation side effects share one transaction.
type ProfileRepository interface {
	WithTx(tx *sql.Tx) ProfileRepository

	GetProfile(ctx context.Context, profileID string) (models.Profile, error)
	GetPrimaryProfile(ctx context.Context, userID string) (models.Profile, error)
	ListProfiles(ctx context.Context, accountID string) ([]models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) error
	DeleteProfile(ctx context.Context, profileID string) error
	// ClearSharedCoreFields nulls address, phone and photo on a synced
	// copy after profile-core-fields sharing is revoked.
	ClearSharedCoreFields(ctx context.Context, profileID string) error
	// MarkLocalOnly converts a synced copy into an ordinary independent
	// profile: is_local_only=true, source linkage cleared. One-way.
	MarkLocalOnly(ctx context.Context, profileID string) error

	GetDetail(ctx context.Context, detailID string) (models.ProfileDetail, error)
	// ListDetails returns the details of one profile, optionally narrowed
	// to a category set.
	ListDetails(ctx context.Context, profileID string, categories ...string) ([]models.ProfileDetail, error)
	ListDetailsByAccount(ctx context.Context, accountID string) ([]models.ProfileDetail, error)
	SaveDetail(ctx context.Context, detail models.ProfileDetail) error
	DeleteDetail(ctx context.Context, detailID string) error
}

// ConnectionRepository persists sync connections, sharing preferences, and
// detail sync mappings.
type ConnectionRepository interface {
	WithTx(tx *sql.Tx) ConnectionRepository

	CreateConnection(ctx context.Context, connection models.SyncConnection) error
	GetConnection(ctx context.Context, connectionID string) (models.SyncConnection, error)
	// ListActiveConnectionsForUser returns the active connections having
	// userID on either side.
	ListActiveConnectionsForUser(ctx context.Context, userID string) ([]models.SyncConnection, error)
	SeverConnection(ctx context.Context, connectionID string, at time.Time) error

	// IsShared resolves one sharing toggle with the default-open policy:
	// a missing preference row reads as shared.
	IsShared(ctx context.Context, sourceProfileID, targetUserID, category string) (bool, error)
	UpsertSharingPreference(ctx context.Context, pref models.SharingPreference) error

	SaveMapping(ctx context.Context, mapping models.DetailSyncMapping) error
	ListMappingsBySourceDetail(ctx context.Context, sourceDetailID string) ([]models.DetailSyncMapping, error)
	ListMappingsByConnection(ctx context.Context, connectionID string) ([]models.DetailSyncMapping, error)
	DeleteMapping(ctx context.Context, connectionID, sourceDetailID string) error
}

// EntityRepository is the authoritative server store for the non-profile
// entity families (appointments, medications, lists...). Rows are keyed by
// the client-generated entity id, which makes upserts naturally idempotent.
type EntityRepository interface {
	UpsertEntity(ctx context.Context, record models.EntityRecord) (models.EntityRecord, error)
	ListEntities(ctx context.Context, family, accountID string) ([]models.EntityRecord, error)
	// DeleteEntity removes a record scoped to one account; deleting an
	// absent id is a no-op so replayed delete mutations stay idempotent.
	DeleteEntity(ctx context.Context, family, entityID, accountID string) error
}

// Repositories bundles the server-side persistence layer.
type Repositories struct {
	Accounts    AccountRepository
	Profiles    ProfileRepository
	Connections ConnectionRepository
	Entities    EntityRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Accounts:    NewAccountRepository(db, log.GetChildLogger()),
		Profiles:    NewProfileRepository(db, log.GetChildLogger()),
		Connections: NewConnectionRepository(db, log.GetChildLogger()),
		Entities:    NewEntityRepository(db, log.GetChildLogger()),
	}
}
