// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/server_service_mock.go -package=mock

import (
	"context"

	"github.com/kinkeeper-app/kinkeeper/models"
)

// AuthService handles account registration, credential verification and JWT
// session tokens. Registering an account also creates its primary profile,
// the one a sync connection mirrors to the opposite account.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	ValidateToken(tokenString string) (models.Token, error)
}

// EntitySyncService is the server half of the sync protocol: authoritative
// per-family snapshots and idempotent upsert/delete keyed by the
// client-generated entity id. The profile and profile_detail families are
// dispatched to the ProfileService so cross-account propagation fires inside
// the same transaction as the originating write.
type EntitySyncService interface {
	Snapshot(ctx context.Context, family, accountID string) ([]models.EntityRecord, error)
	Upsert(ctx context.Context, accountID string, record models.EntityRecord) (models.EntityRecord, error)
	Delete(ctx context.Context, family, entityID, accountID string) error
}

// ProfileService persists profiles and detail records and runs the
// cross-account propagation trigger after every write. A save or delete and
// all of its mirrored side effects commit in one transaction.
type ProfileService interface {
	SaveProfile(ctx context.Context, profile models.Profile) error
	DeleteProfile(ctx context.Context, profileID string) error
	SaveDetail(ctx context.Context, detail models.ProfileDetail) error
	DeleteDetail(ctx context.Context, detailID string) error
}

// ConnectionService manages the sync-connection lifecycle. The only state
// transition is active to severed, and severed is terminal.
type ConnectionService interface {
	AcceptInvitation(ctx context.Context, req models.AcceptInvitationRequest) (models.SyncConnection, error)
	Sever(ctx context.Context, connectionID, userID string) error
}

// SharingService stores per-viewer sharing toggles and applies them to
// already-mirrored data: toggling off purges mirrored rows, toggling back on
// re-mirrors whatever is missing.
type SharingService interface {
	SetSharing(ctx context.Context, accountID string, req models.SharingRequest) error
}
