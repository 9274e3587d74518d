// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

import (
	"github.com/kinkeeper-app/kinkeeper/internal/config"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
)

// Services bundles the server-side business layer.
type Services struct {
	Auth        AuthService
	Sync        EntitySyncService
	Profiles    ProfileService
	Connections ConnectionService
	Sharing     SharingService
}

func NewServices(db *store.DB, repos *store.Repositories, cfg config.Auth, log *logger.Logger) *Services {
	profiles := NewProfileService(db, repos, log.GetChildLogger())

	return &Services{
		Auth:        NewAuthService(db, repos, cfg, log.GetChildLogger()),
		Sync:        NewEntitySyncService(repos, profiles, log.GetChildLogger()),
		Profiles:    profiles,
		Connections: NewConnectionService(db, repos, log.GetChildLogger()),
		Sharing:     NewSharingService(db, repos, log.GetChildLogger()),
	}
}
