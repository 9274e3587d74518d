// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

// Package adapter provides the transport layer between the local-first
// client and the kinkeeper server.
//
// The primary abstraction is [RemoteRepository], which decouples the client
// service layer (repository facade, flush worker, reconciliation engine)
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemote]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
// Transport-level failures (refused connection, timeout) are wrapped in
// [ErrRemoteUnavailable], the signal the facade uses to fall back to the
// local cache.
package adapter

import (
	"context"

	"github.com/kinkeeper-app/kinkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_repository_mock.go -package=mock

// RemoteRepository defines transport-agnostic communication with the
// kinkeeper server. Implementations are responsible for serialisation,
// bearer-token management, and mapping transport-level errors to the
// sentinel values defined in this package.
type RemoteRepository interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Register or Login.
	SetToken(token string)

	// Token returns the currently stored bearer token, or an empty string
	// if no token has been set yet.
	Token() string

	// Register creates a server account. On success it stores the
	// returned bearer token via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ListRecords fetches the authoritative server snapshot of one entity
	// family for the authenticated account. The reconciliation engine
	// merges this snapshot into the local cache.
	ListRecords(ctx context.Context, family string) ([]models.EntityRecord, error)

	// UpsertRecord pushes one entity's full current state. The server
	// keys rows by the client-generated entity id, so replaying the same
	// record converges instead of duplicating.
	UpsertRecord(ctx context.Context, record models.EntityRecord) (models.EntityRecord, error)

	// DeleteRecord removes one entity on the server. Deleting an id the
	// server never saw (or already deleted) succeeds, so replayed delete
	// mutations stay idempotent.
	DeleteRecord(ctx context.Context, family, entityID string) error

	// AcceptInvitation establishes a sync connection between two accounts
	// and returns the created connection with both synced-copy profiles
	// already materialized server-side.
	AcceptInvitation(ctx context.Context, req models.AcceptInvitationRequest) (models.SyncConnection, error)

	// SeverConnection permanently ends a sync connection. Severed is
	// terminal; the call fails with [ErrNotFound] if the connection is
	// absent or already severed.
	SeverConnection(ctx context.Context, connectionID string) error

	// SetSharing flips one sharing toggle on the server, which re-mirrors
	// or purges the affected category on the viewer's synced copy.
	SetSharing(ctx context.Context, req models.SharingRequest) error
}

// ConnectivityObserver reports whether the server is currently reachable.
// The flush worker consults it to avoid burning retry budgets while the
// device is offline.
type ConnectivityObserver interface {
	Online(ctx context.Context) bool
}
