// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kinkeeper-app/kinkeeper/models"
)

type HTTPRemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// httpRemote is the REST implementation of [RemoteRepository]. It is safe
// for concurrent use: the facade, the flush worker and the reconciliation
// engine all share one instance.
type httpRemote struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPRemote(cfg HTTPRemoteConfig) RemoteRepository {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemote{client: cli}
}

func (h *httpRemote) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemote) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemote) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: register request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpRemote) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: login request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpRemote) ListRecords(ctx context.Context, family string) ([]models.EntityRecord, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/sync/" + url.PathEscape(family))
	if err != nil {
		return nil, fmt.Errorf("%w: list %s request: %w", ErrRemoteUnavailable, family, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var snapshot models.SnapshotResponse
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return nil, fmt.Errorf("decode %s snapshot: %w", family, err)
	}

	return snapshot.Records, nil
}

func (h *httpRemote) UpsertRecord(ctx context.Context, record models.EntityRecord) (models.EntityRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpsertRequest{Record: record}).
		Put("/api/sync/" + url.PathEscape(record.Family))
	if err != nil {
		return models.EntityRecord{}, fmt.Errorf("%w: upsert %s request: %w", ErrRemoteUnavailable, record.Family, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntityRecord{}, err
	}

	var saved models.EntityRecord
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.EntityRecord{}, fmt.Errorf("decode upsert response: %w", err)
	}

	return saved, nil
}

func (h *httpRemote) DeleteRecord(ctx context.Context, family, entityID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/sync/" + url.PathEscape(family) + "/" + url.PathEscape(entityID))
	if err != nil {
		return fmt.Errorf("%w: delete %s request: %w", ErrRemoteUnavailable, family, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemote) AcceptInvitation(ctx context.Context, req models.AcceptInvitationRequest) (models.SyncConnection, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/connections/accept")
	if err != nil {
		return models.SyncConnection{}, fmt.Errorf("%w: accept invitation request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncConnection{}, err
	}

	var connection models.SyncConnection
	if err = json.Unmarshal(resp.Body(), &connection); err != nil {
		return models.SyncConnection{}, fmt.Errorf("decode connection response: %w", err)
	}

	return connection, nil
}

func (h *httpRemote) SeverConnection(ctx context.Context, connectionID string) error {
	resp, err := h.authedRequest(ctx).
		Post("/api/connections/" + url.PathEscape(connectionID) + "/sever")
	if err != nil {
		return fmt.Errorf("%w: sever connection request: %w", ErrRemoteUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemote) SetSharing(ctx context.Context, req models.SharingRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/sharing")
	if err != nil {
		return fmt.Errorf("%w: set sharing request: %w", ErrRemoteUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemote) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
