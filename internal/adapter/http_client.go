// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avolkov/nutrisync/internal/config"
	"github.com/avolkov/nutrisync/models"
)

type httpServerGateway struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerGateway constructs a [ServerGateway] speaking the JSON sync
// protocol over HTTP.
func NewHTTPServerGateway(cfg config.ClientAdapter) ServerGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerGateway{client: cli, token: strings.TrimSpace(cfg.Token)}
}

func (h *httpServerGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerGateway) bearer() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerGateway) SyncRound(ctx context.Context, request models.SyncRequest) (models.SyncResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.bearer()).
		SetBody(request).
		Post("/api/sync")
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var syncResponse models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &syncResponse); err != nil {
		return models.SyncResponse{}, fmt.Errorf("decode sync response: %w", err)
	}

	return syncResponse, nil
}

func (h *httpServerGateway) Status(ctx context.Context, deviceID string) (models.SyncStatus, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.bearer()).
		SetQueryParam("device_id", deviceID).
		Get("/api/sync/status")
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncStatus{}, err
	}

	var status models.SyncStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.SyncStatus{}, fmt.Errorf("decode status response: %w", err)
	}

	return status, nil
}

func mapHTTPError(resp *resty.Response) error {
	switch {
	case resp.StatusCode() < 300:
		return nil
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode() >= 400 && resp.StatusCode() < 500:
		return fmt.Errorf("%w: %s", ErrBadRequest, strings.TrimSpace(string(resp.Body())))
	default:
		return fmt.Errorf("%w: status %d", ErrServerUnavailable, resp.StatusCode())
	}
}
