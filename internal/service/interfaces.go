// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

// Package service holds the sync engine's business logic: the server-side
// reconciliation engine and watermark bookkeeping, and the device-side
// queue capture, round execution and background job.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_service_mock.go -package=mock

import (
	"context"

	"github.com/avolkov/nutrisync/models"
)

// SyncService is the server-side engine behind the sync API.
type SyncService interface {
	// SyncRound applies one batch of client mutations and computes the
	// server-side delta. Per-mutation failures never abort the batch;
	// they are reported inside the response. The device watermark is
	// advanced unconditionally at the end of the round.
	SyncRound(ctx context.Context, ownerID int64, request models.SyncRequest) (models.SyncResponse, error)

	// Status reports the device's last successful sync watermark.
	Status(ctx context.Context, ownerID int64, deviceID string) (models.SyncStatus, error)
}

// Services aggregates the server-side services consumed by the transport
// layer.
type Services struct {
	Sync SyncService
}
