// Package adapter implements the device agent's outbound transport to the
// sync server.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/server_gateway_mock.go -package=mock

import (
	"context"

	"github.com/avolkov/nutrisync/models"
)

// ServerGateway is the agent's view of the sync server.
type ServerGateway interface {
	// SyncRound executes one request/response sync exchange.
	SyncRound(ctx context.Context, request models.SyncRequest) (models.SyncResponse, error)

	// Status fetches the server-side watermark of this device.
	Status(ctx context.Context, deviceID string) (models.SyncStatus, error)

	// SetToken replaces the bearer token used on outbound requests.
	SetToken(token string)
}
