package models

import "time"

// DeviceWatermark is the per (owner, device) record of the last successful
// sync round. One authoritative row per device; overwritten, never
// versioned.
type DeviceWatermark struct {
	OwnerID    int64     `json:"owner_id"`
	DeviceID   string    `json:"device_id"`
	LastSyncAt time.Time `json:"last_sync_at"`
}
