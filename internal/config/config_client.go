package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the agent transport layer.
type ClientAdapter struct {
	// BaseURL is the sync server base URL.
	BaseURL string
	// Token is the pre-issued bearer token for outbound requests.
	Token string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups the agent's local persistence settings.
type ClientStorage struct {
	// Path is the SQLite file backing the mutation queue and merge store.
	Path string
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// SyncInterval defines how often the automatic sync job runs.
	SyncInterval time.Duration
}

// ClientConfig is the device agent's configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// DeviceID is the stable installation identifier; empty means the
	// agent should generate and persist one.
	DeviceID string
	// Adapter contains outbound transport settings.
	Adapter ClientAdapter
	// Storage contains local persistence settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the agent-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if err = cfg.ValidateClient(); err != nil {
		return nil, err
	}

	return &ClientConfig{
		DeviceID: cfg.App.DeviceID,
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			Token:          cfg.Auth.Token,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Storage.Local.Path,
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
		},
	}, nil
}
