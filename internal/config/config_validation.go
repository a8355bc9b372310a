package config

import "time"

// Defaults applied when neither env, flags nor the JSON file provide a
// value.
const (
	defaultRequestTimeout = 30 * time.Second
	defaultSyncInterval   = 5 * time.Minute
)

// validate normalizes the merged config. Role-specific required fields are
// checked by ValidateServer / ValidateClient, because the server and the
// device agent share this structure but need different subsets of it.
func (c *StructuredConfig) validate() error {
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if c.Workers.SyncInterval <= 0 {
		c.Workers.SyncInterval = defaultSyncInterval
	}

	return nil
}

// ValidateServer checks the fields the sync server cannot run without.
func (c *StructuredConfig) ValidateServer() error {
	if c.Server.HTTPAddress == "" {
		return ErrNoServerAddress
	}
	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}
	if c.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	return nil
}

// ValidateClient checks the fields the device agent cannot run without.
func (c *StructuredConfig) ValidateClient() error {
	if c.Adapter.BaseURL == "" {
		return ErrNoBaseURL
	}
	if c.Storage.Local.Path == "" {
		return ErrNoLocalPath
	}

	return nil
}
