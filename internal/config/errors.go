package config

import "errors"

var (
	ErrNoServerAddress = errors.New("no server address provided")
	ErrNoDatabaseDSN   = errors.New("no database DSN provided")
	ErrNoTokenSignKey  = errors.New("no token sign key provided")
	ErrNoBaseURL       = errors.New("no sync server base URL provided")
	ErrNoLocalPath     = errors.New("no local storage path provided")
)
