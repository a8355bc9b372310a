package service

import "errors"

var (
	// ErrNoDeviceID rejects a sync round before any mutation is processed.
	ErrNoDeviceID = errors.New("no device ID was provided")

	// ErrNoOwnerID is returned when the request context carries no
	// authenticated owner.
	ErrNoOwnerID = errors.New("no owner ID was provided")

	// ErrUnknownEntityType is reported per item when a change set names an
	// entity family the server does not serve.
	ErrUnknownEntityType = errors.New("unknown entity type")
)
