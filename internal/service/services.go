package service

import (
	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/internal/store"
)

// NewServices wires the server-side services over the given storages.
func NewServices(storages *store.Storages, log *logger.Logger) *Services {
	return &Services{
		Sync: NewSyncService(storages, log),
	}
}
