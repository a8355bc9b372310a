package store

import (
	"context"

	"github.com/avolkov/nutrisync/internal/config"
	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/models"
)

// NewStorages connects to the authoritative database, runs the schema
// migrations and wires one entity repository per registered entity type
// plus the watermark repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	entities := make(map[models.EntityType]EntityStore, len(models.EntityTypes))
	for _, entityType := range models.EntityTypes {
		entities[entityType] = NewEntityRepository(db, entityType, log)
	}

	return &Storages{
		Entities:   entities,
		Watermarks: NewWatermarkRepository(db, log),
	}, nil
}
