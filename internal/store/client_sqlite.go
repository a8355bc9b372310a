package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/avolkov/nutrisync/internal/config"
	"github.com/avolkov/nutrisync/internal/logger"
	migrations "github.com/avolkov/nutrisync/migrations/client"
)

// LocalDB wraps the device-side SQLite connection shared by the mutation
// queue, the merge store and the sync state row.
type LocalDB struct {
	*sql.DB
	logger *logger.Logger
}

func NewLocalDB(path string, log *logger.Logger) (*LocalDB, error) {
	dsn := path
	if dsn != ":memory:" {
		// WAL keeps the queue writable while a sync round reads it;
		// busy_timeout covers the agent and a UI process sharing the file.
		dsn = fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewLocalDB").Msg("error opening local database")
		return nil, fmt.Errorf("error opening local database: %w", err)
	}

	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY churn inside the process.
	conn.SetMaxOpenConns(1)

	if err = migrations.Migrate(conn); err != nil {
		return nil, err
	}

	return &LocalDB{DB: conn, logger: log}, nil
}

// NewClientStorages opens the local SQLite file and wires the queue, the
// merge store and the sync state repository on top of it.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewLocalDB(cfg.Path, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Queue:   NewMutationQueue(db, log),
		Records: NewMergeStore(db, log),
		State:   NewSyncStateStorage(db, log),
		db:      db,
	}, nil
}
