package store

import (
	"context"
	"fmt"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
)

// ClientStorages groups all client-side storage backends into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Cache is the SQLite-backed message cache, or the degraded stand-in
	// when the database could not be opened.
	Cache LocalCache

	// Sessions persists the credential pair.
	Sessions SessionStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the bbolt session store at cfg.SessionFile. Failure is fatal.
//  2. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist, and runs pending
//     schema migrations via [DB.Migrate].
//  3. If step 2 fails, wires [NewUnavailableCache] instead so the client
//     still starts.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	sessions, err := NewBoltSessionStore(cfg.SessionFile, logger)
	if err != nil {
		return nil, fmt.Errorf("session store error: %w", err)
	}

	storages := &ClientStorages{Sessions: sessions}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err == nil {
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			err = fmt.Errorf("migration failed: %w", err)
		}
	}
	if err != nil {
		storages.Cache = NewUnavailableCache(err, logger)
		return storages, nil
	}

	storages.db = db
	storages.Cache = NewLocalCache(db, logger)
	return storages, nil
}

// Close releases the database and the session file lock.
func (s *ClientStorages) Close() error {
	var firstErr error
	if s.db != nil {
		firstErr = s.db.Close()
	}
	if s.Sessions != nil {
		if err := s.Sessions.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
