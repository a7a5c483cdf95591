package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
	"go.etcd.io/bbolt"
)

var (
	sessionBucket = []byte("session")
	sessionKey    = []byte("current")
)

type boltSessionStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltSessionStore opens (creating if needed) the bbolt file at path.
// The file is locked by the process for as long as the store is open.
func NewBoltSessionStore(path string, logger *logger.Logger) (SessionStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("error creating session dir: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("error opening session store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating session bucket: %w", err)
	}

	return &boltSessionStore{db: db, logger: logger}, nil
}

func (s *boltSessionStore) Load(ctx context.Context) (models.Session, error) {
	var session models.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(sessionBucket).Get(sessionKey)
		if raw == nil {
			return ErrLocalSessionNotFound
		}
		return session.UnmarshalBinary(raw)
	})
	if err != nil {
		if !errors.Is(err, ErrLocalSessionNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "boltSessionStore.Load").
				Msg("failed to load session")
		}
		return models.Session{}, err
	}

	return session, nil
}

func (s *boltSessionStore) Save(ctx context.Context, session models.Session) error {
	raw, err := session.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionBucket).Put(sessionKey, raw)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "boltSessionStore.Save").
			Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *boltSessionStore) Clear(ctx context.Context) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete(sessionKey)
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *boltSessionStore) Close() error {
	return s.db.Close()
}
