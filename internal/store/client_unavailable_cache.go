package store

import (
	"context"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

// unavailableCache stands in for the SQLite cache when the database cannot
// be opened. Every read is a miss and every write is dropped, so the client
// keeps working online-only.
type unavailableCache struct {
	reason error
	logger *logger.Logger
}

// NewUnavailableCache returns a [LocalCache] that persists nothing. reason
// is logged once and kept for diagnostics.
func NewUnavailableCache(reason error, logger *logger.Logger) LocalCache {
	logger.Warn().Err(reason).Msg("local cache unavailable, running without persistence")
	return &unavailableCache{reason: reason, logger: logger}
}

func (u *unavailableCache) UpsertMessages(context.Context, int64, []models.Message) error {
	return nil
}

func (u *unavailableCache) UpsertConversations(context.Context, int64, []models.Conversation) error {
	return nil
}

func (u *unavailableCache) QueryMessages(context.Context, int64, models.MessageFilter) ([]models.Message, error) {
	return []models.Message{}, nil
}

func (u *unavailableCache) QueryConversations(context.Context, int64) ([]models.Conversation, error) {
	return []models.Conversation{}, nil
}

func (u *unavailableCache) MarkRead(context.Context, int64, []int64, time.Time) error {
	return nil
}

func (u *unavailableCache) ReplacePreviewReference(context.Context, int64, models.PreviewMatch) (int64, error) {
	return 0, ErrMessageNotFound
}

func (u *unavailableCache) GetSyncState(context.Context, int64, string, any) error {
	return ErrSyncStateNotFound
}

func (u *unavailableCache) PutSyncState(context.Context, int64, string, any) error {
	return nil
}

func (u *unavailableCache) ClearAll(context.Context, int64) error {
	return nil
}

func (u *unavailableCache) Available() bool {
	return false
}
