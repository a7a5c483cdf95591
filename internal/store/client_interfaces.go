package store

import (
	"context"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalCache is the durable local copy of conversations, messages and
// per-conversation sync cursors. Every method is scoped by ownerID, the
// signed-in user, so accounts sharing a device never see each other's rows.
type LocalCache interface {
	// UpsertMessages inserts or replaces messages by id and recomputes the
	// preview and unread count of every affected conversation in the same
	// transaction.
	UpsertMessages(ctx context.Context, ownerID int64, msgs []models.Message) error
	// UpsertConversations merges conversation summaries from the server. The
	// stored preview is never rewound to an older message.
	UpsertConversations(ctx context.Context, ownerID int64, convs []models.Conversation) error
	// QueryMessages returns one page of a conversation, newest first.
	QueryMessages(ctx context.Context, ownerID int64, filter models.MessageFilter) ([]models.Message, error)
	// QueryConversations returns all conversations, most recent first.
	QueryConversations(ctx context.Context, ownerID int64) ([]models.Conversation, error)
	// MarkRead flags ids as read at the given instant.
	MarkRead(ctx context.Context, ownerID int64, ids []int64, at time.Time) error
	// ReplacePreviewReference attaches the durable reference of an
	// original-ready message to the preview it completes and returns the id
	// of the updated preview. Returns [ErrMessageNotFound] when no preview
	// matches.
	ReplacePreviewReference(ctx context.Context, ownerID int64, match models.PreviewMatch) (int64, error)
	// GetSyncState decodes the value stored under key into dst.
	GetSyncState(ctx context.Context, ownerID int64, key string, dst any) error
	// PutSyncState stores v under key.
	PutSyncState(ctx context.Context, ownerID int64, key string, v any) error
	// ClearAll drops every row of ownerID.
	ClearAll(ctx context.Context, ownerID int64) error
	// Available reports whether writes are persisted.
	Available() bool
}

// SessionStore persists the credential pair between runs.
type SessionStore interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
	Close() error
}
