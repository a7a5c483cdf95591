package service

import (
	"context"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Authorizer runs calls that need a valid access token.
type Authorizer interface {
	// AuthorizedDo refreshes the session first when the token is about to
	// expire, runs call and, if call reports adapter.ErrUnauthorized, refreshes
	// and runs it exactly once more. The second result is returned as is.
	AuthorizedDo(ctx context.Context, call func(ctx context.Context) error) error
}

// ClientSessionService owns the credential pair of the signed-in user.
type ClientSessionService interface {
	Authorizer

	// AccessToken returns the current access token or "" without a session.
	AccessToken() string

	// User returns the snapshot of the signed-in account.
	User() models.User

	// IsExpiringSoon reports whether token expires within the configured
	// buffer. Tokens without a readable exp claim count as expiring.
	IsExpiringSoon(token string) bool

	// EnsureToken returns an access token that is not about to expire,
	// refreshing first if needed.
	EnsureToken(ctx context.Context) (string, error)

	// Refresh exchanges the refresh token for a new pair. Concurrent callers
	// share one network call and its outcome. A failed refresh clears the
	// session and is reported to subscribers once.
	Refresh(ctx context.Context) error

	// CheckAndRefresh refreshes when the current token is expiring soon.
	CheckAndRefresh(ctx context.Context) error

	// Validate confirms the session with the server and returns the account.
	Validate(ctx context.Context) (models.User, error)

	// Login starts a session with a username and password.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Restore loads the session persisted by a previous run.
	Restore(ctx context.Context) (models.User, error)

	// Logout forgets the session in memory and on disk.
	Logout(ctx context.Context) error

	// Subscribe registers fn for session lifecycle events.
	Subscribe(fn func(models.SessionEvent)) (unsubscribe func())
}

// ClientSessionJob periodically runs [ClientSessionService.CheckAndRefresh].
type ClientSessionJob interface {
	// Start launches the background goroutine, stopping a previous one first.
	// A non-positive interval defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

// ClientResourceService loads large binary resources on demand, sharing one
// in-memory copy and one in-flight fetch per id.
type ClientResourceService interface {
	// Acquire returns the resource id, fetching it through ref if nobody holds
	// it yet. Every successful Acquire must be paired with a Release.
	Acquire(ctx context.Context, id, ref string) (*models.ResourceHandle, error)

	// Release drops one reference. The bytes are freed with the last one.
	Release(id string)

	// With acquires id, runs fn and releases id on every exit path.
	With(ctx context.Context, id, ref string, fn func(h *models.ResourceHandle) error) error

	// State returns the load state of id.
	State(id string) models.ResourceState

	// Purge forgets every resource.
	Purge()
}

// ClientTransferService delivers outbound messages.
type ClientTransferService interface {
	// Dispatch sends a binary payload to target, choosing between an HTTP
	// upload and an inline realtime frame.
	Dispatch(ctx context.Context, target models.Target, payload models.OutboundPayload) (models.DispatchResult, error)

	// SendText sends a plain text message to target.
	SendText(ctx context.Context, target models.Target, text string) (models.DispatchResult, error)
}

// ClientSyncService keeps the local cache, the realtime channel and the
// renderer in step.
type ClientSyncService interface {
	// Start runs the startup sequence and begins routing realtime events.
	Start(ctx context.Context) error

	// OpenConversation makes key the current conversation, renders it from
	// the cache, refreshes it from the server and marks it read.
	OpenConversation(ctx context.Context, key string) error

	// LoadOlder returns the cached page of the current conversation older
	// than beforeID.
	LoadOlder(ctx context.Context, beforeID int64) ([]models.Message, error)

	// MarkConversationRead marks the unread messages of the current
	// conversation as read everywhere.
	MarkConversationRead(ctx context.Context) error

	// SendText sends text to the current conversation.
	SendText(ctx context.Context, text string) (models.DispatchResult, error)

	// SendPayload sends a binary payload to the current conversation.
	SendPayload(ctx context.Context, payload models.OutboundPayload) (models.DispatchResult, error)

	// OnForeground and OnOnline re-check the session and reconnect the
	// channel if it is down.
	OnForeground(ctx context.Context) error
	OnOnline(ctx context.Context) error

	// Logout stops syncing and wipes the session and the cache of the user.
	Logout(ctx context.Context) error

	// Stop detaches from the channel and stops background work.
	Stop()
}

// RealtimeChannel is the part of the realtime channel the services use.
type RealtimeChannel interface {
	Connect(ctx context.Context) error
	Reconnect(ctx context.Context) error
	Disconnect()
	RenewToken(ctx context.Context) error
	Emit(ctx context.Context, event string, payload any) error
	Subscribe(fn func(models.Event)) (unsubscribe func())
	State() models.ConnectionState
}

// Renderer receives everything the user should see. Calls arrive from
// several goroutines and must not block.
type Renderer interface {
	RenderConversations(convs []models.Conversation)
	// RenderMessages shows a page of key, newest first.
	RenderMessages(key string, msgs []models.Message)
	RenderFriends(friends []models.Friend)
	RenderConnection(ev models.ConnectionEvent)
	UserStatus(ev models.UserStatusEvent)
	Notify(ev models.NotificationEvent)
	CallInvitation(ev models.CallInvitationEvent)
	// AuthExpired asks the user to sign in again.
	AuthExpired()
}
