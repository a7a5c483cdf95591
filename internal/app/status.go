package app

import (
	"errors"
	"fmt"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/realtime"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/service"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/store"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

// StatusMessage maps err to the short status line shown to the user. A nil
// error yields "".
func StatusMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrAuthExpired), errors.Is(err, adapter.ErrUnauthorized):
		return MsgSessionExpired
	case errors.Is(err, service.ErrWrongCredentials):
		return MsgWrongCredentials
	case errors.Is(err, service.ErrLoginForbidden):
		return MsgLoginForbidden
	case errors.Is(err, service.ErrInvalidDataProvided):
		return MsgInvalidDataProvided
	case errors.Is(err, service.ErrOversizePayload), errors.Is(err, adapter.ErrPayloadTooLarge):
		return MsgFileTooLarge
	case errors.Is(err, service.ErrEmptyPayload):
		return MsgEmptyFile
	case errors.Is(err, service.ErrNoConversationOpen):
		return MsgNoConversationOpen
	case errors.Is(err, service.ErrResourceFetchFailed):
		return MsgResourceUnavailable
	case errors.Is(err, realtime.ErrTransportUnavailable):
		return MsgOffline
	case errors.Is(err, store.ErrCacheUnavailable):
		return MsgCacheUnavailable
	case errors.Is(err, adapter.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return MsgServerError
	default:
		return MsgSomethingWentWrong
	}
}

// ConnectionStatus renders a channel lifecycle event as a status line.
func ConnectionStatus(ev models.ConnectionEvent) string {
	switch {
	case ev.State == models.Connected:
		return MsgConnected
	case ev.GaveUp && ev.Delay == 0:
		return MsgGaveUp
	case ev.Delay > 0:
		return fmt.Sprintf("reconnecting in %s (attempt %d)", ev.Delay, ev.Attempt)
	case ev.State == models.Connecting:
		return MsgConnecting
	default:
		return MsgDisconnected
	}
}
