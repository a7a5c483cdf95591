package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/realtime"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/service"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/store"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "auth expired wrapped", err: fmt.Errorf("error validating session: %w", service.ErrAuthExpired), want: MsgSessionExpired},
		{name: "wrong credentials", err: service.ErrWrongCredentials, want: MsgWrongCredentials},
		{name: "login forbidden", err: service.ErrLoginForbidden, want: MsgLoginForbidden},
		{name: "oversize", err: service.ErrOversizePayload, want: MsgFileTooLarge},
		{name: "server 413", err: adapter.ErrPayloadTooLarge, want: MsgFileTooLarge},
		{name: "empty", err: service.ErrEmptyPayload, want: MsgEmptyFile},
		{name: "no conversation", err: service.ErrNoConversationOpen, want: MsgNoConversationOpen},
		{name: "resource", err: fmt.Errorf("%w: r1: boom", service.ErrResourceFetchFailed), want: MsgResourceUnavailable},
		{name: "offline", err: realtime.ErrTransportUnavailable, want: MsgOffline},
		{name: "cache", err: store.ErrCacheUnavailable, want: MsgCacheUnavailable},
		{name: "not found", err: adapter.ErrNotFound, want: MsgNotFound},
		{name: "bad gateway", err: adapter.ErrBadGateway, want: MsgServerError},
		{name: "unknown", err: errors.New("weird"), want: MsgSomethingWentWrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusMessage(tt.err))
		})
	}
}

func TestConnectionStatus(t *testing.T) {
	tests := []struct {
		name string
		ev   models.ConnectionEvent
		want string
	}{
		{name: "connected", ev: models.ConnectionEvent{State: models.Connected}, want: MsgConnected},
		{name: "connecting", ev: models.ConnectionEvent{State: models.Connecting}, want: MsgConnecting},
		{
			name: "backoff",
			ev:   models.ConnectionEvent{State: models.Disconnected, Attempt: 3, Delay: 4 * time.Second},
			want: "reconnecting in 4s (attempt 3)",
		},
		{
			name: "last resort retry",
			ev:   models.ConnectionEvent{State: models.Disconnected, Attempt: 6, Delay: 30 * time.Second, GaveUp: true},
			want: "reconnecting in 30s (attempt 6)",
		},
		{name: "gave up", ev: models.ConnectionEvent{State: models.Disconnected, GaveUp: true}, want: MsgGaveUp},
		{name: "client closed", ev: models.ConnectionEvent{State: models.Disconnected, Reason: models.CloseClientInitiated}, want: MsgDisconnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConnectionStatus(tt.ev))
		})
	}
}
