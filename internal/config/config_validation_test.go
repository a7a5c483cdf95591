package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(defaultConfig())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no session file",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.SessionFile = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no realtime endpoint",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.WSAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero expiry buffer",
			mutate:  func(cfg *ClientConfig) { cfg.Session.ExpiryBuffer = 0 },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name: "heartbeat equals server idle timeout",
			mutate: func(cfg *ClientConfig) {
				cfg.Realtime.HeartbeatInterval = 30 * time.Second
				cfg.Realtime.ServerIdleTimeout = 30 * time.Second
			},
			wantErr: ErrInvalidRealtimeConfigs,
		},
		{
			name: "cap below base",
			mutate: func(cfg *ClientConfig) {
				cfg.Realtime.BackoffBase = 5 * time.Second
				cfg.Realtime.BackoffCap = time.Second
			},
			wantErr: ErrInvalidRealtimeConfigs,
		},
		{
			name:    "no attempts",
			mutate:  func(cfg *ClientConfig) { cfg.Realtime.MaxAttempts = 0 },
			wantErr: ErrInvalidRealtimeConfigs,
		},
		{
			name:    "preview quality out of range",
			mutate:  func(cfg *ClientConfig) { cfg.Transfer.PreviewQuality = 101 },
			wantErr: ErrInvalidTransferConfigs,
		},
		{
			name:    "zero max file size",
			mutate:  func(cfg *ClientConfig) { cfg.Transfer.MaxFileSize = 0 },
			wantErr: ErrInvalidTransferConfigs,
		},
		{
			name:    "zero probe interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.ProbeInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_CopiesFields(t *testing.T) {
	src := defaultConfig()
	src.App.Username = "alice"
	src.Storage.SessionFile = "s.db"

	cfg := NewClientConfig(src)

	assert.Equal(t, "alice", cfg.App.Username)
	assert.Equal(t, "s.db", cfg.Storage.SessionFile)
	assert.Equal(t, src.Realtime.MaxAttempts, cfg.Realtime.MaxAttempts)
	assert.Equal(t, src.Transfer.InlineThreshold, cfg.Transfer.InlineThreshold)
	assert.Equal(t, src.Workers.ProbeInterval, cfg.Workers.ProbeInterval)
}
