// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_USERNAME": "alice",
		"APP_PASSWORD": "secret",
		"APP_LOG_FILE": "/var/log/mop.log",
		"APP_VERSION":  "1.2.3",

		"ADAPTER_HTTP_ADDRESS":    "https://chat.example.com/api/v1",
		"ADAPTER_WS_ADDRESS":      "wss://chat.example.com/ws",
		"ADAPTER_REQUEST_TIMEOUT": "20s",
		"ADAPTER_UPLOAD_TIMEOUT":  "3m",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DSN":       "/var/lib/mop/cache.db",
		"STORAGE_SESSION_FILE": "/var/lib/mop/session.db",

		"SESSION_REFRESH_INTERVAL": "4m",
		"SESSION_EXPIRY_BUFFER":    "90s",

		"REALTIME_HEARTBEAT_INTERVAL":      "20s",
		"REALTIME_SERVER_IDLE_TIMEOUT":     "60s",
		"REALTIME_SERVER_DISCONNECT_DELAY": "2s",
		"REALTIME_BACKOFF_BASE":            "500ms",
		"REALTIME_BACKOFF_CAP":             "8s",
		"REALTIME_MAX_ATTEMPTS":            "6",
		"REALTIME_LAST_RESORT_DELAY":       "1m",

		"TRANSFER_MAX_FILE_SIZE":    "1048576",
		"TRANSFER_INLINE_THRESHOLD": "4096",
		"TRANSFER_PREVIEW_MAX_SIDE": "160",
		"TRANSFER_PREVIEW_QUALITY":  "70",

		"WORKERS_PROBE_INTERVAL": "10s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "alice", cfg.App.Username)
	assert.Equal(t, "secret", cfg.App.Password)
	assert.Equal(t, "/var/log/mop.log", cfg.App.LogFile)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://chat.example.com/api/v1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "wss://chat.example.com/ws", cfg.Adapter.WSAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3*time.Minute, cfg.Adapter.UploadTimeout)

	assert.Equal(t, "/var/lib/mop/cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/mop/session.db", cfg.Storage.SessionFile)

	assert.Equal(t, 4*time.Minute, cfg.Session.RefreshInterval)
	assert.Equal(t, 90*time.Second, cfg.Session.ExpiryBuffer)

	assert.Equal(t, 20*time.Second, cfg.Realtime.HeartbeatInterval)
	assert.Equal(t, time.Minute, cfg.Realtime.ServerIdleTimeout)
	assert.Equal(t, 2*time.Second, cfg.Realtime.ServerDisconnectDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Realtime.BackoffBase)
	assert.Equal(t, 8*time.Second, cfg.Realtime.BackoffCap)
	assert.Equal(t, 6, cfg.Realtime.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Realtime.LastResortDelay)

	assert.Equal(t, int64(1048576), cfg.Transfer.MaxFileSize)
	assert.Equal(t, int64(4096), cfg.Transfer.InlineThreshold)
	assert.Equal(t, 160, cfg.Transfer.PreviewMaxSide)
	assert.Equal(t, 70, cfg.Transfer.PreviewQuality)

	assert.Equal(t, 10*time.Second, cfg.Workers.ProbeInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_HTTP_ADDRESS": "http://10.0.0.2:8000/api/v1",
		"STORAGE_DB_DSN":       "cache.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.2:8000/api/v1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)

	assert.Empty(t, cfg.Adapter.WSAddress)
	assert.Empty(t, cfg.Storage.SessionFile)
	assert.Zero(t, cfg.Realtime.MaxAttempts)
	assert.Zero(t, cfg.Session.RefreshInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cfg.JSONFilePath)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Transfer.MaxFileSize)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"REALTIME_HEARTBEAT_INTERVAL": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidInteger(t *testing.T) {
	setEnvVars(t, map[string]string{
		"TRANSFER_MAX_FILE_SIZE": "200MB",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

func TestParseEnv_ByteSizeSuffix(t *testing.T) {
	setEnvVars(t, map[string]string{
		"TRANSFER_MAX_FILE_SIZE":    "10MB",
		"TRANSFER_INLINE_THRESHOLD": "512kb",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, int64(10<<20), cfg.Transfer.MaxFileSize)
	assert.Equal(t, int64(512<<10), cfg.Transfer.InlineThreshold)
}

func TestParseEnv_InvalidByteSize(t *testing.T) {
	setEnvVars(t, map[string]string{"TRANSFER_MAX_FILE_SIZE": "ten megs"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1048576", want: 1048576},
		{in: "4096B", want: 4096},
		{in: " 2 KB ", want: 2048},
		{in: "1gb", want: 1 << 30},
		{in: "-1", wantErr: true},
		{in: "MB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseByteSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_USERNAME",
		"APP_PASSWORD",
		"APP_LOG_FILE",
		"APP_VERSION",

		"ADAPTER_HTTP_ADDRESS",
		"ADAPTER_WS_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_UPLOAD_TIMEOUT",

		"STORAGE_DB_DSN",
		"STORAGE_SESSION_FILE",

		"SESSION_REFRESH_INTERVAL",
		"SESSION_EXPIRY_BUFFER",

		"REALTIME_HEARTBEAT_INTERVAL",
		"REALTIME_SERVER_IDLE_TIMEOUT",
		"REALTIME_SERVER_DISCONNECT_DELAY",
		"REALTIME_BACKOFF_BASE",
		"REALTIME_BACKOFF_CAP",
		"REALTIME_MAX_ATTEMPTS",
		"REALTIME_LAST_RESORT_DELAY",

		"TRANSFER_MAX_FILE_SIZE",
		"TRANSFER_INLINE_THRESHOLD",
		"TRANSFER_PREVIEW_MAX_SIDE",
		"TRANSFER_PREVIEW_QUALITY",

		"WORKERS_PROBE_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
