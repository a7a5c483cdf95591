package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"username": "alice",
			"log_file": "/var/log/mop.log",
			"version": "1.0.0"
		},
		"adapter": {
			"http_address": "https://chat.example.com/api/v1",
			"ws_address": "wss://chat.example.com/ws",
			"request_timeout": "30s",
			"upload_timeout": "5m"
		},
		"storage": {
			"db": { "dsn": "/var/lib/mop/cache.db" },
			"session_file": "/var/lib/mop/session.db"
		},
		"session": {
			"refresh_interval": "5m",
			"expiry_buffer": "2m"
		},
		"realtime": {
			"heartbeat_interval": "25s",
			"server_idle_timeout": "30s",
			"server_disconnect_delay": "3s",
			"backoff_base": "1s",
			"backoff_cap": "10s",
			"max_attempts": 5,
			"last_resort_delay": "30s"
		},
		"transfer": {
			"max_file_size": 209715200,
			"inline_threshold": 4194304,
			"preview_max_side": 200,
			"preview_quality": 80
		},
		"workers": {
			"probe_interval": "15s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "alice", cfg.App.Username)
	assert.Equal(t, "/var/log/mop.log", cfg.App.LogFile)
	assert.Equal(t, "1.0.0", cfg.App.Version)

	assert.Equal(t, "https://chat.example.com/api/v1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "wss://chat.example.com/ws", cfg.Adapter.WSAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Adapter.UploadTimeout)

	assert.Equal(t, "/var/lib/mop/cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/mop/session.db", cfg.Storage.SessionFile)

	assert.Equal(t, 5*time.Minute, cfg.Session.RefreshInterval)
	assert.Equal(t, 2*time.Minute, cfg.Session.ExpiryBuffer)

	assert.Equal(t, 25*time.Second, cfg.Realtime.HeartbeatInterval)
	assert.Equal(t, 30*time.Second, cfg.Realtime.ServerIdleTimeout)
	assert.Equal(t, 3*time.Second, cfg.Realtime.ServerDisconnectDelay)
	assert.Equal(t, time.Second, cfg.Realtime.BackoffBase)
	assert.Equal(t, 10*time.Second, cfg.Realtime.BackoffCap)
	assert.Equal(t, 5, cfg.Realtime.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Realtime.LastResortDelay)

	assert.Equal(t, int64(209715200), cfg.Transfer.MaxFileSize)
	assert.Equal(t, int64(4194304), cfg.Transfer.InlineThreshold)
	assert.Equal(t, 200, cfg.Transfer.PreviewMaxSide)
	assert.Equal(t, 80, cfg.Transfer.PreviewQuality)

	assert.Equal(t, 15*time.Second, cfg.Workers.ProbeInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"realtime": { "backoff_cap": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")

	// числа трактуются как наносекунды
	jsonBody := `{ "session": { "expiry_buffer": 1000000000 } }`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Session.ExpiryBuffer)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"adapter": { "http_address": "http://127.0.0.1:8000/api/v1" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://127.0.0.1:8000/api/v1", cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Adapter.WSAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Realtime{}, cfg.Realtime)
}
