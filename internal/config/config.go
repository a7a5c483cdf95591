// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// messaging client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: login seed, log destination and the
	// application version.
	App App `envPrefix:"APP_"`

	// Adapter holds the server endpoints and outbound request timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache database and the session file locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds the token refresh policy.
	Session Session `envPrefix:"SESSION_"`

	// Realtime holds heartbeat and reconnect policy of the realtime channel.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// Transfer holds size limits and preview settings for outgoing files.
	Transfer Transfer `envPrefix:"TRANSFER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Username and Password seed a password login when no stored session
	// exists. Both are optional.
	// Env: APP_USERNAME, APP_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// LogFile is the path log entries are appended to. Empty means a "logs"
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the server endpoints used by the client.
type Adapter struct {
	// HTTPAddress is the versioned REST API root,
	// e.g. "http://localhost:8000/api/v1".
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// WSAddress is the realtime endpoint, e.g. "ws://localhost:8000/ws".
	// Env: ADAPTER_WS_ADDRESS
	WSAddress string `env:"WS_ADDRESS"`

	// RequestTimeout bounds a single REST request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UploadTimeout bounds a single multipart upload.
	// Env: ADAPTER_UPLOAD_TIMEOUT
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the local cache database settings.
	DB DB `envPrefix:"DB_"`

	// SessionFile is the bbolt file the credential pair is kept in.
	// Env: STORAGE_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// DB holds connection settings for the local cache database.
type DB struct {
	// DSN is the SQLite file path (or DSN) of the message cache.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds the token refresh policy.
type Session struct {
	// RefreshInterval is how often the background job checks the token.
	// Env: SESSION_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// ExpiryBuffer is how long before "exp" a token counts as expiring soon.
	// Env: SESSION_EXPIRY_BUFFER
	ExpiryBuffer time.Duration `env:"EXPIRY_BUFFER"`
}

// Realtime holds the heartbeat and reconnect policy.
type Realtime struct {
	// Env: REALTIME_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`
	// ServerIdleTimeout is the server's own idle timeout. The heartbeat
	// interval must stay below it.
	// Env: REALTIME_SERVER_IDLE_TIMEOUT
	ServerIdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT"`
	// Env: REALTIME_SERVER_DISCONNECT_DELAY
	ServerDisconnectDelay time.Duration `env:"SERVER_DISCONNECT_DELAY"`
	// Env: REALTIME_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`
	// Env: REALTIME_BACKOFF_CAP
	BackoffCap time.Duration `env:"BACKOFF_CAP"`
	// Env: REALTIME_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
	// Env: REALTIME_LAST_RESORT_DELAY
	LastResortDelay time.Duration `env:"LAST_RESORT_DELAY"`
}

// Transfer holds outgoing payload limits.
type Transfer struct {
	// MaxFileSize is the hard cap in bytes; larger payloads are rejected.
	// Env: TRANSFER_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`
	// InlineThreshold is the encoded size in bytes above which a payload
	// that failed to upload is sent as a flagged dump.
	// Env: TRANSFER_INLINE_THRESHOLD
	InlineThreshold int64 `env:"INLINE_THRESHOLD"`
	// Env: TRANSFER_PREVIEW_MAX_SIDE
	PreviewMaxSide int `env:"PREVIEW_MAX_SIDE"`
	// PreviewQuality is the JPEG quality (1..100) of image previews.
	// Env: TRANSFER_PREVIEW_QUALITY
	PreviewQuality int `env:"PREVIEW_QUALITY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ProbeInterval is how often the network probe checks the server.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// GetStructuredConfig loads and merges the client configuration from all
// available sources; [GetClientConfig] validates the result. Sources are
// merged with mergo, which only fills fields that are still zero, so earlier
// sources take precedence:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
