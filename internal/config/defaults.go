package config

import "time"

// Defaults applied when no source sets a value.
const (
	DefaultHTTPAddress    = "http://localhost:8000/api/v1"
	DefaultWSAddress      = "ws://localhost:8000/ws"
	DefaultRequestTimeout = 15 * time.Second
	DefaultUploadTimeout  = 2 * time.Minute

	DefaultDBDSN       = "mop-cache.db"
	DefaultSessionFile = "mop-session.db"

	DefaultRefreshInterval = 5 * time.Minute
	DefaultExpiryBuffer    = 2 * time.Minute

	DefaultHeartbeatInterval     = 25 * time.Second
	DefaultServerIdleTimeout     = 30 * time.Second
	DefaultServerDisconnectDelay = 3 * time.Second
	DefaultBackoffBase           = time.Second
	DefaultBackoffCap            = 10 * time.Second
	DefaultMaxAttempts           = 5
	DefaultLastResortDelay       = 30 * time.Second

	DefaultMaxFileSize     int64 = 200 * 1024 * 1024
	DefaultInlineThreshold int64 = 4 * 1024 * 1024
	DefaultPreviewMaxSide        = 200
	DefaultPreviewQuality        = 80

	DefaultProbeInterval = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			WSAddress:      DefaultWSAddress,
			RequestTimeout: DefaultRequestTimeout,
			UploadTimeout:  DefaultUploadTimeout,
		},
		Storage: Storage{
			DB:          DB{DSN: DefaultDBDSN},
			SessionFile: DefaultSessionFile,
		},
		Session: Session{
			RefreshInterval: DefaultRefreshInterval,
			ExpiryBuffer:    DefaultExpiryBuffer,
		},
		Realtime: Realtime{
			HeartbeatInterval:     DefaultHeartbeatInterval,
			ServerIdleTimeout:     DefaultServerIdleTimeout,
			ServerDisconnectDelay: DefaultServerDisconnectDelay,
			BackoffBase:           DefaultBackoffBase,
			BackoffCap:            DefaultBackoffCap,
			MaxAttempts:           DefaultMaxAttempts,
			LastResortDelay:       DefaultLastResortDelay,
		},
		Transfer: Transfer{
			MaxFileSize:     DefaultMaxFileSize,
			InlineThreshold: DefaultInlineThreshold,
			PreviewMaxSide:  DefaultPreviewMaxSide,
			PreviewQuality:  DefaultPreviewQuality,
		},
		Workers: Workers{
			ProbeInterval: DefaultProbeInterval,
		},
	}
}
