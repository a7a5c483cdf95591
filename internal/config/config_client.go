package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Username and Password seed a password login when no session is stored.
	Username string
	Password string
	// LogFile is where log entries go; empty means next to the executable.
	LogFile string
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the REST API root URL.
	HTTPAddress string
	// WSAddress is the realtime endpoint URL.
	WSAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// UploadTimeout bounds multipart uploads.
	UploadTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SessionFile is the bbolt file the session is persisted in.
	SessionFile string
}

// ClientSession holds the token refresh policy.
type ClientSession struct {
	RefreshInterval time.Duration
	ExpiryBuffer    time.Duration
}

// ClientRealtime holds the realtime channel policy.
type ClientRealtime struct {
	HeartbeatInterval     time.Duration
	ServerIdleTimeout     time.Duration
	ServerDisconnectDelay time.Duration
	BackoffBase           time.Duration
	BackoffCap            time.Duration
	MaxAttempts           int
	LastResortDelay       time.Duration
}

// ClientTransfer holds outgoing payload limits.
type ClientTransfer struct {
	MaxFileSize     int64
	InlineThreshold int64
	PreviewMaxSide  int
	PreviewQuality  int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProbeInterval defines how often the network probe runs.
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Adapter  ClientAdapter
	Storage  ClientStorage
	Session  ClientSession
	Realtime ClientRealtime
	Transfer ClientTransfer
	Workers  ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields into
// the client view and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig projects cfg into the client view without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Username: cfg.App.Username,
			Password: cfg.App.Password,
			LogFile:  cfg.App.LogFile,
			Version:  cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			WSAddress:      cfg.Adapter.WSAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UploadTimeout:  cfg.Adapter.UploadTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			SessionFile: cfg.Storage.SessionFile,
		},
		Session: ClientSession{
			RefreshInterval: cfg.Session.RefreshInterval,
			ExpiryBuffer:    cfg.Session.ExpiryBuffer,
		},
		Realtime: ClientRealtime{
			HeartbeatInterval:     cfg.Realtime.HeartbeatInterval,
			ServerIdleTimeout:     cfg.Realtime.ServerIdleTimeout,
			ServerDisconnectDelay: cfg.Realtime.ServerDisconnectDelay,
			BackoffBase:           cfg.Realtime.BackoffBase,
			BackoffCap:            cfg.Realtime.BackoffCap,
			MaxAttempts:           cfg.Realtime.MaxAttempts,
			LastResortDelay:       cfg.Realtime.LastResortDelay,
		},
		Transfer: ClientTransfer{
			MaxFileSize:     cfg.Transfer.MaxFileSize,
			InlineThreshold: cfg.Transfer.InlineThreshold,
			PreviewMaxSide:  cfg.Transfer.PreviewMaxSide,
			PreviewQuality:  cfg.Transfer.PreviewQuality,
		},
		Workers: ClientWorkers{ProbeInterval: cfg.Workers.ProbeInterval},
	}
}
