package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string durations ("30s", "5m").
type StructuredJSONConfig struct {
	App struct {
		Username string `json:"username"`
		Password string `json:"password"`
		LogFile  string `json:"log_file"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		WSAddress      string   `json:"ws_address"`
		RequestTimeout Duration `json:"request_timeout"`
		UploadTimeout  Duration `json:"upload_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		SessionFile string `json:"session_file"`
	} `json:"storage,omitempty"`

	Session struct {
		RefreshInterval Duration `json:"refresh_interval"`
		ExpiryBuffer    Duration `json:"expiry_buffer"`
	} `json:"session,omitempty"`

	Realtime struct {
		HeartbeatInterval     Duration `json:"heartbeat_interval"`
		ServerIdleTimeout     Duration `json:"server_idle_timeout"`
		ServerDisconnectDelay Duration `json:"server_disconnect_delay"`
		BackoffBase           Duration `json:"backoff_base"`
		BackoffCap            Duration `json:"backoff_cap"`
		MaxAttempts           int      `json:"max_attempts"`
		LastResortDelay       Duration `json:"last_resort_delay"`
	} `json:"realtime,omitempty"`

	Transfer struct {
		MaxFileSize     int64 `json:"max_file_size"`
		InlineThreshold int64 `json:"inline_threshold"`
		PreviewMaxSide  int   `json:"preview_max_side"`
		PreviewQuality  int   `json:"preview_quality"`
	} `json:"transfer,omitempty"`

	Workers struct {
		ProbeInterval Duration `json:"probe_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Username: jsonCfg.App.Username,
			Password: jsonCfg.App.Password,
			LogFile:  jsonCfg.App.LogFile,
			Version:  jsonCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			WSAddress:      jsonCfg.Adapter.WSAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			UploadTimeout:  time.Duration(jsonCfg.Adapter.UploadTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			SessionFile: jsonCfg.Storage.SessionFile,
		},
		Session: Session{
			RefreshInterval: time.Duration(jsonCfg.Session.RefreshInterval),
			ExpiryBuffer:    time.Duration(jsonCfg.Session.ExpiryBuffer),
		},
		Realtime: Realtime{
			HeartbeatInterval:     time.Duration(jsonCfg.Realtime.HeartbeatInterval),
			ServerIdleTimeout:     time.Duration(jsonCfg.Realtime.ServerIdleTimeout),
			ServerDisconnectDelay: time.Duration(jsonCfg.Realtime.ServerDisconnectDelay),
			BackoffBase:           time.Duration(jsonCfg.Realtime.BackoffBase),
			BackoffCap:            time.Duration(jsonCfg.Realtime.BackoffCap),
			MaxAttempts:           jsonCfg.Realtime.MaxAttempts,
			LastResortDelay:       time.Duration(jsonCfg.Realtime.LastResortDelay),
		},
		Transfer: Transfer{
			MaxFileSize:     jsonCfg.Transfer.MaxFileSize,
			InlineThreshold: jsonCfg.Transfer.InlineThreshold,
			PreviewMaxSide:  jsonCfg.Transfer.PreviewMaxSide,
			PreviewQuality:  jsonCfg.Transfer.PreviewQuality,
		},
		Workers: Workers{
			ProbeInterval: time.Duration(jsonCfg.Workers.ProbeInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
