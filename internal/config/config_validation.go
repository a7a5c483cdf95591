// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the client view. The merged [StructuredConfig] itself is
// not validated: a partial source is only checked once projected here.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") || cfg.Storage.SessionFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.WSAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.RefreshInterval <= 0 || cfg.Session.ExpiryBuffer <= 0 {
		return ErrInvalidSessionConfigs
	}

	r := cfg.Realtime
	if r.HeartbeatInterval <= 0 || r.BackoffBase <= 0 || r.BackoffCap < r.BackoffBase || r.MaxAttempts <= 0 {
		return ErrInvalidRealtimeConfigs
	}
	if r.HeartbeatInterval >= r.ServerIdleTimeout {
		return fmt.Errorf("%w: heartbeat %s must be shorter than server idle timeout %s",
			ErrInvalidRealtimeConfigs, r.HeartbeatInterval, r.ServerIdleTimeout)
	}

	t := cfg.Transfer
	if t.MaxFileSize <= 0 || t.InlineThreshold <= 0 || t.PreviewMaxSide <= 0 || t.PreviewQuality < 1 || t.PreviewQuality > 100 {
		return ErrInvalidTransferConfigs
	}

	if cfg.Workers.ProbeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
