// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
)

const maxProbeTimeout = 5 * time.Second

// NetworkProbe periodically opens a TCP connection to the API host and calls
// onOnline when the host becomes reachable again after being unreachable.
type NetworkProbe struct {
	address  string
	interval time.Duration
	onOnline func(ctx context.Context) error
	logger   *logger.Logger

	dial func(ctx context.Context, network, address string) (net.Conn, error)

	mu        sync.Mutex
	reachable bool
	done      chan struct{}
}

// NewNetworkProbe creates a probe for the host of apiURL. The host is assumed
// reachable until a probe says otherwise.
func NewNetworkProbe(apiURL string, interval time.Duration, onOnline func(ctx context.Context) error, logger *logger.Logger) (*NetworkProbe, error) {
	address, err := probeAddress(apiURL)
	if err != nil {
		return nil, err
	}

	dialer := &net.Dialer{Timeout: min(interval, maxProbeTimeout)}

	return &NetworkProbe{
		address:   address,
		interval:  interval,
		onOnline:  onOnline,
		logger:    logger,
		dial:      dialer.DialContext,
		reachable: true,
		done:      make(chan struct{}),
	}, nil
}

// Run starts probing every interval until ctx is cancelled.
func (p *NetworkProbe) Run(ctx context.Context) {
	go func() {
		defer close(p.done)

		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				p.check(ctx)
			}
		}
	}()
}

// Done is closed once the probing goroutine has exited.
func (p *NetworkProbe) Done() <-chan struct{} {
	return p.done
}

// Reachable reports the outcome of the last probe.
func (p *NetworkProbe) Reachable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reachable
}

func (p *NetworkProbe) check(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, min(p.interval, maxProbeTimeout))
	conn, err := p.dial(probeCtx, "tcp", p.address)
	cancel()
	if err == nil {
		_ = conn.Close()
	}
	reachable := err == nil

	p.mu.Lock()
	wasReachable := p.reachable
	p.reachable = reachable
	p.mu.Unlock()

	switch {
	case wasReachable && !reachable:
		p.logger.Warn().Err(err).Str("address", p.address).Msg("server unreachable")
	case !wasReachable && reachable:
		p.logger.Info().Str("address", p.address).Msg("server reachable again")
		if err = p.onOnline(ctx); err != nil {
			p.logger.Warn().Err(err).Msg("resume after reconnect failed")
		}
	}
}

// probeAddress turns an API root URL into the host:port to dial.
func probeAddress(apiURL string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("error parsing api url: %w", err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("api url %q has no host", apiURL)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https", "wss":
			port = "443"
		default:
			port = "80"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
