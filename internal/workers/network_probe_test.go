package workers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toggleDialer fails while down is set.
type toggleDialer struct {
	down atomic.Bool
}

func (d *toggleDialer) dial(context.Context, string, string) (net.Conn, error) {
	if d.down.Load() {
		return nil, errors.New("connect: network is unreachable")
	}
	client, server := net.Pipe()
	_ = server.Close()
	return client, nil
}

func newTestProbe(t *testing.T, onOnline func(context.Context) error) (*NetworkProbe, *toggleDialer) {
	t.Helper()
	p, err := NewNetworkProbe("http://127.0.0.1:8000/api/v1", time.Second, onOnline, logger.Nop())
	require.NoError(t, err)

	d := &toggleDialer{}
	p.dial = d.dial
	return p, d
}

// ── check ────────────────────────────────────────────────────────────────────

func TestNetworkProbe_CallsOnOnlineOnlyOnRecovery(t *testing.T) {
	var calls atomic.Int32
	p, d := newTestProbe(t, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	ctx := context.Background()

	// изначально сервер считается доступным
	p.check(ctx)
	assert.True(t, p.Reachable())
	assert.Zero(t, calls.Load())

	d.down.Store(true)
	p.check(ctx)
	p.check(ctx)
	assert.False(t, p.Reachable())
	assert.Zero(t, calls.Load())

	d.down.Store(false)
	p.check(ctx)
	assert.True(t, p.Reachable())
	assert.Equal(t, int32(1), calls.Load())

	p.check(ctx)
	assert.Equal(t, int32(1), calls.Load(), "повторный вызов только после нового падения")
}

func TestNetworkProbe_OnOnlineErrorIsNotFatal(t *testing.T) {
	p, d := newTestProbe(t, func(context.Context) error { return errors.New("still expired") })

	d.down.Store(true)
	p.check(context.Background())
	d.down.Store(false)

	assert.NotPanics(t, func() { p.check(context.Background()) })
	assert.True(t, p.Reachable())
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestNetworkProbe_Run_DialsRealServerAndStops(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()

	p, err := NewNetworkProbe(srv.URL, 10*time.Millisecond, func(context.Context) error { return nil }, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	p.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	assert.True(t, p.Reachable())

	cancel()
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("probe did not stop after cancel")
	}
}

// ── probeAddress ─────────────────────────────────────────────────────────────

func TestProbeAddress(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "http://localhost:8000/api/v1", want: "localhost:8000"},
		{url: "https://chat.example.com/api/v1", want: "chat.example.com:443"},
		{url: "http://10.0.0.5/api/v1", want: "10.0.0.5:80"},
		{url: "wss://chat.example.com/ws", want: "chat.example.com:443"},
		{url: "/api/v1", wantErr: true},
		{url: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := probeAddress(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
