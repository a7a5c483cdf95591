package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
	"github.com/stretchr/testify/require"
)

var errConnClosed = errors.New("use of closed network connection")

// ── fakeConn ────────────────────────────────────────────────────────────────

type fakeConn struct {
	in     chan []byte
	errs   chan error
	closed chan struct{}
	once   sync.Once

	mu      sync.Mutex
	written [][]byte
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		in:     make(chan []byte, 8),
		errs:   make(chan error, 1),
		closed: make(chan struct{}),
	}
}

func (c *fakeConn) Read() ([]byte, error) {
	select {
	case data := <-c.in:
		return data, nil
	case err := <-c.errs:
		return nil, err
	case <-c.closed:
		return nil, errConnClosed
	}
}

func (c *fakeConn) Write(data []byte) error {
	select {
	case <-c.closed:
		return errConnClosed
	default:
	}
	c.mu.Lock()
	c.written = append(c.written, data)
	c.mu.Unlock()
	return nil
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *fakeConn) frames() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.written...)
}

// ── fakeDialer ──────────────────────────────────────────────────────────────

type dialResult struct {
	conn *fakeConn
	err  error
}

type fakeDialer struct {
	mu      sync.Mutex
	results []dialResult
	failAll error
	tokens  []string
	conns   []*fakeConn
}

func (d *fakeDialer) Dial(_ context.Context, _ string, token string) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.tokens = append(d.tokens, token)
	if d.failAll != nil {
		return nil, d.failAll
	}

	res := dialResult{conn: newFakeConn()}
	if len(d.results) > 0 {
		res = d.results[0]
		d.results = d.results[1:]
	}
	if res.err != nil {
		return nil, res.err
	}
	d.conns = append(d.conns, res.conn)
	return res.conn, nil
}

func (d *fakeDialer) conn(i int) *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conns[i]
}

func (d *fakeDialer) dialCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tokens)
}

// ── fakeScheduler ───────────────────────────────────────────────────────────

type timerEntry struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

type fakeScheduler struct {
	mu      sync.Mutex
	entries []*timerEntry
}

func (s *fakeScheduler) schedule(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &timerEntry{delay: d, fn: fn}
	s.entries = append(s.entries, e)
	return func() {
		s.mu.Lock()
		e.cancelled = true
		s.mu.Unlock()
	}
}

// fire runs the oldest live timer booked with delay d.
func (s *fakeScheduler) fire(t *testing.T, d time.Duration) {
	t.Helper()

	s.mu.Lock()
	var found *timerEntry
	for _, e := range s.entries {
		if e.delay == d && !e.cancelled && !e.fired {
			found = e
			break
		}
	}
	if found != nil {
		found.fired = true
	}
	s.mu.Unlock()

	require.NotNil(t, found, "no pending timer with delay %s", d)
	found.fn()
}

func (s *fakeScheduler) pending(d time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.entries {
		if e.delay == d && !e.cancelled && !e.fired {
			n++
		}
	}
	return n
}

func (s *fakeScheduler) pendingExcept(d time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.entries {
		if e.delay != d && !e.cancelled && !e.fired {
			n++
		}
	}
	return n
}

// ── tokens / clock / events ─────────────────────────────────────────────────

type staticTokens struct {
	mu    sync.Mutex
	token string
	err   error
}

func (s *staticTokens) EnsureToken(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.err
}

func (s *staticTokens) set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type eventLog struct {
	mu     sync.Mutex
	events []models.Event
}

func (l *eventLog) add(ev models.Event) {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
}

func (l *eventLog) connectionEvents() []models.ConnectionEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.ConnectionEvent
	for _, ev := range l.events {
		if ce, ok := ev.(models.ConnectionEvent); ok {
			out = append(out, ce)
		}
	}
	return out
}

func (l *eventLog) disconnects() []models.ConnectionEvent {
	var out []models.ConnectionEvent
	for _, ev := range l.connectionEvents() {
		if ev.State == models.Disconnected {
			out = append(out, ev)
		}
	}
	return out
}

func (l *eventLog) all() []models.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Event(nil), l.events...)
}

// ── harness ─────────────────────────────────────────────────────────────────

func testRealtimeConfig() config.ClientRealtime {
	return config.ClientRealtime{
		HeartbeatInterval:     25 * time.Second,
		ServerIdleTimeout:     30 * time.Second,
		ServerDisconnectDelay: 3 * time.Second,
		BackoffBase:           time.Second,
		BackoffCap:            10 * time.Second,
		MaxAttempts:           5,
		LastResortDelay:       30 * time.Second,
	}
}

type harness struct {
	ch     *Channel
	dialer *fakeDialer
	sched  *fakeScheduler
	clock  *fakeClock
	tokens *staticTokens
	events *eventLog
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		dialer: &fakeDialer{},
		sched:  &fakeScheduler{},
		clock:  &fakeClock{now: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)},
		tokens: &staticTokens{token: "t1"},
		events: &eventLog{},
	}
	h.ch = NewChannel(testRealtimeConfig(), "ws://chat.local/ws", h.tokens, logger.Nop(),
		WithDialer(h.dialer),
		WithScheduler(h.sched.schedule),
		WithClock(h.clock.Now),
	)
	h.ch.Subscribe(h.events.add)
	t.Cleanup(h.ch.Disconnect)
	return h
}
