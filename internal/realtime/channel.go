package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

// Scheduler runs fn once after d and returns a function that cancels it.
type Scheduler func(d time.Duration, fn func()) (cancel func())

func afterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Option customises a [Channel].
type Option func(*Channel)

// WithDialer replaces the gorilla/websocket dialer.
func WithDialer(d Dialer) Option {
	return func(c *Channel) { c.dialer = d }
}

// WithScheduler replaces time.AfterFunc for reconnects and heartbeats.
func WithScheduler(s Scheduler) Option {
	return func(c *Channel) { c.schedule = s }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Channel) { c.now = now }
}

// Channel is the client end of the realtime connection.
type Channel struct {
	url    string
	cfg    config.ClientRealtime
	tokens TokenSource
	dialer Dialer
	logger *logger.Logger

	schedule Scheduler
	now      func() time.Time

	mu            sync.Mutex
	state         models.ConnectionState
	conn          Conn
	generation    uint64
	attempt       int
	lastResort    bool
	lastHeartbeat time.Time
	cancelRetry   func()
	cancelBeat    func()

	subsMu  sync.RWMutex
	subs    map[int]func(models.Event)
	nextSub int
}

// NewChannel creates a disconnected channel for the websocket endpoint url.
func NewChannel(cfg config.ClientRealtime, url string, tokens TokenSource, logger *logger.Logger, opts ...Option) *Channel {
	c := &Channel{
		url:      url,
		cfg:      cfg,
		tokens:   tokens,
		dialer:   NewWebsocketDialer(cfg.ServerIdleTimeout),
		logger:   logger,
		schedule: afterFunc,
		now:      time.Now,
		subs:     make(map[int]func(models.Event)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn for every inbound event and every connection state
// change. fn runs on the channel's goroutines and must not block.
func (c *Channel) Subscribe(fn func(models.Event)) (unsubscribe func()) {
	c.subsMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subsMu.Unlock()

	return func() {
		c.subsMu.Lock()
		delete(c.subs, id)
		c.subsMu.Unlock()
	}
}

func (c *Channel) publish(ev models.Event) {
	c.subsMu.RLock()
	subs := make([]func(models.Event), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.subsMu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}

// State returns the current connection state.
func (c *Channel) State() models.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Attempt returns the number of consecutive failed reconnects.
func (c *Channel) Attempt() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempt
}

// LastHeartbeat returns when the server was last heard from.
func (c *Channel) LastHeartbeat() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastHeartbeat
}

// Connect opens the connection unless one is already open or being opened.
// A failed dial schedules a reconnect and is also returned to the caller.
func (c *Channel) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state != models.Disconnected {
		c.mu.Unlock()
		return nil
	}
	gen := c.beginLocked()
	attempt := c.attempt
	c.mu.Unlock()

	c.publish(models.ConnectionEvent{State: models.Connecting, Attempt: attempt})
	return c.dial(ctx, gen)
}

// Reconnect is the manual trigger: it forgets earlier failures and connects
// if not connected.
func (c *Channel) Reconnect(ctx context.Context) error {
	c.mu.Lock()
	c.attempt = 0
	c.lastResort = false
	c.cancelRetryLocked()
	c.mu.Unlock()

	return c.Connect(ctx)
}

// Disconnect closes the connection on the client's initiative. No reconnect
// follows.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	wasDisconnected := c.state == models.Disconnected && c.cancelRetry == nil
	conn := c.closeLocked()
	c.mu.Unlock()
	c.closeConn(conn)

	if !wasDisconnected {
		c.publish(models.ConnectionEvent{State: models.Disconnected, Reason: models.CloseClientInitiated})
	}
}

// RenewToken replaces a live connection with one authenticated by a fresh
// token. It does nothing while disconnected.
func (c *Channel) RenewToken(ctx context.Context) error {
	c.mu.Lock()
	if c.state == models.Disconnected {
		c.mu.Unlock()
		return nil
	}
	conn := c.closeLocked()
	c.mu.Unlock()
	c.closeConn(conn)

	c.logger.Debug().Msg("renewing realtime connection token")
	c.publish(models.ConnectionEvent{State: models.Disconnected, Reason: models.CloseClientInitiated})

	return c.Connect(ctx)
}

// Emit sends one outbound event.
func (c *Channel) Emit(ctx context.Context, event string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	conn := c.conn
	connected := c.state == models.Connected
	c.mu.Unlock()

	if !connected || conn == nil {
		return ErrTransportUnavailable
	}

	data, err := encodeFrame(event, payload)
	if err != nil {
		return err
	}
	if err = conn.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrTransportUnavailable, err)
	}
	return nil
}

// beginLocked starts a new connection generation. Anything still running for
// an older generation becomes stale.
func (c *Channel) beginLocked() uint64 {
	c.cancelRetryLocked()
	c.generation++
	c.state = models.Connecting
	return c.generation
}

func (c *Channel) dial(ctx context.Context, gen uint64) error {
	token, err := c.tokens.EnsureToken(ctx)
	if err != nil {
		c.mu.Lock()
		if gen == c.generation {
			c.state = models.Disconnected
		}
		c.mu.Unlock()

		c.logger.Warn().Err(err).Msg("realtime connect skipped: no valid token")
		c.publish(models.ConnectionEvent{State: models.Disconnected, Err: err})
		return fmt.Errorf("error obtaining token: %w", err)
	}

	conn, err := c.dialer.Dial(ctx, c.url, token)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		return nil
	}
	if err != nil {
		c.state = models.Disconnected
		ev := c.scheduleReconnectLocked(models.CloseNetworkOrOther, err)
		c.mu.Unlock()

		c.logger.Warn().Err(err).Int("attempt", ev.Attempt).Dur("delay", ev.Delay).Msg("realtime dial failed")
		c.publish(ev)
		return fmt.Errorf("error connecting realtime channel: %w", err)
	}

	c.conn = conn
	c.state = models.Connected
	c.attempt = 0
	c.lastResort = false
	c.lastHeartbeat = c.now()
	c.scheduleHeartbeatLocked(gen)
	c.mu.Unlock()

	c.logger.Info().Str("url", c.url).Msg("realtime channel connected")
	c.publish(models.ConnectionEvent{State: models.Connected})

	go c.readLoop(gen, conn)
	return nil
}

func (c *Channel) readLoop(gen uint64, conn Conn) {
	for {
		data, err := conn.Read()
		if err != nil {
			c.lost(gen, classifyClose(err), err)
			return
		}

		ev, err := decodeFrame(data)
		if err != nil {
			c.logger.Debug().Err(err).Msg("dropping realtime frame")
			continue
		}
		if ev == nil {
			continue
		}

		if _, ok := ev.(models.PongEvent); ok {
			c.mu.Lock()
			if gen == c.generation {
				c.lastHeartbeat = c.now()
			}
			c.mu.Unlock()
		}

		c.publish(ev)
	}
}

// lost handles the end of connection gen that the client did not ask for.
func (c *Channel) lost(gen uint64, reason models.CloseReason, cause error) {
	c.mu.Lock()
	if gen != c.generation || c.state != models.Connected {
		c.mu.Unlock()
		return
	}
	conn := c.teardownLocked()

	var ev models.ConnectionEvent
	if reason == models.CloseServerInitiated {
		delay := c.cfg.ServerDisconnectDelay
		c.cancelRetry = c.schedule(delay, func() { c.retry(gen) })
		ev = models.ConnectionEvent{State: models.Disconnected, Reason: reason, Attempt: 1, Delay: delay, Err: cause}
	} else {
		ev = c.scheduleReconnectLocked(reason, cause)
	}
	c.mu.Unlock()
	c.closeConn(conn)

	c.logger.Warn().Err(cause).Str("reason", reason.String()).Dur("delay", ev.Delay).Msg("realtime connection lost")
	c.publish(ev)
}

// scheduleReconnectLocked books the next backoff retry, or the last-resort
// retry once MaxAttempts is exhausted.
func (c *Channel) scheduleReconnectLocked(reason models.CloseReason, cause error) models.ConnectionEvent {
	gen := c.generation
	ev := models.ConnectionEvent{State: models.Disconnected, Reason: reason, Err: cause}

	if c.attempt >= c.cfg.MaxAttempts {
		ev.GaveUp = true
		ev.Attempt = c.attempt
		if c.lastResort {
			return ev
		}
		c.lastResort = true
		ev.Delay = c.cfg.LastResortDelay
		c.cancelRetry = c.schedule(ev.Delay, func() { c.retry(gen) })
		return ev
	}

	c.attempt++
	ev.Attempt = c.attempt
	ev.Delay = backoffDelay(c.attempt, c.cfg.BackoffBase, c.cfg.BackoffCap)
	c.cancelRetry = c.schedule(ev.Delay, func() { c.retry(gen) })
	return ev
}

func (c *Channel) retry(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.state != models.Disconnected {
		c.mu.Unlock()
		return
	}
	c.cancelRetry = nil
	next := c.beginLocked()
	attempt := c.attempt
	c.mu.Unlock()

	c.publish(models.ConnectionEvent{State: models.Connecting, Attempt: attempt})
	_ = c.dial(context.Background(), next)
}

func (c *Channel) scheduleHeartbeatLocked(gen uint64) {
	c.cancelBeat = c.schedule(c.cfg.HeartbeatInterval, func() { c.heartbeat(gen) })
}

func (c *Channel) heartbeat(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.state != models.Connected {
		c.mu.Unlock()
		return
	}
	silence := c.now().Sub(c.lastHeartbeat)
	conn := c.conn
	c.mu.Unlock()

	if silence > c.cfg.HeartbeatInterval+c.cfg.ServerIdleTimeout {
		c.lost(gen, models.CloseNetworkOrOther, ErrPingTimeout)
		return
	}

	data, err := encodeFrame(models.EventPing, models.PingFrame{Timestamp: c.now().UnixMilli()})
	if err == nil {
		err = conn.Write(data)
	}
	if err != nil {
		c.lost(gen, models.CloseNetworkOrOther, err)
		return
	}

	c.mu.Lock()
	if gen == c.generation && c.state == models.Connected {
		c.scheduleHeartbeatLocked(gen)
	}
	c.mu.Unlock()
}

// closeLocked ends the current generation on the client's initiative. The
// detached connection must be passed to closeConn after c.mu is released.
func (c *Channel) closeLocked() Conn {
	c.cancelRetryLocked()
	c.generation++
	return c.teardownLocked()
}

// teardownLocked detaches the current connection without closing it: Close
// may block on a stuck write.
func (c *Channel) teardownLocked() Conn {
	if c.cancelBeat != nil {
		c.cancelBeat()
		c.cancelBeat = nil
	}
	conn := c.conn
	c.conn = nil
	c.state = models.Disconnected
	return conn
}

func (c *Channel) closeConn(conn Conn) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil && !errors.Is(err, ErrServerClosed) {
		c.logger.Debug().Err(err).Msg("error closing realtime connection")
	}
}

func (c *Channel) cancelRetryLocked() {
	if c.cancelRetry != nil {
		c.cancelRetry()
		c.cancelRetry = nil
	}
}
