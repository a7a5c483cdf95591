package realtime

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

type websocketDialer struct {
	dialer *websocket.Dialer
}

// NewWebsocketDialer returns a [Dialer] backed by gorilla/websocket. The
// token travels in the Authorization header of the upgrade request only.
func NewWebsocketDialer(handshakeTimeout time.Duration) Dialer {
	return &websocketDialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

func (d *websocketDialer) Dial(ctx context.Context, url, token string) (Conn, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	ws, resp, err := d.dialer.DialContext(ctx, url, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("error dialing %s: %s: %w", url, resp.Status, err)
		}
		return nil, fmt.Errorf("error dialing %s: %w", url, err)
	}

	return &websocketConn{ws: ws}, nil
}

type websocketConn struct {
	ws *websocket.Conn

	writeMu sync.Mutex
	closed  sync.Once
}

func (c *websocketConn) Read() ([]byte, error) {
	for {
		msgType, data, err := c.ws.ReadMessage()
		if err != nil {
			// 1006 is synthesised locally when the TCP stream ends without a
			// close frame.
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Code != websocket.CloseAbnormalClosure {
				return nil, fmt.Errorf("%w: %w", ErrServerClosed, err)
			}
			return nil, err
		}
		if msgType == websocket.TextMessage {
			return data, nil
		}
	}
}

func (c *websocketConn) Write(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Close says goodbye with a normal-closure frame before dropping the socket.
func (c *websocketConn) Close() error {
	var err error
	c.closed.Do(func() {
		c.writeMu.Lock()
		_ = c.ws.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "io client disconnect"),
			time.Now().Add(time.Second),
		)
		c.writeMu.Unlock()
		err = c.ws.Close()
	})
	return err
}
