package realtime

import "context"

// TokenSource hands out an access token that is valid for at least the
// connection handshake.
type TokenSource interface {
	EnsureToken(ctx context.Context) (string, error)
}

// Conn is one established websocket connection. Read blocks until a text
// frame arrives; it returns [ErrServerClosed] (wrapped) once the server
// closed the connection. Write is safe for concurrent use.
type Conn interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Close() error
}

// Dialer opens a [Conn] to url authenticated with token.
type Dialer interface {
	Dial(ctx context.Context, url, token string) (Conn, error)
}
