package realtime

import "errors"

var (
	// ErrTransportUnavailable is returned by [Channel.Emit] while no
	// connection is open.
	ErrTransportUnavailable = errors.New("realtime transport unavailable")
	// ErrServerClosed is reported by a [Conn] when the peer sent a close
	// frame.
	ErrServerClosed = errors.New("connection closed by server")
	// ErrPingTimeout ends a connection that stopped answering heartbeats.
	ErrPingTimeout = errors.New("ping timeout")
	// ErrUnknownEvent is returned by the decoder for frames it has no type for.
	ErrUnknownEvent = errors.New("unknown realtime event")
)
