package models

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Session is the credential pair held by the client together with the
// snapshot of the account it belongs to.
//
// ExpiresAt is derived from the access token's "exp" claim and is kept only as
// a convenience; the token itself stays the source of truth.
type Session struct {
	AccessToken  string    `msgpack:"accessToken"`
	RefreshToken string    `msgpack:"refreshToken"`
	ExpiresAt    time.Time `msgpack:"expiresAt"`
	User         User      `msgpack:"user"`
}

// IsZero reports whether no credentials are held.
func (s Session) IsZero() bool {
	return s.AccessToken == "" && s.RefreshToken == ""
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Session) MarshalBinary() ([]byte, error) {
	type alias Session
	return msgpack.Marshal((*alias)(s))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Session) UnmarshalBinary(data []byte) error {
	type alias Session
	return msgpack.Unmarshal(data, (*alias)(s))
}

// SessionEventType discriminates [SessionEvent] values.
type SessionEventType int

const (
	// SessionRefreshed is emitted after both tokens were replaced.
	SessionRefreshed SessionEventType = iota + 1
	// SessionRefreshFailed is emitted once when the session became
	// unrecoverable and was cleared.
	SessionRefreshFailed
)

func (t SessionEventType) String() string {
	switch t {
	case SessionRefreshed:
		return "refreshed"
	case SessionRefreshFailed:
		return "refresh-failed"
	default:
		return "unknown"
	}
}

// SessionEvent notifies subscribers about credential lifecycle changes.
type SessionEvent struct {
	Type        SessionEventType
	AccessToken string
	Err         error
}
