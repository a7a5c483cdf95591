// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Realtime event names as they appear on the wire.
const (
	EventMessage              = "message"
	EventMessageSent          = "message_sent"
	EventNotification         = "notification"
	EventCallInvitation       = "call_invitation"
	EventMessageRead          = "message_read"
	EventMessageReadConfirmed = "message_read_confirmed"
	EventUserStatus           = "user_status"
	EventPong                 = "pong"
	EventConnected            = "connected"
	EventError                = "error"

	EventSendMessage     = "send_message"
	EventMarkMessageRead = "mark_message_read"
	EventPing            = "ping"
)

// Event is the closed set of inbound realtime events. Subscribers switch on
// the concrete type.
type Event interface {
	// EventName returns the wire name of the event.
	EventName() string
	isEvent()
}

// Frame is the envelope every realtime message travels in.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// MessageEvent carries a new message pushed by the server.
type MessageEvent struct {
	Message Message
}

// MessageSentEvent acknowledges a send_message frame.
type MessageSentEvent struct {
	MessageID    int64    `json:"message_id"`
	ClientID     string   `json:"client_id,omitempty"`
	TargetUserID int64    `json:"target_user_id,omitempty"`
	RoomID       int64    `json:"room_id,omitempty"`
	Timestamp    WireTime `json:"timestamp"`
}

// NotificationEvent is a free-form server notification, discriminated by
// Type (friend_request, friend_accepted, ...).
type NotificationEvent struct {
	Type    string          `json:"type"`
	Title   string          `json:"title,omitempty"`
	Content string          `json:"content,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// CallInvitationEvent is an incoming call. The conferencing details are kept
// raw since they belong to an external collaborator.
type CallInvitationEvent struct {
	RoomID        string          `json:"room_id"`
	RoomURL       string          `json:"room_url,omitempty"`
	CallerID      int64           `json:"caller_id"`
	CallerName    string          `json:"caller_name"`
	Timestamp     WireTime        `json:"timestamp"`
	SystemMessage *Message        `json:"system_message,omitempty"`
	Raw           json.RawMessage `json:"-"`
}

// ReadReceiptEvent tells the sender that one of its messages was read.
type ReadReceiptEvent struct {
	MessageID int64    `json:"message_id"`
	ReadBy    int64    `json:"read_by"`
	ReadAt    WireTime `json:"read_at"`
}

// ReadReceiptBatchEvent confirms a mark_message_read frame.
type ReadReceiptBatchEvent struct {
	UpdatedCount int      `json:"updated_count"`
	MessageIDs   []int64  `json:"message_ids"`
	Timestamp    WireTime `json:"timestamp"`
}

// UserStatusEvent reports a contact going on- or offline.
type UserStatusEvent struct {
	UserID    int64    `json:"user_id"`
	IsOnline  bool     `json:"is_online"`
	Timestamp WireTime `json:"timestamp"`
}

// PongEvent answers a heartbeat ping.
type PongEvent struct {
	Timestamp int64 `json:"timestamp"`
}

// ServerErrorEvent is an error reported by the server for a previous frame.
type ServerErrorEvent struct {
	Message string `json:"message"`
}

// ConnectionState is the state of the realtime channel.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

// CloseReason classifies why a realtime connection ended.
type CloseReason int

const (
	CloseNone CloseReason = iota
	CloseServerInitiated
	CloseClientInitiated
	CloseNetworkOrOther
)

func (r CloseReason) String() string {
	switch r {
	case CloseServerInitiated:
		return "io server disconnect"
	case CloseClientInitiated:
		return "io client disconnect"
	case CloseNetworkOrOther:
		return "transport close"
	default:
		return ""
	}
}

// ConnectionEvent reports channel lifecycle changes. Attempt and Delay are set
// while a reconnect is scheduled; GaveUp is set once the backoff is exhausted.
type ConnectionEvent struct {
	State   ConnectionState
	Reason  CloseReason
	Attempt int
	Delay   time.Duration
	GaveUp  bool
	Err     error
}

func (MessageEvent) EventName() string          { return EventMessage }
func (MessageSentEvent) EventName() string      { return EventMessageSent }
func (NotificationEvent) EventName() string     { return EventNotification }
func (CallInvitationEvent) EventName() string   { return EventCallInvitation }
func (ReadReceiptEvent) EventName() string      { return EventMessageRead }
func (ReadReceiptBatchEvent) EventName() string { return EventMessageReadConfirmed }
func (UserStatusEvent) EventName() string       { return EventUserStatus }
func (PongEvent) EventName() string             { return EventPong }
func (ServerErrorEvent) EventName() string      { return EventError }
func (ConnectionEvent) EventName() string       { return "connection" }

func (MessageEvent) isEvent()          {}
func (MessageSentEvent) isEvent()      {}
func (NotificationEvent) isEvent()     {}
func (CallInvitationEvent) isEvent()   {}
func (ReadReceiptEvent) isEvent()      {}
func (ReadReceiptBatchEvent) isEvent() {}
func (UserStatusEvent) isEvent()       {}
func (PongEvent) isEvent()             {}
func (ServerErrorEvent) isEvent()      {}
func (ConnectionEvent) isEvent()       {}
