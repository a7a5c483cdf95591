// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
	"time"
)

// PayloadType is the kind of content a message carries.
type PayloadType string

const (
	PayloadText   PayloadType = "text"
	PayloadImage  PayloadType = "image"
	PayloadAudio  PayloadType = "audio"
	PayloadVideo  PayloadType = "video"
	PayloadFile   PayloadType = "file"
	PayloadSystem PayloadType = "system"
)

// IsBinary reports whether the payload type travels as bytes or a file
// reference rather than as plain text.
func (t PayloadType) IsBinary() bool {
	switch t {
	case PayloadImage, PayloadAudio, PayloadVideo, PayloadFile:
		return true
	default:
		return false
	}
}

// Conversation key prefixes. A direct thread is keyed by the other
// participant, a room thread by the room.
const (
	roomKeyPrefix = "room_"
	userKeyPrefix = "user_"
)

// Message is a single chat message as the client sees it.
//
// ID is the server identity and the cache primary key. ClientID is the
// correlation id generated by the sender before the server assigned an ID; it
// is empty for messages that did not originate from this client.
type Message struct {
	ID         int64       `json:"id"`
	ClientID   string      `json:"client_id,omitempty"`
	SenderID   int64       `json:"sender_id"`
	ReceiverID int64       `json:"receiver_id,omitempty"`
	RoomID     int64       `json:"room_id,omitempty"`
	Type       PayloadType `json:"message_type"`
	Body       string      `json:"message"`
	FileURL    string      `json:"file_url,omitempty"`
	FileName   string      `json:"file_name,omitempty"`
	FileSize   int64       `json:"file_size,omitempty"`
	Duration   int         `json:"duration,omitempty"`
	MimeType   string      `json:"mime_type,omitempty"`
	IsOriginal bool        `json:"is_original,omitempty"`
	IsRead     bool        `json:"is_read"`
	ReadAt     *time.Time  `json:"read_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// ConversationKey returns the key of the thread this message belongs to from
// the point of view of selfID.
func (m Message) ConversationKey(selfID int64) string {
	if m.RoomID != 0 {
		return RoomConversationKey(m.RoomID)
	}

	peer := m.SenderID
	if peer == selfID {
		peer = m.ReceiverID
	}

	return UserConversationKey(peer)
}

// IsPreview reports whether the message body is an inline image preview that
// still waits for its durable reference.
func (m Message) IsPreview() bool {
	return m.Type == PayloadImage && m.FileURL == "" && strings.HasPrefix(m.Body, "data:image/")
}

// IsOriginalReady reports whether the message announces a payload that the
// server has materialized out of band.
func (m Message) IsOriginalReady() bool {
	return m.IsOriginal && m.FileURL != ""
}

// RoomConversationKey builds the cache key of a room thread.
func RoomConversationKey(roomID int64) string {
	return roomKeyPrefix + strconv.FormatInt(roomID, 10)
}

// UserConversationKey builds the cache key of a direct thread with userID.
func UserConversationKey(userID int64) string {
	return userKeyPrefix + strconv.FormatInt(userID, 10)
}

// ParseConversationKey splits a conversation key into its peer user id or
// room id. Exactly one of the returned ids is non-zero for a valid key.
func ParseConversationKey(key string) (userID, roomID int64, ok bool) {
	switch {
	case strings.HasPrefix(key, roomKeyPrefix):
		id, err := strconv.ParseInt(strings.TrimPrefix(key, roomKeyPrefix), 10, 64)
		if err != nil || id <= 0 {
			return 0, 0, false
		}
		return 0, id, true
	case strings.HasPrefix(key, userKeyPrefix):
		id, err := strconv.ParseInt(strings.TrimPrefix(key, userKeyPrefix), 10, 64)
		if err != nil || id <= 0 {
			return 0, 0, false
		}
		return id, 0, true
	default:
		return 0, 0, false
	}
}

// MessageFilter selects a page of one conversation's messages.
type MessageFilter struct {
	// ConversationKey is the "room_X"/"user_X" key of the thread.
	ConversationKey string
	// Limit bounds the page size. Zero means the cache default.
	Limit int
	// BeforeID excludes every message with id >= BeforeID when non-zero.
	BeforeID int64
}

// PreviewMatch describes an inbound original-ready message and how to find
// the earlier preview it completes.
type PreviewMatch struct {
	// ExcludeID is the id of the inbound message itself.
	ExcludeID int64
	ClientID  string
	SenderID  int64
	Type      PayloadType
	// Body is the preview content the sender attached.
	Body     string
	FileURL  string
	FileName string
	FileSize int64
}
