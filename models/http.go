// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// TokenResponse is the body returned by the login and refresh endpoints.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// MarkReadRequest is the body of PUT /chat/messages/mark-read.
type MarkReadRequest struct {
	MessageIDs []int64 `json:"message_ids"`
}

// MarkReadResponse acknowledges a mark-read request.
type MarkReadResponse struct {
	UpdatedCount int `json:"updated_count"`
}

// ConversationListResponse is the body of GET /chat/conversations.
type ConversationListResponse struct {
	Conversations []Conversation `json:"conversations"`
}

// MessageListResponse is the body of GET /chat/messages. Messages arrive
// oldest first.
type MessageListResponse struct {
	Total    int       `json:"total"`
	Messages []Message `json:"messages"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

// MessageSinceResponse is the body of GET /chat/messages/since.
type MessageSinceResponse struct {
	Messages      []Message `json:"messages"`
	LastMessageID *int64    `json:"last_message_id"`
}

// MessagePage addresses one page of a conversation on the server.
type MessagePage struct {
	UserID int64
	RoomID int64
	Page   int
	Limit  int
}

// UploadResponse is returned by the generic file upload endpoint.
type UploadResponse struct {
	FileID   int64  `json:"file_id,omitempty"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name,omitempty"`
	FileSize int64  `json:"file_size,omitempty"`
}

// PhotoUploadResponse is returned by POST /files/upload-photo.
type PhotoUploadResponse struct {
	PhotoID    string `json:"photo_id"`
	FileName   string `json:"file_name"`
	FileSize   int64  `json:"file_size"`
	FilePath   string `json:"file_path"`
	FileHash   string `json:"file_hash"`
	UploadedAt string `json:"uploaded_at"`
}

// FriendListResponse is the body of GET /friends/list.
type FriendListResponse struct {
	Friends []Friend `json:"friends"`
	Total   int      `json:"total"`
}

// wireMessage accepts both the REST shape and the realtime shape of a
// message, which use different names for a few fields.
type wireMessage struct {
	ID         int64       `json:"id"`
	ClientID   string      `json:"client_id"`
	SenderID   int64       `json:"sender_id"`
	FromUserID int64       `json:"from_user_id"`
	ReceiverID *int64      `json:"receiver_id"`
	RoomID     *int64      `json:"room_id"`
	Message    *string     `json:"message"`
	Type       PayloadType `json:"message_type"`
	AltType    PayloadType `json:"type"`
	FileURL    *string     `json:"file_url"`
	FileName   *string     `json:"file_name"`
	FileSize   *int64      `json:"file_size"`
	Duration   *int        `json:"duration"`
	MimeType   *string     `json:"mime_type"`
	IsOriginal bool        `json:"is_original"`
	IsRead     bool        `json:"is_read"`
	ReadAt     *WireTime   `json:"read_at"`
	CreatedAt  *WireTime   `json:"created_at"`
	Timestamp  *WireTime   `json:"timestamp"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*m = Message{
		ID:         w.ID,
		ClientID:   w.ClientID,
		SenderID:   w.SenderID,
		ReceiverID: deref(w.ReceiverID),
		RoomID:     deref(w.RoomID),
		Body:       deref(w.Message),
		Type:       w.Type,
		FileURL:    deref(w.FileURL),
		FileName:   deref(w.FileName),
		FileSize:   deref(w.FileSize),
		Duration:   deref(w.Duration),
		MimeType:   deref(w.MimeType),
		IsOriginal: w.IsOriginal,
		IsRead:     w.IsRead,
	}
	if m.SenderID == 0 {
		m.SenderID = w.FromUserID
	}
	if m.Type == "" {
		m.Type = w.AltType
	}
	if m.Type == "" {
		m.Type = PayloadText
	}
	if w.ReadAt != nil && !w.ReadAt.IsZero() {
		at := w.ReadAt.Time()
		m.ReadAt = &at
	}
	switch {
	case w.CreatedAt != nil:
		m.CreatedAt = w.CreatedAt.Time()
	case w.Timestamp != nil:
		m.CreatedAt = w.Timestamp.Time()
	}

	return nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// WireTime parses the timestamps produced by the server, which may or may
// not carry a zone designator. Zone-less values are taken as UTC.
type WireTime time.Time

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *WireTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*t = WireTime{}
		return nil
	}

	var lastErr error
	for _, layout := range wireTimeLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			*t = WireTime(parsed)
			return nil
		}
		lastErr = err
	}

	return lastErr
}

// MarshalJSON implements json.Marshaler.
func (t WireTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339Nano))
}

// Time returns the value as time.Time.
func (t WireTime) Time() time.Time {
	return time.Time(t)
}

// IsZero reports whether t holds no instant.
func (t WireTime) IsZero() bool {
	return time.Time(t).IsZero()
}
