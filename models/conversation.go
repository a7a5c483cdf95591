// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Conversation is the denormalized summary of one thread shown in the
// conversation list.
type Conversation struct {
	Key           string    `json:"key"`
	UserID        int64     `json:"user_id,omitempty"`
	RoomID        int64     `json:"room_id,omitempty"`
	Title         string    `json:"title"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_time"`
	UnreadCount   int       `json:"unread_count"`
}

type wireConversation struct {
	UserID          *int64    `json:"user_id"`
	RoomID          *int64    `json:"room_id"`
	UserNickname    *string   `json:"user_nickname"`
	RoomName        *string   `json:"room_name"`
	Title           string    `json:"title"`
	LastMessage     *string   `json:"last_message"`
	LastMessageTime *WireTime `json:"last_message_time"`
	UnreadCount     int       `json:"unread_count"`
}

// UnmarshalJSON implements json.Unmarshaler. The key is derived from the room
// or peer id because the server does not send one.
func (c *Conversation) UnmarshalJSON(data []byte) error {
	var w wireConversation
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*c = Conversation{
		UserID:      deref(w.UserID),
		RoomID:      deref(w.RoomID),
		Title:       w.Title,
		LastMessage: deref(w.LastMessage),
		UnreadCount: w.UnreadCount,
	}
	if w.LastMessageTime != nil {
		c.LastMessageAt = w.LastMessageTime.Time()
	}

	if c.RoomID != 0 {
		c.Key = RoomConversationKey(c.RoomID)
		if c.Title == "" {
			c.Title = deref(w.RoomName)
		}
	} else {
		c.Key = UserConversationKey(c.UserID)
		if c.Title == "" {
			c.Title = deref(w.UserNickname)
		}
	}

	return nil
}

// PreviewText returns the short conversation-list label for a message.
// Binary payloads are summarised by type so inline data never leaks into the
// list.
func PreviewText(m Message) string {
	switch m.Type {
	case PayloadImage:
		return "[image]"
	case PayloadAudio:
		return "[voice]"
	case PayloadVideo:
		return "[video]"
	case PayloadFile:
		if m.FileName != "" {
			return "[file] " + m.FileName
		}
		return "[file]"
	default:
		return m.Body
	}
}
