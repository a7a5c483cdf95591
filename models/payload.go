package models

// OutboundPayload is a binary payload handed to the transfer dispatcher. It
// is consumed by a single dispatch and discarded afterwards.
type OutboundPayload struct {
	Data []byte
	// DeclaredSize is the size the sender claims; checked against the hard cap
	// before any bytes leave the client.
	DeclaredSize int64
	// Type is the payload class. Empty means "detect from content".
	Type     PayloadType
	FileName string
	MimeType string
	// Duration is the length of audio/video payloads in seconds.
	Duration int
}

// Target addresses a direct peer or a room. Exactly one field is set.
type Target struct {
	UserID int64
	RoomID int64
}

// ConversationKey returns the cache key of the targeted thread.
func (t Target) ConversationKey() string {
	if t.RoomID != 0 {
		return RoomConversationKey(t.RoomID)
	}
	return UserConversationKey(t.UserID)
}

// TargetFromKey builds a Target from a conversation key.
func TargetFromKey(key string) (Target, bool) {
	userID, roomID, ok := ParseConversationKey(key)
	if !ok {
		return Target{}, false
	}
	return Target{UserID: userID, RoomID: roomID}, true
}

// SendMessageFrame is the data of an outbound send_message event.
type SendMessageFrame struct {
	ClientID     string      `json:"client_id"`
	Type         PayloadType `json:"type"`
	MessageType  PayloadType `json:"message_type,omitempty"`
	Message      string      `json:"message"`
	TargetUserID int64       `json:"target_user_id,omitempty"`
	RoomID       int64       `json:"room_id,omitempty"`
	FileURL      string      `json:"file_url,omitempty"`
	FileName     string      `json:"file_name,omitempty"`
	FileSize     int64       `json:"file_size,omitempty"`
	Duration     int         `json:"duration,omitempty"`
	IsOriginal   bool        `json:"is_original,omitempty"`
}

// MarkMessageReadFrame is the data of an outbound mark_message_read event.
type MarkMessageReadFrame struct {
	MessageIDs []int64 `json:"message_ids"`
}

// PingFrame is the data of an outbound heartbeat.
type PingFrame struct {
	Timestamp int64 `json:"timestamp"`
}

// DispatchTier records which delivery path a payload took.
type DispatchTier string

const (
	// TierUploaded means the payload was uploaded over HTTP and only a
	// reference (plus an image preview) went through the realtime channel.
	TierUploaded DispatchTier = "uploaded"
	// TierDump means the payload went through the realtime channel flagged
	// for server-side materialization.
	TierDump DispatchTier = "dump"
	// TierInline means the encoded payload was sent inline as is.
	TierInline DispatchTier = "inline"
)

// DispatchResult describes a completed dispatch.
type DispatchResult struct {
	Tier     DispatchTier
	Type     PayloadType
	ClientID string
	FileURL  string
	// Preview is the inline body that was sent, if any.
	Preview string
}
