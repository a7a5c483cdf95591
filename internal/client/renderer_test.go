package client

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/app"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedRenderer() (*LogRenderer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewLogRenderer(&logger.Logger{Logger: zerolog.New(buf)}), buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLogRenderer_RenderConversations(t *testing.T) {
	r, buf := newBufferedRenderer()

	r.RenderConversations([]models.Conversation{{UnreadCount: 2}, {UnreadCount: 3}})

	entry := lastEntry(t, buf)
	assert.Equal(t, "conversations", entry["view"])
	assert.EqualValues(t, 2, entry["count"])
	assert.EqualValues(t, 5, entry["unread"])
}

func TestLogRenderer_RenderMessages(t *testing.T) {
	r, buf := newBufferedRenderer()

	r.RenderMessages("user:2", []models.Message{{ID: 9}, {ID: 8}})
	entry := lastEntry(t, buf)
	assert.Equal(t, "user:2", entry["conversation"])
	assert.EqualValues(t, 9, entry["newest_id"])

	r.RenderMessages("user:3", nil)
	entry = lastEntry(t, buf)
	assert.NotContains(t, entry, "newest_id")
}

func TestLogRenderer_RenderConnection(t *testing.T) {
	r, buf := newBufferedRenderer()

	r.RenderConnection(models.ConnectionEvent{State: models.Disconnected, Attempt: 2, Delay: 2 * time.Second})
	entry := lastEntry(t, buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "reconnecting in 2s (attempt 2)", entry["message"])

	r.RenderConnection(models.ConnectionEvent{State: models.Disconnected, GaveUp: true, Err: assert.AnError})
	entry = lastEntry(t, buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, app.MsgGaveUp, entry["message"])
}

func TestLogRenderer_AuthExpired(t *testing.T) {
	r, buf := newBufferedRenderer()

	r.AuthExpired()

	entry := lastEntry(t, buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, app.MsgSessionExpired, entry["message"])
}

func TestLogRenderer_Notify_StripsMarkup(t *testing.T) {
	r, buf := newBufferedRenderer()

	r.Notify(models.NotificationEvent{
		Type:    "friend_request",
		Title:   "<b>New friend</b>",
		Content: `bob wants to add you<script>alert(1)</script>`,
	})

	entry := lastEntry(t, buf)
	assert.Equal(t, "friend_request", entry["type"])
	assert.Equal(t, "New friend", entry["title"])
	assert.Equal(t, "bob wants to add you", entry["content"])
}
