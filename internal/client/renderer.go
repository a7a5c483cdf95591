package client

import (
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/app"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
	"github.com/microcosm-cc/bluemonday"
)

// LogRenderer is a service.Renderer that reports every view update as a
// structured log entry. Server-provided notification text is stripped of
// markup before it is written.
type LogRenderer struct {
	logger *logger.Logger
	policy *bluemonday.Policy
}

func NewLogRenderer(logger *logger.Logger) *LogRenderer {
	return &LogRenderer{logger: logger, policy: bluemonday.StrictPolicy()}
}

func (r *LogRenderer) RenderConversations(convs []models.Conversation) {
	unread := 0
	for _, c := range convs {
		unread += c.UnreadCount
	}
	r.logger.Info().
		Str("view", "conversations").
		Int("count", len(convs)).
		Int("unread", unread).
		Msg("conversations updated")
}

func (r *LogRenderer) RenderMessages(key string, msgs []models.Message) {
	ev := r.logger.Info().
		Str("view", "messages").
		Str("conversation", key).
		Int("count", len(msgs))
	if len(msgs) > 0 {
		ev = ev.Int64("newest_id", msgs[0].ID)
	}
	ev.Msg("messages updated")
}

func (r *LogRenderer) RenderFriends(friends []models.Friend) {
	r.logger.Info().
		Str("view", "friends").
		Int("count", len(friends)).
		Msg("friends updated")
}

func (r *LogRenderer) RenderConnection(ev models.ConnectionEvent) {
	entry := r.logger.Info()
	if ev.Err != nil {
		entry = r.logger.Warn().Err(ev.Err)
	}
	entry.
		Str("view", "connection").
		Str("state", ev.State.String()).
		Str("reason", ev.Reason.String()).
		Msg(app.ConnectionStatus(ev))
}

func (r *LogRenderer) UserStatus(ev models.UserStatusEvent) {
	r.logger.Info().
		Int64("user_id", ev.UserID).
		Bool("online", ev.IsOnline).
		Msg("user status changed")
}

func (r *LogRenderer) Notify(ev models.NotificationEvent) {
	r.logger.Info().
		Str("type", ev.Type).
		Str("title", r.policy.Sanitize(ev.Title)).
		Str("content", r.policy.Sanitize(ev.Content)).
		Msg("notification")
}

func (r *LogRenderer) CallInvitation(ev models.CallInvitationEvent) {
	r.logger.Info().
		Str("room", ev.RoomID).
		Int64("from", ev.CallerID).
		Str("caller", ev.CallerName).
		Msg("incoming call")
}

func (r *LogRenderer) AuthExpired() {
	r.logger.Warn().Msg(app.MsgSessionExpired)
}
