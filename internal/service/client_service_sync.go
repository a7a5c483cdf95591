// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/store"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
	"golang.org/x/sync/errgroup"
)

const (
	pageSize     = 50
	catchUpLimit = 200
	// unread messages are looked for among this many newest cached ones
	markReadScan = 200
	// acks for messages this client does not know yet are kept up to this
	// many
	maxEarlyAcks = 64
	// unacknowledged drafts beyond this drop the oldest one
	maxPendingDrafts = 256
	// server ids already matched to a draft, remembered up to this many
	maxSettledIDs = 256

	cursorKeyPrefix = "cursor:"

	notificationFriendRequest  = "friend_request"
	notificationFriendAccepted = "friend_accepted"
)

type clientSyncService struct {
	session   ClientSessionService
	job       ClientSessionJob
	cache     store.LocalCache
	adapter   adapter.ServerAdapter
	channel   RealtimeChannel
	transfer  ClientTransferService
	resources ClientResourceService
	renderer  Renderer
	cfg       config.ClientSession
	logger    *logger.Logger
	now       func() time.Time

	mu            sync.Mutex
	runCtx        context.Context
	cancel        context.CancelFunc
	unsubscribe   []func()
	current       string
	connectedOnce bool
	pending       map[string]models.Message
	pendingOrder  []string
	acks          map[string]models.MessageSentEvent
	settled       map[int64]struct{}
	wg            sync.WaitGroup
}

// NewClientSyncService wires the sync coordinator. Nothing runs until Start.
func NewClientSyncService(
	session ClientSessionService,
	job ClientSessionJob,
	cache store.LocalCache,
	serverAdapter adapter.ServerAdapter,
	channel RealtimeChannel,
	transfer ClientTransferService,
	resources ClientResourceService,
	renderer Renderer,
	cfg config.ClientSession,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		session:   session,
		job:       job,
		cache:     cache,
		adapter:   serverAdapter,
		channel:   channel,
		transfer:  transfer,
		resources: resources,
		renderer:  renderer,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		pending:   make(map[string]models.Message),
		acks:      make(map[string]models.MessageSentEvent),
		settled:   make(map[int64]struct{}),
	}
}

// Start runs the startup sequence:
//
//  1. confirm the session with the server (an expired one ends here);
//  2. start the refresh job and attach to session and channel events;
//  3. render cached conversations, then refresh them from the server;
//  4. connect the realtime channel and load friends;
//  5. reload the open conversation, if any.
//
// Network failures past step 1 are logged and leave the cached view in place.
func (s *clientSyncService) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if !s.cache.Available() {
		log.Warn().Msg("local cache unavailable, nothing will be kept between runs")
	}

	if _, err := s.session.Validate(ctx); err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) && !errors.Is(err, ErrAuthExpired) {
			err = fmt.Errorf("%w: %w", ErrAuthExpired, err)
		}
		if errors.Is(err, ErrAuthExpired) {
			s.renderer.AuthExpired()
			return err
		}
		log.Warn().Err(err).Msg("session not confirmed, starting from cache")
	}
	if s.owner() == 0 {
		s.renderer.AuthExpired()
		return ErrAuthExpired
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return nil
	}
	s.runCtx, s.cancel = context.WithCancel(ctx)
	s.connectedOnce = false
	s.unsubscribe = []func(){
		s.session.Subscribe(s.handleSessionEvent),
		s.channel.Subscribe(s.handleEvent),
	}
	runCtx := s.runCtx
	s.mu.Unlock()

	s.job.Start(runCtx, s.cfg.RefreshInterval)

	s.renderConversations(ctx)
	if err := s.refreshConversations(ctx); err != nil {
		log.Warn().Err(err).Msg("conversation list not refreshed")
	}

	if err := s.channel.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("realtime channel not connected yet")
	}

	if err := s.loadFriends(ctx); err != nil {
		log.Warn().Err(err).Msg("friends not loaded")
	}

	if key := s.currentKey(); key != "" {
		if err := s.OpenConversation(ctx, key); err != nil {
			log.Warn().Err(err).Str("conversation", key).Msg("open conversation not refreshed")
		}
	}

	return nil
}

func (s *clientSyncService) OpenConversation(ctx context.Context, key string) error {
	target, ok := models.TargetFromKey(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidConversationKey, key)
	}

	s.mu.Lock()
	s.current = key
	s.mu.Unlock()

	s.renderMessages(ctx, key)

	var msgs []models.Message
	err := s.session.AuthorizedDo(ctx, func(ctx context.Context) error {
		var err error
		msgs, err = s.adapter.Messages(ctx, models.MessagePage{
			UserID: target.UserID,
			RoomID: target.RoomID,
			Page:   1,
			Limit:  pageSize,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("error loading conversation %s: %w", key, err)
	}

	if err = s.storeMessages(ctx, key, msgs); err != nil {
		return err
	}

	if !s.cache.Available() {
		s.renderer.RenderMessages(key, newestFirst(msgs))
	} else {
		s.renderMessages(ctx, key)
	}
	s.renderConversations(ctx)

	return s.MarkConversationRead(ctx)
}

func (s *clientSyncService) LoadOlder(ctx context.Context, beforeID int64) ([]models.Message, error) {
	key := s.currentKey()
	if key == "" {
		return nil, ErrNoConversationOpen
	}

	msgs, err := s.cache.QueryMessages(ctx, s.owner(), models.MessageFilter{
		ConversationKey: key,
		Limit:           pageSize,
		BeforeID:        beforeID,
	})
	if err != nil {
		return nil, fmt.Errorf("error loading older messages: %w", err)
	}
	return msgs, nil
}

// MarkConversationRead tells the server over both the realtime channel and
// HTTP. The cache is updated as soon as either of them went through.
func (s *clientSyncService) MarkConversationRead(ctx context.Context) error {
	key := s.currentKey()
	if key == "" {
		return ErrNoConversationOpen
	}
	owner := s.owner()

	msgs, err := s.cache.QueryMessages(ctx, owner, models.MessageFilter{ConversationKey: key, Limit: markReadScan})
	if err != nil {
		return fmt.Errorf("error loading unread messages: %w", err)
	}

	ids := unreadIDs(msgs, owner)
	if len(ids) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	emitErr := s.channel.Emit(ctx, models.EventMarkMessageRead, models.MarkMessageReadFrame{MessageIDs: ids})
	if emitErr != nil {
		log.Debug().Err(emitErr).Msg("read receipt not sent over realtime channel")
	}

	putErr := s.session.AuthorizedDo(ctx, func(ctx context.Context) error {
		_, err := s.adapter.MarkRead(ctx, ids)
		return err
	})
	if putErr != nil {
		if emitErr != nil {
			return fmt.Errorf("error marking messages read: %w", putErr)
		}
		log.Warn().Err(putErr).Msg("mark-read request failed, relying on realtime receipt")
	}

	if err = s.cache.MarkRead(ctx, owner, ids, s.now()); err != nil {
		return fmt.Errorf("error marking messages read locally: %w", err)
	}

	s.renderMessages(ctx, key)
	s.renderConversations(ctx)
	return nil
}

func (s *clientSyncService) SendText(ctx context.Context, text string) (models.DispatchResult, error) {
	target, err := s.currentTarget()
	if err != nil {
		return models.DispatchResult{}, err
	}

	res, err := s.transfer.SendText(ctx, target, text)
	if err != nil {
		return models.DispatchResult{}, err
	}

	s.expectAck(ctx, s.draft(target, res, func(m *models.Message) {
		m.Body = text
	}))
	return res, nil
}

func (s *clientSyncService) SendPayload(ctx context.Context, payload models.OutboundPayload) (models.DispatchResult, error) {
	target, err := s.currentTarget()
	if err != nil {
		return models.DispatchResult{}, err
	}

	res, err := s.transfer.Dispatch(ctx, target, payload)
	if err != nil {
		return models.DispatchResult{}, err
	}

	s.expectAck(ctx, s.draft(target, res, func(m *models.Message) {
		m.Body = res.Preview
		m.FileName = payload.FileName
		m.FileSize = int64(len(payload.Data))
		m.Duration = payload.Duration
		m.MimeType = payload.MimeType
		m.IsOriginal = res.Tier == models.TierDump
	}))
	return res, nil
}

func (s *clientSyncService) OnForeground(ctx context.Context) error {
	return s.resume(ctx, "foreground")
}

func (s *clientSyncService) OnOnline(ctx context.Context) error {
	return s.resume(ctx, "online")
}

// resume re-checks the session and brings the channel back without a full
// restart.
func (s *clientSyncService) resume(ctx context.Context, trigger string) error {
	log := logger.FromContext(ctx).With().Str("trigger", trigger).Logger()

	if err := s.session.CheckAndRefresh(ctx); err != nil {
		if errors.Is(err, ErrAuthExpired) {
			s.renderer.AuthExpired()
			return err
		}
		log.Warn().Err(err).Msg("session check failed")
	}

	if s.channel.State() == models.Connected {
		return nil
	}

	log.Info().Msg("reconnecting realtime channel")
	if err := s.channel.Reconnect(ctx); err != nil {
		return fmt.Errorf("error reconnecting: %w", err)
	}
	return nil
}

func (s *clientSyncService) Logout(ctx context.Context) error {
	owner := s.owner()
	s.Stop()

	var errs []error
	if owner != 0 {
		if err := s.cache.ClearAll(ctx, owner); err != nil {
			errs = append(errs, fmt.Errorf("error clearing cache: %w", err))
		}
	}
	s.resources.Purge()
	if err := s.session.Logout(ctx); err != nil {
		errs = append(errs, err)
	}

	s.mu.Lock()
	s.current = ""
	clear(s.pending)
	s.pendingOrder = nil
	clear(s.acks)
	clear(s.settled)
	s.mu.Unlock()

	return errors.Join(errs...)
}

func (s *clientSyncService) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	unsubscribe := s.unsubscribe
	s.cancel = nil
	s.unsubscribe = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	for _, fn := range unsubscribe {
		fn()
	}
	cancel()
	s.job.Stop()
	s.channel.Disconnect()
	s.wg.Wait()
}

// ── event routing ────────────────────────────────────────────────────────────

func (s *clientSyncService) handleEvent(ev models.Event) {
	ctx := s.context()
	log := logger.FromContext(ctx)

	switch e := ev.(type) {
	case models.MessageEvent:
		s.onMessage(ctx, e.Message)
	case models.MessageSentEvent:
		s.onMessageSent(ctx, e)
	case models.ReadReceiptEvent:
		if err := s.cache.MarkRead(ctx, s.owner(), []int64{e.MessageID}, e.ReadAt.Time()); err != nil {
			log.Err(err).Int64("message_id", e.MessageID).Msg("read receipt not stored")
			return
		}
		s.renderMessages(ctx, s.currentKey())
	case models.ReadReceiptBatchEvent:
		log.Debug().Int("updated", e.UpdatedCount).Msg("read receipts confirmed")
	case models.NotificationEvent:
		s.renderer.Notify(e)
		if e.Type == notificationFriendRequest || e.Type == notificationFriendAccepted {
			s.goBackground(func(ctx context.Context) {
				if err := s.loadFriends(ctx); err != nil {
					log.Warn().Err(err).Msg("friends not reloaded")
				}
			})
		}
	case models.CallInvitationEvent:
		s.renderer.CallInvitation(e)
		if e.SystemMessage != nil {
			s.onMessage(ctx, *e.SystemMessage)
		}
	case models.UserStatusEvent:
		s.renderer.UserStatus(e)
	case models.ServerErrorEvent:
		log.Warn().Str("message", e.Message).Msg("server reported an error")
	case models.ConnectionEvent:
		s.onConnection(ctx, e)
	}
}

func (s *clientSyncService) onMessage(ctx context.Context, msg models.Message) {
	log := logger.FromContext(ctx)
	owner := s.owner()
	key := msg.ConversationKey(owner)

	if msg.SenderID == owner {
		msg = s.settleEcho(owner, msg)
	}

	if msg.IsOriginalReady() {
		id, err := s.cache.ReplacePreviewReference(ctx, owner, models.PreviewMatch{
			ExcludeID: msg.ID,
			ClientID:  msg.ClientID,
			SenderID:  msg.SenderID,
			Type:      msg.Type,
			Body:      msg.Body,
			FileURL:   msg.FileURL,
			FileName:  msg.FileName,
			FileSize:  msg.FileSize,
		})
		switch {
		case err == nil:
			log.Debug().Int64("preview_id", id).Int64("message_id", msg.ID).Msg("preview completed")
			s.renderMessages(ctx, key)
			s.renderConversations(ctx)
			return
		case !errors.Is(err, store.ErrMessageNotFound):
			log.Err(err).Int64("message_id", msg.ID).Msg("preview not completed")
		}
	}

	if err := s.storeMessages(ctx, key, []models.Message{msg}); err != nil {
		log.Err(err).Int64("message_id", msg.ID).Msg("incoming message not stored")
		return
	}

	if key == s.currentKey() {
		s.renderMessages(ctx, key)
		if msg.SenderID != owner {
			s.goBackground(func(ctx context.Context) {
				if err := s.MarkConversationRead(ctx); err != nil && !errors.Is(err, ErrNoConversationOpen) {
					log.Warn().Err(err).Msg("incoming message not marked read")
				}
			})
		}
	}
	s.renderConversations(ctx)
}

// onMessageSent stores the message the server just acknowledged. An ack can
// beat the dispatcher's return, so unknown acks are parked for expectAck.
// The server does not echo client_id in its acks; those resolve the oldest
// draft sent to the same target unless the own echo already settled the id.
func (s *clientSyncService) onMessageSent(ctx context.Context, ack models.MessageSentEvent) {
	owner := s.owner()

	s.mu.Lock()
	if _, done := s.settled[ack.MessageID]; done {
		s.mu.Unlock()
		return
	}

	var (
		msg models.Message
		ok  bool
	)
	if ack.ClientID != "" {
		msg, ok = s.takePendingLocked(ack.ClientID)
		if !ok {
			if len(s.acks) >= maxEarlyAcks {
				clear(s.acks)
			}
			s.acks[ack.ClientID] = ack
			s.mu.Unlock()
			return
		}
	} else {
		msg, ok = s.takeOldestLocked(owner, ackConversationKey(ack), nil)
	}
	if ok {
		s.settleLocked(ack.MessageID)
	}
	s.mu.Unlock()

	if !ok {
		logger.FromContext(ctx).Debug().Int64("message_id", ack.MessageID).Msg("ack matches no draft")
		return
	}
	s.storeSent(ctx, msg, ack)
}

// settleEcho matches an own message echoed by the server to its draft and
// carries the draft's client id over.
func (s *clientSyncService) settleEcho(owner int64, msg models.Message) models.Message {
	if msg.ID == 0 {
		return msg
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, done := s.settled[msg.ID]; done {
		return msg
	}

	var (
		draft models.Message
		ok    bool
	)
	if msg.ClientID != "" {
		draft, ok = s.takePendingLocked(msg.ClientID)
	} else {
		draft, ok = s.takeOldestLocked(owner, msg.ConversationKey(owner), func(d models.Message) bool {
			return d.Type == msg.Type && d.Body == msg.Body
		})
	}
	if !ok {
		return msg
	}

	s.settleLocked(msg.ID)
	if msg.ClientID == "" {
		msg.ClientID = draft.ClientID
	}
	return msg
}

func (s *clientSyncService) expectAck(ctx context.Context, msg models.Message) {
	s.mu.Lock()
	ack, ok := s.acks[msg.ClientID]
	if !ok {
		s.addPendingLocked(ctx, msg)
		s.mu.Unlock()
		return
	}
	delete(s.acks, msg.ClientID)
	s.settleLocked(ack.MessageID)
	s.mu.Unlock()

	s.storeSent(ctx, msg, ack)
}

func (s *clientSyncService) addPendingLocked(ctx context.Context, msg models.Message) {
	if _, dup := s.pending[msg.ClientID]; !dup {
		s.pendingOrder = append(s.pendingOrder, msg.ClientID)
	}
	s.pending[msg.ClientID] = msg

	for len(s.pendingOrder) > maxPendingDrafts {
		oldest := s.pendingOrder[0]
		s.pendingOrder = s.pendingOrder[1:]
		delete(s.pending, oldest)
		logger.FromContext(ctx).Warn().Str("client_id", oldest).Msg("unacknowledged draft dropped")
	}
}

func (s *clientSyncService) takePendingLocked(clientID string) (models.Message, bool) {
	msg, ok := s.pending[clientID]
	if !ok {
		return models.Message{}, false
	}
	delete(s.pending, clientID)
	s.pendingOrder = slices.DeleteFunc(s.pendingOrder, func(id string) bool { return id == clientID })
	return msg, true
}

// takeOldestLocked removes the oldest draft of conversation key that match
// accepts. A nil match accepts any draft.
func (s *clientSyncService) takeOldestLocked(owner int64, key string, match func(models.Message) bool) (models.Message, bool) {
	for _, id := range s.pendingOrder {
		d := s.pending[id]
		if d.ConversationKey(owner) != key {
			continue
		}
		if match != nil && !match(d) {
			continue
		}
		return s.takePendingLocked(id)
	}
	return models.Message{}, false
}

func (s *clientSyncService) settleLocked(id int64) {
	if id == 0 {
		return
	}
	if len(s.settled) >= maxSettledIDs {
		clear(s.settled)
	}
	s.settled[id] = struct{}{}
}

func ackConversationKey(ack models.MessageSentEvent) string {
	if ack.RoomID != 0 {
		return models.RoomConversationKey(ack.RoomID)
	}
	return models.UserConversationKey(ack.TargetUserID)
}

func (s *clientSyncService) storeSent(ctx context.Context, msg models.Message, ack models.MessageSentEvent) {
	msg.ID = ack.MessageID
	if !ack.Timestamp.IsZero() {
		msg.CreatedAt = ack.Timestamp.Time()
	}

	key := msg.ConversationKey(s.owner())
	if err := s.storeMessages(ctx, key, []models.Message{msg}); err != nil {
		logger.FromContext(ctx).Err(err).Str("client_id", msg.ClientID).Msg("sent message not stored")
		return
	}

	s.renderMessages(ctx, key)
	s.renderConversations(ctx)
}

func (s *clientSyncService) onConnection(ctx context.Context, ev models.ConnectionEvent) {
	s.renderer.RenderConnection(ev)
	if ev.State != models.Connected {
		return
	}

	s.mu.Lock()
	reconnected := s.connectedOnce
	s.connectedOnce = true
	s.mu.Unlock()

	if reconnected {
		s.goBackground(func(ctx context.Context) {
			if err := s.catchUp(ctx); err != nil {
				logger.FromContext(ctx).Warn().Err(err).Msg("catch-up after reconnect incomplete")
			}
		})
	}
}

func (s *clientSyncService) handleSessionEvent(ev models.SessionEvent) {
	switch ev.Type {
	case models.SessionRefreshed:
		s.goBackground(func(ctx context.Context) {
			if err := s.channel.RenewToken(ctx); err != nil {
				logger.FromContext(ctx).Warn().Err(err).Msg("realtime token not renewed")
			}
		})
	case models.SessionRefreshFailed:
		s.renderer.AuthExpired()
		s.channel.Disconnect()
	}
}

// catchUp pulls what was missed while disconnected: the conversation list
// and the messages of the open conversation past its cursor.
func (s *clientSyncService) catchUp(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.refreshConversations(gctx)
	})

	if key := s.currentKey(); key != "" {
		g.Go(func() error {
			return s.syncSince(gctx, key)
		})
	}

	return g.Wait()
}

func (s *clientSyncService) syncSince(ctx context.Context, key string) error {
	target, ok := models.TargetFromKey(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidConversationKey, key)
	}

	var cursor models.SyncCursor
	err := s.cache.GetSyncState(ctx, s.owner(), cursorKeyPrefix+key, &cursor)
	if err != nil && !errors.Is(err, store.ErrSyncStateNotFound) {
		return fmt.Errorf("error reading cursor of %s: %w", key, err)
	}

	var msgs []models.Message
	err = s.session.AuthorizedDo(ctx, func(ctx context.Context) error {
		page := models.MessagePage{UserID: target.UserID, RoomID: target.RoomID}
		if cursor.LastMessageID == 0 {
			page.Page, page.Limit = 1, pageSize
			var err error
			msgs, err = s.adapter.Messages(ctx, page)
			return err
		}

		page.Limit = catchUpLimit
		resp, err := s.adapter.MessagesSince(ctx, page, cursor.LastMessageID)
		msgs = resp.Messages
		return err
	})
	if err != nil {
		return fmt.Errorf("error catching up %s: %w", key, err)
	}
	if len(msgs) == 0 {
		return nil
	}

	if err = s.storeMessages(ctx, key, msgs); err != nil {
		return err
	}
	s.renderMessages(ctx, key)
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// storeMessages upserts msgs and moves the cursor of key past them.
func (s *clientSyncService) storeMessages(ctx context.Context, key string, msgs []models.Message) error {
	owner := s.owner()
	if err := s.cache.UpsertMessages(ctx, owner, msgs); err != nil {
		return fmt.Errorf("error storing messages: %w", err)
	}

	var last int64
	for _, m := range msgs {
		last = max(last, m.ID)
	}
	if last == 0 {
		return nil
	}

	var cursor models.SyncCursor
	err := s.cache.GetSyncState(ctx, owner, cursorKeyPrefix+key, &cursor)
	if err != nil && !errors.Is(err, store.ErrSyncStateNotFound) {
		return fmt.Errorf("error reading cursor of %s: %w", key, err)
	}
	if cursor.LastMessageID >= last {
		return nil
	}

	cursor = models.SyncCursor{LastMessageID: last, SyncedAt: s.now().UnixMilli()}
	if err = s.cache.PutSyncState(ctx, owner, cursorKeyPrefix+key, cursor); err != nil {
		return fmt.Errorf("error storing cursor of %s: %w", key, err)
	}
	return nil
}

func (s *clientSyncService) refreshConversations(ctx context.Context) error {
	var convs []models.Conversation
	err := s.session.AuthorizedDo(ctx, func(ctx context.Context) error {
		var err error
		convs, err = s.adapter.Conversations(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("error loading conversations: %w", err)
	}

	if err = s.cache.UpsertConversations(ctx, s.owner(), convs); err != nil {
		return fmt.Errorf("error storing conversations: %w", err)
	}

	if !s.cache.Available() {
		s.renderer.RenderConversations(convs)
		return nil
	}
	s.renderConversations(ctx)
	return nil
}

func (s *clientSyncService) loadFriends(ctx context.Context) error {
	var friends []models.Friend
	err := s.session.AuthorizedDo(ctx, func(ctx context.Context) error {
		var err error
		friends, err = s.adapter.Friends(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("error loading friends: %w", err)
	}

	s.renderer.RenderFriends(friends)
	return nil
}

func (s *clientSyncService) renderConversations(ctx context.Context) {
	convs, err := s.cache.QueryConversations(ctx, s.owner())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("conversations not rendered")
		return
	}
	s.renderer.RenderConversations(convs)
}

// renderMessages redraws key if it is the open conversation.
func (s *clientSyncService) renderMessages(ctx context.Context, key string) {
	if key == "" || key != s.currentKey() {
		return
	}

	msgs, err := s.cache.QueryMessages(ctx, s.owner(), models.MessageFilter{ConversationKey: key, Limit: pageSize})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("conversation", key).Msg("messages not rendered")
		return
	}
	s.renderer.RenderMessages(key, msgs)
}

func (s *clientSyncService) draft(target models.Target, res models.DispatchResult, fill func(m *models.Message)) models.Message {
	msg := models.Message{
		ClientID:   res.ClientID,
		SenderID:   s.owner(),
		ReceiverID: target.UserID,
		RoomID:     target.RoomID,
		Type:       res.Type,
		FileURL:    res.FileURL,
		IsRead:     true,
		CreatedAt:  s.now(),
	}
	fill(&msg)
	return msg
}

// goBackground runs fn detached from the event goroutine; Stop waits for it.
func (s *clientSyncService) goBackground(fn func(ctx context.Context)) {
	ctx := s.context()
	if ctx.Err() != nil {
		return
	}
	s.wg.Go(func() { fn(ctx) })
}

func (s *clientSyncService) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runCtx == nil {
		return s.logger.WithContext(context.Background())
	}
	return s.runCtx
}

func (s *clientSyncService) owner() int64 {
	return s.session.User().UserID
}

func (s *clientSyncService) currentKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *clientSyncService) currentTarget() (models.Target, error) {
	key := s.currentKey()
	if key == "" {
		return models.Target{}, ErrNoConversationOpen
	}
	target, ok := models.TargetFromKey(key)
	if !ok {
		return models.Target{}, fmt.Errorf("%w: %q", ErrInvalidConversationKey, key)
	}
	return target, nil
}

// unreadIDs picks the messages of others addressed to owner that are still
// unread.
func unreadIDs(msgs []models.Message, owner int64) []int64 {
	var ids []int64
	for _, m := range msgs {
		if m.IsRead || m.ID == 0 || m.SenderID == owner {
			continue
		}
		if m.RoomID == 0 && m.ReceiverID != owner {
			continue
		}
		ids = append(ids, m.ID)
	}
	return ids
}

func newestFirst(msgs []models.Message) []models.Message {
	out := make([]models.Message, len(msgs))
	for i, m := range msgs {
		out[len(msgs)-1-i] = m
	}
	return out
}
