// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/store"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/utils"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
	"golang.org/x/sync/singleflight"
)

const refreshKey = "refresh"

type clientSessionService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionStore
	cfg      config.ClientSession
	logger   *logger.Logger
	now      func() time.Time

	mu      sync.RWMutex
	session models.Session

	refreshes singleflight.Group

	subsMu  sync.RWMutex
	subs    map[int]func(models.SessionEvent)
	nextSub int
}

// NewClientSessionService creates a session manager with no session. Call
// Login or Restore to start one.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, sessions store.SessionStore, cfg config.ClientSession, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter:  serverAdapter,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		subs:     make(map[int]func(models.SessionEvent)),
	}
}

func (s *clientSessionService) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.AccessToken
}

func (s *clientSessionService) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.User
}

func (s *clientSessionService) IsExpiringSoon(token string) bool {
	exp, err := utils.ExpiryFromJWT(token)
	if err != nil {
		return true
	}
	return exp.Sub(s.now()) < s.cfg.ExpiryBuffer
}

func (s *clientSessionService) EnsureToken(ctx context.Context) (string, error) {
	token := s.AccessToken()
	if token == "" {
		return "", ErrAuthExpired
	}
	if !s.IsExpiringSoon(token) {
		return token, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return "", err
	}
	return s.AccessToken(), nil
}

func (s *clientSessionService) Refresh(ctx context.Context) error {
	// the exchange outlives any single waiter so that the others still get it
	detached := context.WithoutCancel(ctx)
	result := s.refreshes.DoChan(refreshKey, func() (any, error) {
		return nil, s.refresh(detached)
	})

	select {
	case res := <-result:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *clientSessionService) refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.RLock()
	refreshToken := s.session.RefreshToken
	s.mu.RUnlock()

	if refreshToken == "" {
		return ErrAuthExpired
	}

	tokens, err := s.adapter.Refresh(ctx, refreshToken)
	if err != nil {
		log.Err(err).Str("func", "clientSessionService.refresh").Msg("token refresh failed, clearing session")
		s.clear(ctx)
		err = fmt.Errorf("%w: %w", ErrAuthExpired, err)
		s.publish(models.SessionEvent{Type: models.SessionRefreshFailed, Err: err})
		return err
	}

	s.mu.Lock()
	s.session.AccessToken = tokens.AccessToken
	s.session.RefreshToken = tokens.RefreshToken
	s.session.ExpiresAt = expiryOf(tokens.AccessToken)
	session := s.session
	s.mu.Unlock()

	s.adapter.SetToken(tokens.AccessToken)
	s.persist(ctx, session)

	log.Info().Time("expires_at", session.ExpiresAt).Msg("session refreshed")
	s.publish(models.SessionEvent{Type: models.SessionRefreshed, AccessToken: tokens.AccessToken})
	return nil
}

func (s *clientSessionService) CheckAndRefresh(ctx context.Context) error {
	token := s.AccessToken()
	if token == "" {
		return ErrAuthExpired
	}
	if !s.IsExpiringSoon(token) {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *clientSessionService) AuthorizedDo(ctx context.Context, call func(ctx context.Context) error) error {
	token, err := s.EnsureToken(ctx)
	if err != nil {
		return err
	}

	err = call(ctx)
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	// someone else may have refreshed while the call was in flight
	if s.AccessToken() == token {
		if refreshErr := s.Refresh(ctx); refreshErr != nil {
			return refreshErr
		}
	}

	return call(ctx)
}

func (s *clientSessionService) Validate(ctx context.Context) (models.User, error) {
	var user models.User
	err := s.AuthorizedDo(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.adapter.Me(ctx)
		return err
	})
	if err != nil {
		return models.User{}, fmt.Errorf("error validating session: %w", err)
	}

	s.mu.Lock()
	s.session.User = user
	session := s.session
	s.mu.Unlock()
	s.persist(ctx, session)

	return user, nil
}

func (s *clientSessionService) Login(ctx context.Context, username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	tokens, err := s.adapter.Login(ctx, username, password)
	if err != nil {
		return models.User{}, fmt.Errorf("error logging in: %w", mapLoginError(err))
	}

	s.adapter.SetToken(tokens.AccessToken)
	user, err := s.adapter.Me(ctx)
	if err != nil {
		s.adapter.SetToken("")
		return models.User{}, fmt.Errorf("error loading account: %w", err)
	}

	session := models.Session{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    expiryOf(tokens.AccessToken),
		User:         user,
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	s.persist(ctx, session)

	return user, nil
}

func (s *clientSessionService) Restore(ctx context.Context) (models.User, error) {
	session, err := s.sessions.Load(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrAuthExpired, err)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error restoring session: %w", err)
	}
	if session.IsZero() {
		return models.User{}, ErrAuthExpired
	}

	if session.User.UserID == 0 {
		if id, idErr := utils.ParseUserIDFromJWT(session.AccessToken); idErr == nil {
			session.User.UserID = id
		}
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	s.adapter.SetToken(session.AccessToken)

	return session.User, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()
	s.adapter.SetToken("")

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing stored session: %w", err)
	}
	return nil
}

func (s *clientSessionService) Subscribe(fn func(models.SessionEvent)) func() {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *clientSessionService) publish(ev models.SessionEvent) {
	s.subsMu.RLock()
	subs := make([]func(models.SessionEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}

func (s *clientSessionService) clear(ctx context.Context) {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()
	s.adapter.SetToken("")

	if err := s.sessions.Clear(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to clear stored session")
	}
}

// persist stores session; the in-memory copy stays authoritative if it fails.
func (s *clientSessionService) persist(ctx context.Context, session models.Session) {
	if err := s.sessions.Save(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientSessionService.persist").
			Msg("failed to persist session")
	}
}

func expiryOf(token string) time.Time {
	exp, err := utils.ExpiryFromJWT(token)
	if err != nil {
		return time.Time{}
	}
	return exp
}
