package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/app"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/realtime"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/service"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/store"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/workers"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	storages *store.ClientStorages
	probe    *workers.NetworkProbe
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp opens local storage and wires the client services. The returned App
// owns the storages and closes them when Run returns.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.Component("store"))
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	newChannel := func(tokens service.ClientSessionService) service.RealtimeChannel {
		return realtime.NewChannel(cfg.Realtime, cfg.Adapter.WSAddress, tokens, log.Component("realtime"),
			realtime.WithDialer(realtime.NewWebsocketDialer(cfg.Adapter.RequestTimeout)))
	}

	services := service.NewClientServices(storages, serverAdapter, newChannel, NewLogRenderer(log.Component("renderer")), cfg, log)

	probe, err := workers.NewNetworkProbe(cfg.Adapter.HTTPAddress, cfg.Workers.ProbeInterval, services.SyncService.OnOnline, log.Component("probe"))
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create network probe: %w", err)
	}

	return &App{
		cfg:      cfg,
		services: services,
		storages: storages,
		probe:    probe,
		workers:  workers.NewWorkers(probe),
		logger:   log,
	}, nil
}

// Run signs in, starts synchronization and background workers, and blocks
// until ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Error().Err(err).Msg("error closing storages")
		}
	}()

	if err := a.start(ctx); err != nil {
		a.logger.Error().Err(err).Msg(app.StatusMessage(err))
		return err
	}
	defer a.services.SyncService.Stop()

	a.workers.Run(ctx)

	<-ctx.Done()
	<-a.probe.Done()
	a.logger.Info().Msg("client stopped")
	return nil
}

// start restores the persisted session or signs in with the configured
// credentials, then starts the sync coordinator. A session that the server no
// longer accepts gets exactly one password sign-in.
func (a *App) start(ctx context.Context) error {
	passwordUsed, err := a.signIn(ctx)
	if err != nil {
		return err
	}

	err = a.services.SyncService.Start(ctx)
	if !errors.Is(err, service.ErrAuthExpired) || passwordUsed {
		return err
	}

	if _, err = a.login(ctx); err != nil {
		return err
	}
	return a.services.SyncService.Start(ctx)
}

func (a *App) signIn(ctx context.Context) (passwordUsed bool, err error) {
	user, err := a.services.SessionService.Restore(ctx)
	if err == nil {
		a.logger.Info().Int64("user_id", user.UserID).Msg("session restored")
		return false, nil
	}
	if !errors.Is(err, service.ErrAuthExpired) {
		return false, fmt.Errorf("restore session: %w", err)
	}

	return a.login(ctx)
}

func (a *App) login(ctx context.Context) (bool, error) {
	if a.cfg.App.Username == "" || a.cfg.App.Password == "" {
		return false, fmt.Errorf("no stored session and no credentials configured: %w", service.ErrAuthExpired)
	}

	user, err := a.services.SessionService.Login(ctx, a.cfg.App.Username, a.cfg.App.Password)
	if err != nil {
		return false, err
	}
	a.logger.Info().Int64("user_id", user.UserID).Str("username", user.Username).Msg("signed in")
	return true, nil
}
