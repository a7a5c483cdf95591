package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/client"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("mop-client").Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	log := logger.NewClientLogger("mop-client", cfg.App.LogFile)
	log.Info().
		Str("version", cfg.App.Version).
		Str("commit", buildInfo.BuildCommit()).
		Str("api", cfg.Adapter.HTTPAddress).
		Msg("starting client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
