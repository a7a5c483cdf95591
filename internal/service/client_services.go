package service

import (
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/config"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/store"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/utils"
)

// ChannelFactory opens the realtime channel. tokens supplies the access token
// for every dial.
type ChannelFactory func(tokens ClientSessionService) RealtimeChannel

type ClientServices struct {
	SessionService  ClientSessionService
	SessionJob      ClientSessionJob
	ResourceService ClientResourceService
	TransferService ClientTransferService
	SyncService     ClientSyncService
	Channel         RealtimeChannel
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	newChannel ChannelFactory,
	renderer Renderer,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	sessionSvc := NewClientSessionService(serverAdapter, storages.Sessions, cfg.Session, logger.Component("session"))
	sessionJob := NewClientSessionJob(sessionSvc)
	channel := newChannel(sessionSvc)
	resourceSvc := NewClientResourceService(sessionSvc, serverAdapter, logger.Component("resources"))
	transferSvc := NewClientTransferService(sessionSvc, serverAdapter, channel, utils.NewUUIDGenerator(), cfg.Transfer, logger.Component("transfer"))
	syncSvc := NewClientSyncService(
		sessionSvc, sessionJob, storages.Cache, serverAdapter, channel,
		transferSvc, resourceSvc, renderer, cfg.Session, logger.Component("sync"),
	)

	return &ClientServices{
		SessionService:  sessionSvc,
		SessionJob:      sessionJob,
		ResourceService: resourceSvc,
		TransferService: transferSvc,
		SyncService:     syncSvc,
		Channel:         channel,
	}
}
