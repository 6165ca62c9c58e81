package app

import (
	"context"
	"log/slog"

	"github.com/park285/secret-santa-bot-go/internal/common/bootstrap"
	"github.com/park285/secret-santa-bot-go/internal/santa/config"
)

// Initialize: Secret Santa 애플리케이션 의존성을 초기화하고 ServerApp을 반환합니다.
func Initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*bootstrap.ServerApp, func(), error) {
	if cfg.Telemetry.Enabled {
		logger = slog.New(bootstrap.NewOTelHandler(logger.Handler()))
	}

	msgProvider, err := newSantaMessageProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	mqValkeyClient, cleanupMQValkey, err := newSantaMQValkey(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	replyPublisher := newSantaReplyPublisher(cfg, mqValkeyClient, logger)

	dataValkeyClient, cleanupDataValkey, err := newSantaDataRedis(ctx, cfg, logger)
	if err != nil {
		cleanupMQValkey()
		return nil, nil, err
	}

	repo, cleanupRepo, err := newSantaRepository(ctx, cfg, logger)
	if err != nil {
		cleanupDataValkey()
		cleanupMQValkey()
		return nil, nil, err
	}

	stores := newSantaStores(dataValkeyClient, logger)
	services := newSantaServices(cfg, repo, msgProvider, replyPublisher, stores, logger)
	gameService := newSantaGameService(services)

	httpMux := newSantaHTTPMux(cfg, repo, gameService, logger)
	httpServer := newSantaHTTPServer(cfg, httpMux)

	streamConsumer := newSantaStreamConsumer(cfg, mqValkeyClient, logger)
	mqPipeline := newSantaMQPipeline(msgProvider, stores, services, streamConsumer, logger)

	serverApp := newSantaServerApp(logger, httpServer, mqPipeline)

	cleanup := func() {
		cleanupRepo()
		cleanupDataValkey()
		cleanupMQValkey()
	}

	return serverApp, cleanup, nil
}
