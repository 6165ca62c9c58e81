package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/park285/secret-santa-bot-go/internal/common/bootstrap"
	"github.com/park285/secret-santa-bot-go/internal/common/dbutil"
	"github.com/park285/secret-santa-bot-go/internal/common/di"
	"github.com/park285/secret-santa-bot-go/internal/common/httpserver"
	"github.com/park285/secret-santa-bot-go/internal/common/messageprovider"
	commonmq "github.com/park285/secret-santa-bot-go/internal/common/mq"
	santaassets "github.com/park285/secret-santa-bot-go/internal/santa/assets"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
	"github.com/park285/secret-santa-bot-go/internal/santa/httpapi"
	santamq "github.com/park285/secret-santa-bot-go/internal/santa/mq"
	santaredis "github.com/park285/secret-santa-bot-go/internal/santa/redis"
	"github.com/park285/secret-santa-bot-go/internal/santa/repository"
	santasecurity "github.com/park285/secret-santa-bot-go/internal/santa/security"
	santasvc "github.com/park285/secret-santa-bot-go/internal/santa/service"
)

type santaStores struct {
	lockManager           *santaredis.GameLockManager
	processingLockService *santaredis.ProcessingLockService
}

func newSantaStores(client di.DataValkeyClient, logger *slog.Logger) *santaStores {
	return &santaStores{
		lockManager:           santaredis.NewGameLockManager(client.Client, logger),
		processingLockService: santaredis.NewProcessingLockService(client.Client, logger),
	}
}

type santaServices struct {
	gameService    *santasvc.GameService
	accessControl  *santasecurity.AccessControl
	commandHandler *santamq.GameCommandHandler
	commandParser  *santamq.CommandParser
	messageSender  *santamq.MessageSender
	replyPublisher *santamq.ReplyPublisher
}

func newSantaServices(
	cfg *santaconfig.Config,
	repo *repository.Repository,
	msgProvider *messageprovider.Provider,
	replyPublisher *santamq.ReplyPublisher,
	stores *santaStores,
	logger *slog.Logger,
) *santaServices {
	accessControl := santasecurity.NewAccessControl(cfg.Access)
	notifier := santamq.NewDirectMessageSender(msgProvider, replyPublisher.Publish)
	gameService := santasvc.NewGameService(repo, accessControl, stores.lockManager, notifier, logger)

	commandHandler := santamq.NewGameCommandHandler(gameService, msgProvider, logger)
	commandParser := santamq.NewCommandParser(cfg.Commands.Prefix)
	messageSender := santamq.NewMessageSender(msgProvider, replyPublisher.Publish)

	return &santaServices{
		gameService:    gameService,
		accessControl:  accessControl,
		commandHandler: commandHandler,
		commandParser:  commandParser,
		messageSender:  messageSender,
		replyPublisher: replyPublisher,
	}
}

func newSantaGameService(services *santaServices) *santasvc.GameService {
	if services == nil {
		return nil
	}
	return services.gameService
}

func newSantaReplyPublisher(cfg *santaconfig.Config, mqValkey di.MQValkeyClient, logger *slog.Logger) *santamq.ReplyPublisher {
	return commonmq.NewBotReplyPublisher(
		mqValkey.Client,
		logger,
		cfg.Valkey.ReplyStreamKey,
		cfg.Valkey.StreamMaxLen,
	)
}

func newSantaStreamConsumer(cfg *santaconfig.Config, mqValkey di.MQValkeyClient, logger *slog.Logger) *commonmq.StreamConsumer {
	return commonmq.NewBotStreamConsumer(
		mqValkey.Client,
		logger,
		cfg.Valkey.StreamKey,
		cfg.Valkey.ConsumerGroup,
		cfg.Valkey.ConsumerName,
		cfg.Valkey.BatchSize,
		cfg.Valkey.BlockTimeout,
		cfg.Valkey.Concurrency,
		cfg.Valkey.ResetConsumerGroupOnStartup,
	)
}

type santaMQPipeline struct {
	streamConsumer *commonmq.StreamConsumer
	streamHandler  *santamq.StreamMessageHandler
}

func newSantaMQPipeline(
	msgProvider *messageprovider.Provider,
	stores *santaStores,
	services *santaServices,
	streamConsumer *commonmq.StreamConsumer,
	logger *slog.Logger,
) *santaMQPipeline {
	gameMessageService := santamq.NewGameMessageService(
		services.commandHandler,
		services.messageSender,
		msgProvider,
		services.accessControl,
		services.commandParser,
		stores.processingLockService,
		logger,
	)

	streamHandler := santamq.NewStreamMessageHandler(gameMessageService, logger)
	return &santaMQPipeline{
		streamConsumer: streamConsumer,
		streamHandler:  streamHandler,
	}
}

func newSantaDataRedis(
	ctx context.Context,
	cfg *santaconfig.Config,
	logger *slog.Logger,
) (di.DataValkeyClient, func(), error) {
	client, closeFn, err := bootstrap.NewAndPingDataValkeyClient(ctx, cfg.Redis, logger)
	if err != nil {
		return di.DataValkeyClient{}, nil, fmt.Errorf("init valkey failed: %w", err)
	}
	return client, closeFn, nil
}

func newSantaMQValkey(
	ctx context.Context,
	cfg *santaconfig.Config,
	logger *slog.Logger,
) (di.MQValkeyClient, func(), error) {
	client, closeFn, err := bootstrap.NewAndPingMQValkeyClient(ctx, cfg.Valkey, logger)
	if err != nil {
		return di.MQValkeyClient{}, nil, fmt.Errorf("init valkey mq failed: %w", err)
	}
	return client, closeFn, nil
}

func newSantaMessageProvider(cfg *santaconfig.Config) (*messageprovider.Provider, error) {
	msgYAML := strings.ReplaceAll(santaassets.GameMessagesYAML, "/산타", cfg.Commands.Prefix)
	provider, err := messageprovider.NewFromYAML(msgYAML)
	if err != nil {
		return nil, fmt.Errorf("load messages failed: %w", err)
	}
	return provider, nil
}

func openPostgres(ctx context.Context, cfg santaconfig.PostgresConfig) (*gorm.DB, *sql.DB, error) {
	host := cfg.Host
	if cfg.SocketPath != "" {
		host = cfg.SocketPath
	}
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("gorm open failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql db failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, nil, fmt.Errorf("db ping failed: %w", err)
	}

	return db, sqlDB, nil
}

func newSantaRepository(
	ctx context.Context,
	cfg *santaconfig.Config,
	logger *slog.Logger,
) (*repository.Repository, func(), error) {
	db, sqlDB, err := dbutil.OpenWithRetry(ctx, func(ctx context.Context) (*gorm.DB, *sql.DB, error) {
		return openPostgres(ctx, cfg.Postgres)
	}, dbutil.DefaultRetryConfig(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres failed: %w", err)
	}

	cleanup := func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Warn("postgres_close_failed", "err", closeErr)
		}
	}

	repo := repository.New(db)
	if err := repo.AutoMigrate(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("auto migrate failed: %w", err)
	}
	return repo, cleanup, nil
}

func newSantaHTTPMux(
	cfg *santaconfig.Config,
	repo *repository.Repository,
	gameService *santasvc.GameService,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	httpapi.Register(mux, gameService, logger)
	httpapi.RegisterAdminRoutes(mux, httpapi.AdminDeps{
		GameService: gameService,
		Repo:        repo,
		APIKey:      cfg.Admin.APIKey,
		Logger:      logger,
	})
	return mux
}

func newSantaHTTPServer(cfg *santaconfig.Config, mux *http.ServeMux) *http.Server {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return httpserver.NewServer(addr, mux, httpserver.ServerOptions{
		UseH2C:            true,
		ReadHeaderTimeout: cfg.ServerTuning.ReadHeaderTimeout,
		IdleTimeout:       cfg.ServerTuning.IdleTimeout,
		MaxHeaderBytes:    cfg.ServerTuning.MaxHeaderBytes,
	})
}

func newSantaServerApp(
	logger *slog.Logger,
	server *http.Server,
	mqPipeline *santaMQPipeline,
) *bootstrap.ServerApp {
	return bootstrap.NewServerApp(
		"santa",
		logger,
		server,
		10*time.Second,
		bootstrap.BackgroundTask{
			Name:        "mq_consumer",
			ErrorLogKey: "mq_consumer_failed",
			Run: func(ctx context.Context) error {
				return mqPipeline.streamConsumer.Run(ctx, mqPipeline.streamHandler.HandleStreamMessage)
			},
		},
	)
}
