package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/park285/secret-santa-bot-go/internal/common/bootstrap"
	"github.com/park285/secret-santa-bot-go/internal/common/health"
	santaapp "github.com/park285/secret-santa-bot-go/internal/santa/app"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
)

// Version: 빌드 시 ldflags로 주입됨 (예: -ldflags="-X main.Version=1.0.0")
var Version = "dev"

func main() {
	health.Init(Version)

	logger := bootstrap.NewLogger()
	slog.SetDefault(logger)

	finalLogger, err := bootstrap.RunBotEntrypoint(
		context.Background(),
		logger,
		"santa.log",
		santaconfig.LoadFromEnv,
		func(cfg *santaconfig.Config) santaconfig.LogConfig { return cfg.Log },
		santaapp.Initialize,
	)
	if err != nil {
		logger = finalLogger
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}
