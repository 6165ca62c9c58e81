//go:build wireinject

package app

import (
	"context"
	"log/slog"

	"github.com/google/wire"

	"github.com/park285/secret-santa-bot-go/internal/common/bootstrap"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
)

//go:generate go run github.com/google/wire/cmd/wire@v0.7.0
func Initialize(
	ctx context.Context,
	cfg *santaconfig.Config,
	logger *slog.Logger,
) (*bootstrap.ServerApp, func(), error) {
	wire.Build(
		santaProviderSet,
	)
	return nil, nil, nil
}
