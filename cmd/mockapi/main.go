// Command mockapi serves the development feed backend: short videos, posts
// and the hot-search RSS feed.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/config"
	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/mockapi"
)

func main() {
	dotEnvErr := config.LoadDotEnv(".env")
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	if dotEnvErr != nil {
		logger.Warn("ignoring .env", zap.Error(dotEnvErr))
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("mock api stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mockapi.New(logger).Start(ctx, cfg.MockAPIAddr)
}
