package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/candlecache/services/candle-cache/app/server"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	srv, err := server.NewServer(ctx, *cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		srv.Logger().Error(err)
		srv.Close(context.Background())
		os.Exit(1)
	}

	slog.Info("Candle cache stopped")
}
