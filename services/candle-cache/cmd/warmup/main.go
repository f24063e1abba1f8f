package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/app/warmup"
	settingsDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/settings"
	partitionInfra "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/filestore/partition"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/marketdata"
	partitionUc "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/usecase/partition"
	settingsUc "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/usecase/settings"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/pkg/config"
)

// warmup fills month partitions ahead of traffic without touching Redis.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	job, err := warmup.ParseJob(os.Args[1:])
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ParseLevel(cfg.App.LogLevel)))
	if err != nil {
		slog.Error("Failed to create logger", "error", err)
		os.Exit(1)
	}
	defer log.Sync()

	codec, err := partitionInfra.NewCodec(cfg.Partition.Format)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	settings, err := settingsUc.NewStore(settingsDomain.Values{
		DefaultTimeframe: cfg.Cache.DefaultTimeframe,
		Feed:             cfg.Upstream.Feed,
		BaseURL:          cfg.Upstream.BaseURL,
		UpstreamTimeout:  cfg.Upstream.Timeout,
		MaxWeek:          cfg.Cache.MaxWeek,
	}, log)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	fetcher := marketdata.NewClient(&http.Client{}, cfg.Upstream, settings, log)
	partitions := partitionUc.NewUsecase(
		partitionInfra.NewFileStore(cfg.Partition.Dir, codec, log),
		fetcher,
		log,
		cfg.Partition.BackfillConcurrency,
		cfg.Partition.SinkTimeout,
	)

	if _, err := warmup.Run(ctx, partitions, job, log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
