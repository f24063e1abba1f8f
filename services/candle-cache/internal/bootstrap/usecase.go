package bootstrap

import (
	adminDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/admin"
	candleDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/candle"
	partitionDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/partition"
	settingsDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/settings"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/marketdata"
	adminUc "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/usecase/admin"
	candleUc "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/usecase/candle"
	partitionUc "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/usecase/partition"
	settingsUc "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/usecase/settings"
)

// Usecase is the usecase for the candle cache service.
type Usecase struct {
	SettingsUsecase  settingsDomain.Usecase
	PartitionUsecase partitionDomain.Usecase
	CandleUsecase    candleDomain.Usecase
	AdminUsecase     adminDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() error {
	settings, err := settingsUc.NewStore(settingsDomain.Values{
		DefaultTimeframe: b.Config.Cache.DefaultTimeframe,
		Feed:             b.Config.Upstream.Feed,
		BaseURL:          b.Config.Upstream.BaseURL,
		UpstreamTimeout:  b.Config.Upstream.Timeout,
		MaxWeek:          b.Config.Cache.MaxWeek,
	}, b.Logger)
	if err != nil {
		return err
	}
	b.Usecase.SettingsUsecase = settings

	fetcher := marketdata.NewClient(b.HTTPClient, b.Config.Upstream, settings, b.Logger)
	b.Repository.Fetcher = fetcher

	partitions := partitionUc.NewUsecase(
		b.Repository.PartitionRepository,
		fetcher,
		b.Logger,
		b.Config.Partition.BackfillConcurrency,
		b.Config.Partition.SinkTimeout,
		b.Repository.Sinks...,
	)
	candles := candleUc.NewUsecase(b.Repository.BucketRepository, partitions, settings, b.Logger)

	b.Usecase.PartitionUsecase = partitions
	b.Usecase.CandleUsecase = candles
	b.Usecase.AdminUsecase = adminUc.NewUsecase(
		b.Repository.PartitionRepository,
		b.Repository.BucketRepository,
		b.Logger,
		candles,
		partitions,
		fetcher,
	)

	return nil
}
