package admin

import (
	"context"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	adminDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/admin"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/filestore/partition"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/redis/bucket"
)

// Usecase is the admin usecase.
type Usecase struct {
	partitions partition.Repository
	buckets    bucket.Repository
	counters   []barv1.CounterSource
	logger     logger.Interface
}

var _ adminDomain.Usecase = (*Usecase)(nil)

// NewUsecase creates a new admin usecase reporting the counters of every given source.
func NewUsecase(
	partitions partition.Repository,
	buckets bucket.Repository,
	logger logger.Interface,
	counters ...barv1.CounterSource,
) *Usecase {
	return &Usecase{
		partitions: partitions,
		buckets:    buckets,
		counters:   counters,
		logger:     logger,
	}
}

func symbolOf(symbol string) (string, error) {
	symbol = barv1.NormalizeSymbol(symbol)
	if err := barv1.ValidateSymbol(symbol); err != nil {
		return "", err
	}
	return symbol, nil
}

func (u *Usecase) PartitionStats(ctx context.Context, symbol string) (partition.Stats, error) {
	symbol, err := symbolOf(symbol)
	if err != nil {
		return partition.Stats{}, err
	}

	stats, err := u.partitions.Stats(ctx, symbol)
	if err != nil {
		return partition.Stats{}, errors.TracerFromError(err)
	}
	return stats, nil
}

func (u *Usecase) ListPartitions(ctx context.Context, symbol string) ([]barv1.PartitionKey, error) {
	symbol, err := symbolOf(symbol)
	if err != nil {
		return nil, err
	}

	keys, err := u.partitions.List(ctx, symbol)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return keys, nil
}

func (u *Usecase) DeletePartitions(ctx context.Context, symbol string, filter barv1.PartitionFilter) ([]barv1.PartitionKey, error) {
	symbol, err := symbolOf(symbol)
	if err != nil {
		return nil, err
	}
	if filter.Month < 0 || filter.Month > 12 {
		return nil, &barv1.ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}
	if filter.Timeframe != "" {
		if err := barv1.ValidateTimeframe(filter.Timeframe); err != nil {
			return nil, err
		}
	}

	deleted, err := u.partitions.Delete(ctx, symbol, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	u.logger.InfoContext(ctx, "Admin deleted partitions",
		logger.Field{Key: "symbol", Value: symbol},
		logger.Field{Key: "count", Value: len(deleted)},
	)
	return deleted, nil
}

func (u *Usecase) DeleteAllPartitions(ctx context.Context) (int, error) {
	n, err := u.partitions.DeleteAll(ctx)
	if err != nil {
		return n, errors.TracerFromError(err)
	}

	u.logger.InfoContext(ctx, "Admin deleted all partitions", logger.Field{Key: "symbols", Value: n})
	return n, nil
}

func normalizeCacheFilter(filter barv1.CacheKeyFilter) (barv1.CacheKeyFilter, error) {
	if filter.Symbol != "" {
		symbol, err := symbolOf(filter.Symbol)
		if err != nil {
			return filter, err
		}
		filter.Symbol = symbol
	}
	if filter.Timeframe != "" {
		if err := barv1.ValidateTimeframe(filter.Timeframe); err != nil {
			return filter, err
		}
	}
	if filter.Week < 0 || filter.Week > 53 {
		return filter, &barv1.ValidationError{Field: "week", Reason: "must be between 1 and 53"}
	}
	if filter.Year < 0 {
		return filter, &barv1.ValidationError{Field: "year", Reason: "must be positive"}
	}
	return filter, nil
}

func (u *Usecase) ListCacheKeys(ctx context.Context, filter barv1.CacheKeyFilter) ([]bucket.KeyInfo, error) {
	filter, err := normalizeCacheFilter(filter)
	if err != nil {
		return nil, err
	}

	keys, err := u.buckets.ListKeys(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if keys == nil {
		keys = []bucket.KeyInfo{}
	}
	return keys, nil
}

// DeleteCacheKeys removes the matching week buckets. Their retention index entries are left in place
// and read as misses later.
func (u *Usecase) DeleteCacheKeys(ctx context.Context, filter barv1.CacheKeyFilter) (int64, error) {
	filter, err := normalizeCacheFilter(filter)
	if err != nil {
		return 0, err
	}

	n, err := u.buckets.DeleteKeys(ctx, filter)
	if err != nil {
		return 0, errors.TracerFromError(err)
	}

	u.logger.InfoContext(ctx, "Admin deleted cache keys", logger.Field{Key: "count", Value: n})
	return n, nil
}

func (u *Usecase) CacheInfo(ctx context.Context) (map[string]map[string]string, error) {
	info, err := u.buckets.Info(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return info, nil
}

// Counters sums the counters of every registered source.
func (u *Usecase) Counters() barv1.TierCounters {
	var counters barv1.TierCounters
	for _, source := range u.counters {
		source.CollectCounters(&counters)
	}
	return counters
}

func (u *Usecase) ResetCounters() {
	for _, source := range u.counters {
		source.ResetCounters()
	}
	u.logger.Info("Tier counters reset")
}
