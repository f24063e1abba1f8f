package partition

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/interval"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	partitionDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/partition"
	partitionInfra "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/filestore/partition"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/marketdata"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Usecase is the month partition tier.
type Usecase struct {
	repository  partitionInfra.Repository
	fetcher     marketdata.Fetcher
	sinks       []partitionDomain.Sink
	logger      logger.Interface
	concurrency int
	sinkTimeout time.Duration

	group singleflight.Group

	hits         atomic.Int64
	misses       atomic.Int64
	sinkFailures atomic.Int64
}

var (
	_ partitionDomain.Usecase = (*Usecase)(nil)
	_ barv1.CounterSource     = (*Usecase)(nil)
)

const defaultSinkTimeout = 2 * time.Second

// NewUsecase creates a new partition usecase. At most concurrency months are backfilled in parallel
// per call and every sink notification is cut off after sinkTimeout.
func NewUsecase(
	repository partitionInfra.Repository,
	fetcher marketdata.Fetcher,
	logger logger.Interface,
	concurrency int,
	sinkTimeout time.Duration,
	sinks ...partitionDomain.Sink,
) *Usecase {
	if concurrency < 1 {
		concurrency = 1
	}
	if sinkTimeout <= 0 {
		sinkTimeout = defaultSinkTimeout
	}
	return &Usecase{
		repository:  repository,
		fetcher:     fetcher,
		sinks:       sinks,
		logger:      logger,
		concurrency: concurrency,
		sinkTimeout: sinkTimeout,
	}
}

// GetRange reads every month intersecting [start, end], backfills the missing ones and
// returns the bars inside the exact bounds, sorted ascending.
func (u *Usecase) GetRange(ctx context.Context, symbol, timeframe string, start, end time.Time) (barv1.List, error) {
	var (
		acc     barv1.List
		missing []interval.Month
	)

	for _, m := range interval.MonthsBetween(start, end) {
		key := barv1.PartitionKey{Symbol: symbol, Timeframe: timeframe, Year: m.Year, Month: m.Month}

		bars, found, err := u.repository.Read(ctx, key)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		if !found {
			u.misses.Add(1)
			missing = append(missing, m)
			continue
		}

		u.hits.Add(1)
		acc = append(acc, bars...)
	}

	if len(missing) > 0 {
		fetched, err := u.backfill(ctx, symbol, timeframe, missing)
		if err != nil {
			return nil, err
		}
		acc = append(acc, fetched...)
	}

	return acc.Sort().Between(start, end), nil
}

func (u *Usecase) backfill(ctx context.Context, symbol, timeframe string, months []interval.Month) (barv1.List, error) {
	results := make([]barv1.List, len(months))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, m := range months {
		g.Go(func() error {
			bars, err := u.backfillMonth(gctx, symbol, timeframe, m)
			if err != nil {
				return err
			}
			results[i] = bars
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	var out barv1.List
	for _, bars := range results {
		out = append(out, bars...)
	}
	return out, nil
}

// backfillMonth fetches one whole month, persists it and notifies sinks. Concurrent calls for
// the same partition share a single upstream fetch.
func (u *Usecase) backfillMonth(ctx context.Context, symbol, timeframe string, m interval.Month) (barv1.List, error) {
	key := barv1.PartitionKey{Symbol: symbol, Timeframe: timeframe, Year: m.Year, Month: m.Month}

	// the fetch is shared by every waiter, so it is detached from the cancellation of the first one
	ch := u.group.DoChan(key.String(), func() (any, error) {
		return u.fetchMonth(context.WithoutCancel(ctx), key, m)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			u.logger.DebugContext(ctx, "Backfill shared with a concurrent request",
				logger.Field{Key: "partition", Value: key.String()},
			)
		}
		return res.Val.(barv1.List), nil
	}
}

func (u *Usecase) fetchMonth(ctx context.Context, key barv1.PartitionKey, m interval.Month) (barv1.List, error) {
	bars, err := u.fetcher.FetchMonth(ctx, key.Symbol, key.Timeframe, m.Year, m.Month)
	if err != nil {
		return nil, err
	}

	// bars outside the month would otherwise clobber a neighbouring partition
	bars = bars.InWindow(m.Start, m.Next())
	if len(bars) == 0 {
		u.logger.InfoContext(ctx, "Upstream has no bars for month",
			logger.Field{Key: "partition", Value: key.String()},
		)
		return barv1.List{}, nil
	}

	if _, err := u.repository.Write(ctx, key.Symbol, key.Timeframe, bars); err != nil {
		return nil, err
	}
	u.notify(ctx, key, bars)

	return bars, nil
}

// notify hands the partition to every sink, each bounded by the sink timeout.
func (u *Usecase) notify(ctx context.Context, key barv1.PartitionKey, bars barv1.List) {
	for _, sink := range u.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, u.sinkTimeout)
		err := sink.OnPartitionWritten(sinkCtx, key, bars)
		cancel()
		if err != nil {
			u.sinkFailures.Add(1)
			u.logger.ErrorContext(ctx, errors.TracerFromError(err),
				logger.Field{Key: "sink", Value: sink.Name()},
				logger.Field{Key: "partition", Value: key.String()},
			)
		}
	}
}

func (u *Usecase) CollectCounters(counters *barv1.TierCounters) {
	counters.L2Hits += u.hits.Load()
	counters.L2Misses += u.misses.Load()
	counters.SinkFailures += u.sinkFailures.Load()
}

func (u *Usecase) ResetCounters() {
	u.hits.Store(0)
	u.misses.Store(0)
	u.sinkFailures.Store(0)
}
