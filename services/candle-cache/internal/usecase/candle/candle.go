package candle

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/interval"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	candleDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/candle"
	partitionDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/partition"
	settingsDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/settings"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/redis/bucket"
	"golang.org/x/sync/singleflight"
)

// Usecase resolves bar ranges week by week through L1, then L2/L3.
type Usecase struct {
	buckets    bucket.Repository
	partitions partitionDomain.Usecase
	settings   settingsDomain.Reader
	logger     logger.Interface

	group singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

var (
	_ candleDomain.Usecase = (*Usecase)(nil)
	_ barv1.CounterSource  = (*Usecase)(nil)
)

// NewUsecase creates a new candle usecase.
func NewUsecase(
	buckets bucket.Repository,
	partitions partitionDomain.Usecase,
	settings settingsDomain.Reader,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		buckets:    buckets,
		partitions: partitions,
		settings:   settings,
		logger:     logger,
	}
}

// GetBars implements candleDomain.Usecase.
func (u *Usecase) GetBars(ctx context.Context, symbol, timeframe string, start, end time.Time) (barv1.List, error) {
	symbol = barv1.NormalizeSymbol(symbol)
	if err := barv1.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	if timeframe == "" {
		timeframe = u.settings.DefaultTimeframe()
	}
	if err := barv1.ValidateTimeframe(timeframe); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, &barv1.ValidationError{Field: "start", Reason: "must not be after end"}
	}

	var acc barv1.List
	for _, w := range interval.WeeksBetween(start.UTC(), end.UTC()) {
		bars, err := u.week(ctx, barv1.NewWeekKey(symbol, timeframe, w), w)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		acc = append(acc, bars...)
	}

	return acc.Within(start, end).Sort(), nil
}

func (u *Usecase) week(ctx context.Context, key barv1.WeekKey, w interval.Week) (barv1.List, error) {
	bars, found, err := u.buckets.GetWeek(ctx, key)
	if err != nil {
		return nil, err
	}
	if found {
		u.hits.Add(1)
		return bars, nil
	}
	u.misses.Add(1)

	// concurrent misses share one populate that no single caller can cancel
	ch := u.group.DoChan(key.BucketKey(""), func() (any, error) {
		return u.populate(context.WithoutCancel(ctx), key, w)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(barv1.List), nil
	}
}

// populate loads the whole week, up to the next Monday 00:00, from L2 and writes it back into L1.
func (u *Usecase) populate(ctx context.Context, key barv1.WeekKey, w interval.Week) (barv1.List, error) {
	bars, err := u.partitions.GetRange(ctx, key.Symbol, key.Timeframe, w.Start, w.Next().Add(-time.Nanosecond))
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return barv1.List{}, nil
	}

	if err := u.buckets.PutWeek(ctx, key, bars); err != nil {
		return nil, err
	}

	evicted, err := u.buckets.Retain(ctx, key, u.settings.MaxWeek())
	if err != nil {
		return nil, err
	}
	if len(evicted) > 0 {
		u.logger.InfoContext(ctx, "Week buckets evicted",
			logger.Field{Key: "symbol", Value: key.Symbol},
			logger.Field{Key: "timeframe", Value: key.Timeframe},
			logger.Field{Key: "evicted", Value: evicted},
		)
	}

	return bars, nil
}

func (u *Usecase) CollectCounters(counters *barv1.TierCounters) {
	counters.L1Hits += u.hits.Load()
	counters.L1Misses += u.misses.Load()
}

func (u *Usecase) ResetCounters() {
	u.hits.Store(0)
	u.misses.Store(0)
}
