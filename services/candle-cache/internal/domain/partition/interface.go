package partition

import (
	"context"
	"time"

	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// Usecase resolves bar ranges from month partitions, backfilling missing months from upstream.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=partition_mock
type Usecase interface {
	// GetRange returns the bars in [start, end], sorted ascending.
	GetRange(ctx context.Context, symbol, timeframe string, start, end time.Time) (barv1.List, error)
}

// Sink receives every month partition right after it was persisted.
type Sink interface {
	Name() string
	OnPartitionWritten(ctx context.Context, key barv1.PartitionKey, bars barv1.List) error
}
