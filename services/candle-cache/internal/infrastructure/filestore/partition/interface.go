package partition

import (
	"context"

	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// Stats summarises the partition files stored for one symbol.
type Stats struct {
	Symbol     string `json:"symbol"`
	Files      int    `json:"files"`
	TotalBytes int64  `json:"total_bytes"`
}

// Repository reads and writes month partitions under {root}/{SYMBOL}/YYYY-MM_<timeframe>.<ext>.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=partition_mock
type Repository interface {
	// Read returns the partition bars and whether the partition exists.
	Read(ctx context.Context, key barv1.PartitionKey) (barv1.List, bool, error)
	// Write groups bars by calendar month and overwrites one partition per month.
	Write(ctx context.Context, symbol, timeframe string, bars barv1.List) ([]barv1.PartitionKey, error)

	Symbols(ctx context.Context) ([]string, error)
	List(ctx context.Context, symbol string) ([]barv1.PartitionKey, error)
	Stats(ctx context.Context, symbol string) (Stats, error)
	Delete(ctx context.Context, symbol string, filter barv1.PartitionFilter) ([]barv1.PartitionKey, error)
	DeleteAll(ctx context.Context) (int, error)
}
