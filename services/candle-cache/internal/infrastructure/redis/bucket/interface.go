package bucket

import (
	"context"

	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// KeyInfo is one L1 key and its memory footprint in bytes.
type KeyInfo struct {
	Key   string `json:"key"`
	Bytes int64  `json:"bytes"`
}

// Repository stores week buckets in Redis and keeps the per symbol/timeframe retention index.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=bucket_mock
type Repository interface {
	// GetWeek returns the bucket bars and whether the bucket exists.
	GetWeek(ctx context.Context, key barv1.WeekKey) (barv1.List, bool, error)
	// PutWeek overwrites the bucket without expiry.
	PutWeek(ctx context.Context, key barv1.WeekKey, bars barv1.List) error
	// Retain pushes key to the front of its retention index, trims the index to maxWeek
	// and deletes the buckets that fell off. It returns the evicted bucket keys.
	Retain(ctx context.Context, key barv1.WeekKey, maxWeek int) ([]string, error)

	ListKeys(ctx context.Context, filter barv1.CacheKeyFilter) ([]KeyInfo, error)
	DeleteKeys(ctx context.Context, filter barv1.CacheKeyFilter) (int64, error)
	Info(ctx context.Context) (map[string]map[string]string, error)
}
