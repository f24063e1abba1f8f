package admin

import (
	"context"

	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/filestore/partition"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/redis/bucket"
)

// Usecase inspects and clears the cache tiers. Deletions bypass the retention index.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=admin_mock
type Usecase interface {
	PartitionStats(ctx context.Context, symbol string) (partition.Stats, error)
	ListPartitions(ctx context.Context, symbol string) ([]barv1.PartitionKey, error)
	DeletePartitions(ctx context.Context, symbol string, filter barv1.PartitionFilter) ([]barv1.PartitionKey, error)
	// DeleteAllPartitions returns the number of symbols whose partitions were removed.
	DeleteAllPartitions(ctx context.Context) (int, error)

	ListCacheKeys(ctx context.Context, filter barv1.CacheKeyFilter) ([]bucket.KeyInfo, error)
	DeleteCacheKeys(ctx context.Context, filter barv1.CacheKeyFilter) (int64, error)
	CacheInfo(ctx context.Context) (map[string]map[string]string, error)

	Counters() barv1.TierCounters
	ResetCounters()
}
