package bar

import (
	"context"

	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// Repository archives month partitions into QuestDB.
type Repository interface {
	// EnsureSchema creates the archive table when it does not exist.
	EnsureSchema(ctx context.Context) error
	// StoreBatch copies the bars of one partition. Rows are deduplicated on (ts, symbol, timeframe).
	StoreBatch(ctx context.Context, key barv1.PartitionKey, bars barv1.List) error
}
