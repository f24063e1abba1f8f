package bar

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/pkg/questdb"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	partitionDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/partition"
)

const tableName = "candle_bars"

const createTableQuery = `CREATE TABLE IF NOT EXISTS candle_bars (
	ts TIMESTAMP,
	symbol SYMBOL,
	timeframe SYMBOL,
	open DOUBLE,
	high DOUBLE,
	low DOUBLE,
	close DOUBLE,
	volume DOUBLE,
	trade_count LONG,
	vwap DOUBLE
) TIMESTAMP(ts) PARTITION BY MONTH WAL DEDUP UPSERT KEYS(ts, symbol, timeframe)`

var columns = []string{"ts", "symbol", "timeframe", "open", "high", "low", "close", "volume", "trade_count", "vwap"}

// Archive is the QuestDB backed bar archive. It doubles as a partition sink.
type Archive struct {
	client questdb.QuestDBClient
	logger logger.Interface
}

var (
	_ Repository           = (*Archive)(nil)
	_ partitionDomain.Sink = (*Archive)(nil)
)

// NewArchive creates a new Archive.
func NewArchive(client questdb.QuestDBClient, logger logger.Interface) *Archive {
	return &Archive{
		client: client,
		logger: logger,
	}
}

func (a *Archive) EnsureSchema(ctx context.Context) error {
	if err := a.client.Exec(ctx, createTableQuery); err != nil {
		return errors.NewTracer("failed to create candle_bars table").Wrap(err)
	}
	return nil
}

func (a *Archive) StoreBatch(ctx context.Context, key barv1.PartitionKey, bars barv1.List) error {
	if len(bars) == 0 {
		return nil
	}

	n, err := a.client.CopyFrom(
		ctx,
		pgx.Identifier{tableName},
		columns,
		pgx.CopyFromSlice(len(bars), func(i int) ([]any, error) {
			b := bars[i]
			return []any{
				b.Timestamp.UTC(),
				key.Symbol,
				key.Timeframe,
				b.Open,
				b.High,
				b.Low,
				b.Close,
				b.Volume,
				b.TradeCount,
				b.VWAP,
			}, nil
		}),
	)
	if err != nil {
		return errors.NewTracer("failed to archive partition " + key.String()).Wrap(err)
	}

	a.logger.Debug("Partition archived",
		logger.Field{Key: "partition", Value: key.String()},
		logger.Field{Key: "rows", Value: n},
	)
	return nil
}

func (a *Archive) Name() string {
	return "questdb"
}

func (a *Archive) OnPartitionWritten(ctx context.Context, key barv1.PartitionKey, bars barv1.List) error {
	return a.StoreBatch(ctx, key, bars)
}
