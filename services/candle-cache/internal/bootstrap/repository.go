package bootstrap

import (
	partitionDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/partition"
	partitionInfra "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/filestore/partition"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/kafka/publisher"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/marketdata"
	barArchive "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/questdb/bar"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/redis/bucket"
)

// Repository is the repository for the candle cache service.
type Repository struct {
	BucketRepository    bucket.Repository
	PartitionRepository partitionInfra.Repository
	// Fetcher is created with the usecases since it reads the hot settings.
	Fetcher             *marketdata.Client
	// Sinks are notified after every partition write.
	Sinks               []partitionDomain.Sink
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() error {
	codec, err := partitionInfra.NewCodec(b.Config.Partition.Format)
	if err != nil {
		return err
	}

	b.Repository.BucketRepository = bucket.NewStore(b.Redis, b.Logger)
	b.Repository.PartitionRepository = partitionInfra.NewFileStore(b.Config.Partition.Dir, codec, b.Logger)

	if len(b.Config.Kafka.Brokers) > 0 {
		b.Publisher = publisher.NewPublisher(b.Config.Kafka, b.Logger)
		b.Repository.Sinks = append(b.Repository.Sinks, b.Publisher)
	}
	if b.QuestDB != nil {
		b.Repository.Sinks = append(b.Repository.Sinks, barArchive.NewArchive(b.QuestDB, b.Logger))
	}

	return nil
}
