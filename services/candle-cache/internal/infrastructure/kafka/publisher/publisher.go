package publisher

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	partitionDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/partition"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/pkg/config"
	"github.com/segmentio/kafka-go"
)

// Publisher announces written partitions on a Kafka topic.
type Publisher struct {
	kafkaWriter MessageWriter
	logger      logger.Interface
	now         func() time.Time
}

var _ partitionDomain.Sink = (*Publisher)(nil)

// NewPublisher creates a new Kafka publisher for partition events.
func NewPublisher(config config.KafkaConfig, logger logger.Interface) *Publisher {
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Topic:                  config.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           config.BatchTimeout,
		WriteTimeout:           config.WriteTimeout,
		MaxAttempts:            config.MaxAttempts,
		AllowAutoTopicCreation: true,
	}

	return NewPublisherWithWriter(kafkaWriter, logger)
}

// NewPublisherWithWriter creates a publisher on top of an existing writer.
func NewPublisherWithWriter(kafkaWriter MessageWriter, logger logger.Interface) *Publisher {
	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      logger,
		now:         time.Now,
	}
}

func (p *Publisher) Name() string {
	return "kafka"
}

// OnPartitionWritten publishes one event keyed by the symbol so events of a symbol stay ordered.
func (p *Publisher) OnPartitionWritten(ctx context.Context, key barv1.PartitionKey, bars barv1.List) error {
	event := NewPartitionWrittenEvent(key, bars, p.now())

	value, err := json.Marshal(event)
	if err != nil {
		return errors.NewTracer("failed to encode partition event").Wrap(err)
	}

	msg := kafka.Message{
		Key:   []byte(key.Symbol),
		Value: value,
	}
	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "partition", Value: key.String()},
		)
		return errors.NewTracer("failed to publish partition event").Wrap(err)
	}
	return nil
}

// Close flushes pending messages.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
