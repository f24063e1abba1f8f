package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/questdb"
	"github.com/muhammadchandra19/candlecache/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App       AppConfig       `envPrefix:"APP_"`
	Redis     redis.Config    `envPrefix:"REDIS_"`
	Cache     CacheConfig     `envPrefix:"CACHE_"`
	Partition PartitionConfig `envPrefix:"PARTITION_"`
	Upstream  UpstreamConfig  `envPrefix:"UPSTREAM_"`
	Kafka     KafkaConfig     `envPrefix:"KAFKA_"`
	QuestDB   questdb.Config  `envPrefix:"QUESTDB_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name            string        `env:"NAME" envDefault:"candle-cache"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	Port            int           `env:"PORT" envDefault:"8080"`
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"8880"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// CacheConfig configures the week bucket tier.
type CacheConfig struct {
	MaxWeek          int    `env:"MAX_WEEK" envDefault:"8"`
	DefaultTimeframe string `env:"DEFAULT_TIMEFRAME" envDefault:"1Day"`
}

// PartitionConfig configures the month partition tier.
type PartitionConfig struct {
	Dir                 string        `env:"DIR" envDefault:"data/bars"`
	Format              string        `env:"FORMAT" envDefault:"json"`
	BackfillConcurrency int           `env:"BACKFILL_CONCURRENCY" envDefault:"4"`
	SinkTimeout         time.Duration `env:"SINK_TIMEOUT" envDefault:"2s"`
}

// UpstreamConfig configures the market data API.
type UpstreamConfig struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://data.alpaca.markets"`
	KeyID      string        `env:"KEY_ID"`
	SecretKey  string        `env:"SECRET_KEY"`
	Feed       string        `env:"FEED" envDefault:"iex"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
	PageLimit  int           `env:"PAGE_LIMIT" envDefault:"10000"`
	Adjustment string        `env:"ADJUSTMENT" envDefault:"raw"`
	Currency   string        `env:"CURRENCY" envDefault:"USD"`
}

// KafkaConfig configures the partition event publisher. No brokers disables publishing.
type KafkaConfig struct {
	Brokers      []string      `env:"BROKERS" envSeparator:","`
	Topic        string        `env:"TOPIC" envDefault:"candle.partitions"`
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"10ms"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"2s"`
	MaxAttempts  int           `env:"MAX_ATTEMPTS" envDefault:"3"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.NewTracer("failed to parse config").Wrap(err)
	}

	return cfg, nil
}
