package redis

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type client struct {
	logger  logger.Interface
	config  *Config
	cmdable redis.Cmdable
}

// NewClient creates a new Redis client with the provided logger and configuration.
func NewClient(logger logger.Interface, config *Config) Client {
	return &client{
		logger: logger,
		config: config,
	}
}

func (c *client) validate() error {
	if c.config == nil {
		return errors.NewErrorDetails("Redis config is nil", string(errors.RedisConfigError), "connect")
	}

	if len(c.config.Addrs) == 0 {
		return errors.NewErrorDetails("Redis addresses are empty", string(errors.RedisConfigError), "connect")
	}

	if c.config.Mode != Standalone && c.config.Mode != Cluster {
		return errors.NewErrorDetails("Invalid Redis mode", string(errors.RedisConfigError), "connect")
	}

	if c.config.ConnectTimeout <= 0 {
		return errors.NewErrorDetails("Invalid Redis connect timeout", string(errors.RedisConfigError), "connect")
	}

	if c.config.PoolSize <= 0 {
		return errors.NewErrorDetails("Invalid Redis pool size", string(errors.RedisConfigError), "connect")
	}

	if c.config.MaxIdleConns < 0 {
		return errors.NewErrorDetails("Invalid Redis max idle connections", string(errors.RedisConfigError), "connect")
	}

	if c.config.ConnMaxLifetime <= 0 {
		return errors.NewErrorDetails("Invalid Redis connection max lifetime", string(errors.RedisConfigError), "connect")
	}

	if c.config.ConnMaxIdleTime <= 0 {
		return errors.NewErrorDetails("Invalid Redis connection max idle time", string(errors.RedisConfigError), "connect")
	}

	if c.config.PoolTimeout <= 0 {
		return errors.NewErrorDetails("Invalid Redis pool timeout", string(errors.RedisConfigError), "connect")
	}

	if c.config.MaxRetries < 0 {
		return errors.NewErrorDetails("Invalid Redis max retries", string(errors.RedisConfigError), "connect")
	}

	if c.config.MinRetryBackoff < 0 || c.config.MaxRetryBackoff < 0 {
		return errors.NewErrorDetails("Invalid Redis retry backoff", string(errors.RedisConfigError), "connect")
	}

	return nil
}

func (c *client) Connect(ctx context.Context) error {
	if err := c.validate(); err != nil {
		return err
	}

	switch c.config.Mode {
	case Standalone:
		c.cmdable = redis.NewClient(&redis.Options{
			Addr:            c.config.Addrs[0],
			Username:        c.config.Username,
			Password:        c.config.Password,
			DB:              c.config.DB,
			MaxRetries:      c.config.MaxRetries,
			MinRetryBackoff: c.config.MinRetryBackoff,
			MaxRetryBackoff: c.config.MaxRetryBackoff,
			DialTimeout:     c.config.ConnectTimeout,
			ReadTimeout:     c.config.ConnectTimeout,
			WriteTimeout:    c.config.ConnectTimeout,
			PoolSize:        c.config.PoolSize,
			MinIdleConns:    c.config.MinIdleConns,
			MaxIdleConns:    c.config.MaxIdleConns,
			ConnMaxLifetime: c.config.ConnMaxLifetime,
			ConnMaxIdleTime: c.config.ConnMaxIdleTime,
			PoolTimeout:     c.config.PoolTimeout,
		})
	case Cluster:
		c.cmdable = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           c.config.Addrs,
			Username:        c.config.Username,
			Password:        c.config.Password,
			MaxRetries:      c.config.MaxRetries,
			MinRetryBackoff: c.config.MinRetryBackoff,
			MaxRetryBackoff: c.config.MaxRetryBackoff,
			DialTimeout:     c.config.ConnectTimeout,
			ReadTimeout:     c.config.ConnectTimeout,
			WriteTimeout:    c.config.ConnectTimeout,
			PoolSize:        c.config.PoolSize,
			MinIdleConns:    c.config.MinIdleConns,
			MaxIdleConns:    c.config.MaxIdleConns,
			ConnMaxLifetime: c.config.ConnMaxLifetime,
			ConnMaxIdleTime: c.config.ConnMaxIdleTime,
			PoolTimeout:     c.config.PoolTimeout,
		})
	}

	if err := c.cmdable.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetailsWithCause("Failed to connect to Redis", string(errors.RedisConnectionError), "connect", err)
	}
	return nil
}

func (c *client) Reconnect(ctx context.Context) bool {
	baseDelay := c.config.MinRetryBackoff
	maxDelay := c.config.MaxRetryBackoff

	for i := range c.config.ReconnectMaxRetries {
		backoff := min(baseDelay*time.Duration(math.Pow(2, float64(i))), maxDelay)

		jitter := time.Duration(rand.IntN(1000)) * time.Millisecond
		totalDelay := backoff + jitter

		c.logger.Info("Reconnecting to Redis",
			logger.Field{Key: "attempt", Value: i + 1},
			logger.Field{Key: "delay", Value: totalDelay},
		)

		select {
		case <-ctx.Done():
			c.logger.Info("Reconnect cancelled", logger.Field{Key: "reason", Value: ctx.Err()})
			return false
		case <-time.After(totalDelay):
			connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := c.Connect(connectCtx)
			cancel()
			if err == nil {
				c.logger.Info("Reconnected to Redis successfully", logger.Field{Key: "attempt", Value: i + 1})
				return true
			}
			c.logger.Error(errors.TracerFromError(err), logger.Field{Key: "attempt", Value: i + 1})
		}
	}

	return false
}

func (c *client) Disconnect(ctx context.Context) error {
	switch cmd := c.cmdable.(type) {
	case *redis.Client:
		return cmd.Close()
	case *redis.ClusterClient:
		return cmd.Close()
	default:
		return errors.NewErrorDetails("Unsupported Redis mode for disconnect", string(errors.RedisDisconnectionError), "disconnect")
	}
}

func (c *client) Ping(ctx context.Context) error {
	if c.cmdable == nil {
		return errors.NewErrorDetails("Redis is not connected", string(errors.RedisPingError), "ping")
	}
	if err := c.cmdable.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetailsWithCause("Failed to ping Redis", string(errors.RedisPingError), "ping", err)
	}
	return nil
}

// Get returns an empty string without error when the key does not exist.
func (c *client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.cmdable.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.NewErrorDetailsWithCause("Failed to get value from Redis", string(errors.RedisGetError), key, err)
	}
	return val, nil
}

func (c *client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if err := c.cmdable.Set(ctx, key, value, expiration).Err(); err != nil {
		return errors.NewErrorDetailsWithCause("Failed to set value in Redis", string(errors.RedisSetError), key, err)
	}
	return nil
}

// Del removes keys one command per key inside a pipeline so that cluster mode never sees a CROSSSLOT request.
func (c *client) Del(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	pipe := c.cmdable.Pipeline()
	cmds := make([]*redis.IntCmd, 0, len(keys))
	for _, key := range keys {
		cmds = append(cmds, pipe.Del(ctx, key))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errors.NewErrorDetailsWithCause("Failed to delete keys from Redis", string(errors.RedisDelError), "del", err)
	}

	var deleted int64
	for _, cmd := range cmds {
		deleted += cmd.Val()
	}
	return deleted, nil
}

func (c *client) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vals, err := c.cmdable.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, errors.NewErrorDetailsWithCause("Failed to read list from Redis", string(errors.RedisListError), key, err)
	}
	return vals, nil
}

func (c *client) LPushCapped(ctx context.Context, key, member string, max int64) ([]string, error) {
	if max < 1 {
		return nil, errors.NewErrorDetails("List capacity must be positive", string(errors.RedisListError), key)
	}

	var overflow *redis.StringSliceCmd
	_, err := c.cmdable.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, key, 0, member)
		pipe.LPush(ctx, key, member)
		overflow = pipe.LRange(ctx, key, max, -1)
		pipe.LTrim(ctx, key, 0, max-1)
		return nil
	})
	if err != nil {
		return nil, errors.NewErrorDetailsWithCause("Failed to push capped list in Redis", string(errors.RedisListError), key, err)
	}

	return overflow.Val(), nil
}

func (c *client) Scan(ctx context.Context, pattern string) ([]string, error) {
	var (
		mu   sync.Mutex
		keys []string
	)

	collect := func(ctx context.Context, node redis.Cmdable) error {
		var cursor uint64
		for {
			batch, next, err := node.Scan(ctx, cursor, pattern, c.config.ScanCount).Result()
			if err != nil {
				return err
			}

			mu.Lock()
			keys = append(keys, batch...)
			mu.Unlock()

			cursor = next
			if cursor == 0 {
				return nil
			}
		}
	}

	var err error
	if cluster, ok := c.cmdable.(*redis.ClusterClient); ok {
		err = cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
			return collect(ctx, node)
		})
	} else {
		err = collect(ctx, c.cmdable)
	}
	if err != nil {
		return nil, errors.NewErrorDetailsWithCause("Failed to scan Redis keyspace", string(errors.RedisScanError), pattern, err)
	}

	return keys, nil
}

func (c *client) MemoryUsage(ctx context.Context, key string) (int64, error) {
	size, err := c.cmdable.MemoryUsage(ctx, key).Result()
	if err != nil {
		return 0, errors.NewErrorDetailsWithCause("Failed to read memory usage from Redis", string(errors.RedisMemoryUsageError), key, err)
	}
	return size, nil
}

func (c *client) Info(ctx context.Context, sections ...string) (string, error) {
	info, err := c.cmdable.Info(ctx, sections...).Result()
	if err != nil {
		return "", errors.NewErrorDetailsWithCause("Failed to read Redis info", string(errors.RedisInfoError), "info", err)
	}
	return info, nil
}

func (c *client) Prefix() string {
	return c.config.PrefixKey
}
