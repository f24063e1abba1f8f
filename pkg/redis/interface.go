package redis

import (
	"context"
	"time"
)

// Client defines the interface for a Redis client.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=redis_mock
type Client interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
	Reconnect(ctx context.Context) bool

	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) (int64, error)

	// LRange returns the list elements between start and stop, both inclusive.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	// LPushCapped moves member to the head of the list and trims the list to max elements
	// in a single MULTI/EXEC. It returns the members that were trimmed off the tail.
	LPushCapped(ctx context.Context, key, member string, max int64) ([]string, error)

	// Scan walks the whole keyspace (every master in cluster mode) and returns keys matching pattern.
	Scan(ctx context.Context, pattern string) ([]string, error)
	MemoryUsage(ctx context.Context, key string) (int64, error)
	Info(ctx context.Context, sections ...string) (string, error)

	// Prefix returns the configured key prefix.
	Prefix() string
}
