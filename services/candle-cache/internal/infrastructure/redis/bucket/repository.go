package bucket

import (
	"bufio"
	"context"
	"strings"

	"github.com/goccy/go-json"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/pkg/redis"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// Store is the Redis backed week bucket repository.
type Store struct {
	redisclient redis.Client
	logger      logger.Interface
}

var _ Repository = (*Store)(nil)

// NewStore creates a new Store.
func NewStore(redisclient redis.Client, logger logger.Interface) *Store {
	return &Store{
		redisclient: redisclient,
		logger:      logger,
	}
}

// GetWeek loads a bucket. A missing key is a miss, not an error.
func (s *Store) GetWeek(ctx context.Context, key barv1.WeekKey) (barv1.List, bool, error) {
	bucketKey := key.BucketKey(s.redisclient.Prefix())

	data, err := s.redisclient.Get(ctx, bucketKey)
	if err != nil {
		return nil, false, errors.NewTracer("bucket_get_error").Wrap(err)
	}
	if data == "" {
		return nil, false, nil
	}

	var bars barv1.List
	if err := json.Unmarshal([]byte(data), &bars); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{Key: "key", Value: bucketKey})
		return nil, false, errors.NewErrorDetailsWithCause("Failed to decode week bucket", string(errors.CacheDecodeError), bucketKey, err)
	}

	return bars, true, nil
}

// PutWeek serializes bars into the bucket with no expiry.
func (s *Store) PutWeek(ctx context.Context, key barv1.WeekKey, bars barv1.List) error {
	bucketKey := key.BucketKey(s.redisclient.Prefix())

	buf, err := json.Marshal(bars)
	if err != nil {
		return errors.NewErrorDetailsWithCause("Failed to encode week bucket", string(errors.CacheEncodeError), bucketKey, err)
	}

	if err := s.redisclient.Set(ctx, bucketKey, buf, 0); err != nil {
		s.logger.ErrorContext(ctx, err,
			logger.Field{Key: "key", Value: bucketKey},
			logger.Field{Key: "bars", Value: len(bars)},
		)
		return errors.NewTracer("bucket_store_error").Wrap(err)
	}

	s.logger.DebugContext(ctx, "Week bucket stored",
		logger.Field{Key: "key", Value: bucketKey},
		logger.Field{Key: "bars", Value: len(bars)},
	)
	return nil
}

// Retain moves key to the head of the retention index and evicts whatever falls past maxWeek.
func (s *Store) Retain(ctx context.Context, key barv1.WeekKey, maxWeek int) ([]string, error) {
	prefix := s.redisclient.Prefix()
	bucketKey := key.BucketKey(prefix)
	indexKey := key.IndexKey(prefix)

	evicted, err := s.redisclient.LPushCapped(ctx, indexKey, bucketKey, int64(maxWeek))
	if err != nil {
		return nil, errors.NewTracer("bucket_index_error").Wrap(err)
	}
	if len(evicted) == 0 {
		return nil, nil
	}

	if _, err := s.redisclient.Del(ctx, evicted...); err != nil {
		return nil, errors.NewTracer("bucket_evict_error").Wrap(err)
	}

	s.logger.InfoContext(ctx, "Evicted week buckets",
		logger.Field{Key: "index", Value: indexKey},
		logger.Field{Key: "evicted", Value: evicted},
		logger.Field{Key: "max_week", Value: maxWeek},
	)
	return evicted, nil
}

// ListKeys enumerates buckets matching filter. Keys whose size cannot be read are logged and skipped.
func (s *Store) ListKeys(ctx context.Context, filter barv1.CacheKeyFilter) ([]KeyInfo, error) {
	keys, err := s.redisclient.Scan(ctx, filter.Pattern(s.redisclient.Prefix()))
	if err != nil {
		return nil, errors.NewTracer("bucket_scan_error").Wrap(err)
	}

	infos := make([]KeyInfo, 0, len(keys))
	for _, key := range keys {
		size, err := s.redisclient.MemoryUsage(ctx, key)
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping key without memory usage",
				logger.Field{Key: "key", Value: key},
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}
		infos = append(infos, KeyInfo{Key: key, Bytes: size})
	}

	return infos, nil
}

// DeleteKeys removes every bucket matching filter. The retention index is left untouched.
func (s *Store) DeleteKeys(ctx context.Context, filter barv1.CacheKeyFilter) (int64, error) {
	pattern := filter.Pattern(s.redisclient.Prefix())

	keys, err := s.redisclient.Scan(ctx, pattern)
	if err != nil {
		return 0, errors.NewTracer("bucket_scan_error").Wrap(err)
	}

	deleted, err := s.redisclient.Del(ctx, keys...)
	if err != nil {
		return 0, errors.NewTracer("bucket_delete_error").Wrap(err)
	}

	s.logger.InfoContext(ctx, "Deleted week buckets",
		logger.Field{Key: "pattern", Value: pattern},
		logger.Field{Key: "deleted", Value: deleted},
	)
	return deleted, nil
}

// Info returns INFO output as section -> key -> value.
func (s *Store) Info(ctx context.Context) (map[string]map[string]string, error) {
	raw, err := s.redisclient.Info(ctx)
	if err != nil {
		return nil, errors.NewTracer("bucket_info_error").Wrap(err)
	}
	return ParseInfo(raw), nil
}

// ParseInfo turns the INFO text format into nested maps. Section names are lower-cased;
// key/value lines seen before any section header land in "default".
func ParseInfo(raw string) map[string]map[string]string {
	sections := make(map[string]map[string]string)
	current := "default"

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			current = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "#")))
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if sections[current] == nil {
			sections[current] = make(map[string]string)
		}
		sections[current][key] = value
	}

	return sections
}
