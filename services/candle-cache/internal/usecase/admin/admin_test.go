package admin

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/filestore/partition"
	partitionMock "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/filestore/partition/mock"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/redis/bucket"
	bucketMock "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/redis/bucket/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterSource struct {
	counters barv1.TierCounters
	resets   int
}

func (c *counterSource) CollectCounters(counters *barv1.TierCounters) {
	counters.L1Hits += c.counters.L1Hits
	counters.L2Misses += c.counters.L2Misses
	counters.L3Pages += c.counters.L3Pages
}

func (c *counterSource) ResetCounters() {
	c.resets++
	c.counters = barv1.TierCounters{}
}

type fixture struct {
	partitions *partitionMock.MockRepository
	buckets    *bucketMock.MockRepository
	sources    []*counterSource
	usecase    *Usecase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		partitions: partitionMock.NewMockRepository(ctrl),
		buckets:    bucketMock.NewMockRepository(ctrl),
		sources: []*counterSource{
			{counters: barv1.TierCounters{L1Hits: 3}},
			{counters: barv1.TierCounters{L2Misses: 2, L3Pages: 7}},
		},
	}
	f.usecase = NewUsecase(f.partitions, f.buckets, logger.NewNop(), f.sources[0], f.sources[1])
	return f
}

func TestUsecase_Partitions(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		mockFn   func(f *fixture)
		actFn    func(u *Usecase) (any, error)
		assertFn func(t *testing.T, got any, err error)
	}{
		{
			name: "stats for a normalized symbol",
			mockFn: func(f *fixture) {
				f.partitions.EXPECT().Stats(gomock.Any(), "AAPL").Return(partition.Stats{Symbol: "AAPL", Files: 2, TotalBytes: 512}, nil)
			},
			actFn: func(u *Usecase) (any, error) { return u.PartitionStats(ctx, " aapl ") },
			assertFn: func(t *testing.T, got any, err error) {
				require.NoError(t, err)
				assert.Equal(t, partition.Stats{Symbol: "AAPL", Files: 2, TotalBytes: 512}, got)
			},
		},
		{
			name: "unknown symbol keeps the not found cause",
			mockFn: func(f *fixture) {
				f.partitions.EXPECT().List(gomock.Any(), "TSLA").Return(nil, &barv1.PartitionNotFoundError{Symbol: "TSLA"})
			},
			actFn: func(u *Usecase) (any, error) { return u.ListPartitions(ctx, "tsla") },
			assertFn: func(t *testing.T, got any, err error) {
				var notFound *barv1.PartitionNotFoundError
				require.True(t, errors.As(err, &notFound))
				assert.Equal(t, "TSLA", notFound.Symbol)
			},
		},
		{
			name:   "invalid symbol never reaches the store",
			mockFn: func(f *fixture) {},
			actFn:  func(u *Usecase) (any, error) { return u.PartitionStats(ctx, "../etc") },
			assertFn: func(t *testing.T, got any, err error) {
				var validationErr *barv1.ValidationError
				require.True(t, errors.As(err, &validationErr))
			},
		},
		{
			name: "delete with filter",
			mockFn: func(f *fixture) {
				filter := barv1.PartitionFilter{Year: 2024, Month: time.March}
				f.partitions.EXPECT().Delete(gomock.Any(), "AAPL", filter).Return([]barv1.PartitionKey{
					{Symbol: "AAPL", Timeframe: "1Day", Year: 2024, Month: time.March},
				}, nil)
			},
			actFn: func(u *Usecase) (any, error) {
				return u.DeletePartitions(ctx, "AAPL", barv1.PartitionFilter{Year: 2024, Month: time.March})
			},
			assertFn: func(t *testing.T, got any, err error) {
				require.NoError(t, err)
				assert.Len(t, got, 1)
			},
		},
		{
			name:   "delete with invalid month",
			mockFn: func(f *fixture) {},
			actFn: func(u *Usecase) (any, error) {
				return u.DeletePartitions(ctx, "AAPL", barv1.PartitionFilter{Month: 13})
			},
			assertFn: func(t *testing.T, got any, err error) {
				var validationErr *barv1.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "month", validationErr.Field)
			},
		},
		{
			name: "delete all",
			mockFn: func(f *fixture) {
				f.partitions.EXPECT().DeleteAll(gomock.Any()).Return(3, nil)
			},
			actFn: func(u *Usecase) (any, error) { return u.DeleteAllPartitions(ctx) },
			assertFn: func(t *testing.T, got any, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3, got)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.mockFn(f)

			got, err := tc.actFn(f.usecase)
			tc.assertFn(t, got, err)
		})
	}
}

func TestUsecase_Cache(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		mockFn   func(f *fixture)
		actFn    func(u *Usecase) (any, error)
		assertFn func(t *testing.T, got any, err error)
	}{
		{
			name: "list keys normalizes the symbol",
			mockFn: func(f *fixture) {
				f.buckets.EXPECT().
					ListKeys(gomock.Any(), barv1.CacheKeyFilter{Symbol: "AAPL", Week: 5}).
					Return([]bucket.KeyInfo{{Key: "candles:bars:AAPL:1Day:5:2024", Bytes: 120}}, nil)
			},
			actFn: func(u *Usecase) (any, error) {
				return u.ListCacheKeys(ctx, barv1.CacheKeyFilter{Symbol: "aapl", Week: 5})
			},
			assertFn: func(t *testing.T, got any, err error) {
				require.NoError(t, err)
				assert.Equal(t, []bucket.KeyInfo{{Key: "candles:bars:AAPL:1Day:5:2024", Bytes: 120}}, got)
			},
		},
		{
			name: "no keys is an empty list",
			mockFn: func(f *fixture) {
				f.buckets.EXPECT().ListKeys(gomock.Any(), barv1.CacheKeyFilter{}).Return(nil, nil)
			},
			actFn: func(u *Usecase) (any, error) { return u.ListCacheKeys(ctx, barv1.CacheKeyFilter{}) },
			assertFn: func(t *testing.T, got any, err error) {
				require.NoError(t, err)
				assert.Equal(t, []bucket.KeyInfo{}, got)
			},
		},
		{
			name:   "week out of range",
			mockFn: func(f *fixture) {},
			actFn: func(u *Usecase) (any, error) {
				return u.DeleteCacheKeys(ctx, barv1.CacheKeyFilter{Week: 54})
			},
			assertFn: func(t *testing.T, got any, err error) {
				var validationErr *barv1.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "week", validationErr.Field)
			},
		},
		{
			name:   "glob characters in the symbol never reach the keyspace",
			mockFn: func(f *fixture) {},
			actFn: func(u *Usecase) (any, error) {
				return u.DeleteCacheKeys(ctx, barv1.CacheKeyFilter{Symbol: "AAP?"})
			},
			assertFn: func(t *testing.T, got any, err error) {
				var validationErr *barv1.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "symbol", validationErr.Field)
				assert.Equal(t, int64(0), got)
			},
		},
		{
			name: "delete keys",
			mockFn: func(f *fixture) {
				f.buckets.EXPECT().DeleteKeys(gomock.Any(), barv1.CacheKeyFilter{Timeframe: "1Min"}).Return(int64(4), nil)
			},
			actFn: func(u *Usecase) (any, error) {
				return u.DeleteCacheKeys(ctx, barv1.CacheKeyFilter{Timeframe: "1Min"})
			},
			assertFn: func(t *testing.T, got any, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(4), got)
			},
		},
		{
			name: "info error is traced",
			mockFn: func(f *fixture) {
				f.buckets.EXPECT().Info(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			actFn: func(u *Usecase) (any, error) { return u.CacheInfo(ctx) },
			assertFn: func(t *testing.T, got any, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "connection refused")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.mockFn(f)

			got, err := tc.actFn(f.usecase)
			tc.assertFn(t, got, err)
		})
	}
}

func TestUsecase_Counters(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, barv1.TierCounters{L1Hits: 3, L2Misses: 2, L3Pages: 7}, f.usecase.Counters())

	f.usecase.ResetCounters()
	assert.Equal(t, barv1.TierCounters{}, f.usecase.Counters())
	for _, source := range f.sources {
		assert.Equal(t, 1, source.resets)
	}
}
