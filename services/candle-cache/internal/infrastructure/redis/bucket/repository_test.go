package bucket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/muhammadchandra19/candlecache/pkg/interval"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/pkg/redis"
	redisMock "github.com/muhammadchandra19/candlecache/pkg/redis/mock"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	cfg := redis.DefaultConfig()
	cfg.Addrs = []string{server.Addr()}
	cfg.PrefixKey = "test:"

	client := redis.NewClient(logger.NewNop(), cfg)
	require.NoError(t, client.Connect(context.Background()))
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return NewStore(client, logger.NewNop()), server
}

func weekKey(day time.Time) barv1.WeekKey {
	return barv1.NewWeekKey("AAPL", "1Day", interval.WeekOf(day))
}

func TestStore_PutGetWeek(t *testing.T) {
	ctx := context.Background()
	store, server := newStore(t)
	key := weekKey(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))

	bars, found, err := store.GetWeek(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, bars)

	want := barv1.List{
		{Timestamp: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 100},
		{Timestamp: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Open: 1.5, High: 2.5, Low: 1, Close: 2, Volume: 200, TradeCount: 12, VWAP: 1.8},
	}
	require.NoError(t, store.PutWeek(ctx, key, want))
	assert.Equal(t, time.Duration(0), server.TTL("test:bars:AAPL:1Day:1:2024"))

	bars, found, err = store.GetWeek(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, bars, 2)
	assert.True(t, want[0].Timestamp.Equal(bars[0].Timestamp))
	assert.Equal(t, want[1].VWAP, bars[1].VWAP)
	assert.Equal(t, want[1].TradeCount, bars[1].TradeCount)
}

func TestStore_GetWeek_Corrupt(t *testing.T) {
	ctx := context.Background()
	store, server := newStore(t)
	key := weekKey(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))

	require.NoError(t, server.Set(key.BucketKey("test:"), "{not json"))

	_, found, err := store.GetWeek(ctx, key)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestStore_Retain(t *testing.T) {
	ctx := context.Background()
	store, server := newStore(t)

	w1 := weekKey(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	w2 := weekKey(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	w3 := weekKey(time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC))

	for _, key := range []barv1.WeekKey{w1, w2, w3} {
		require.NoError(t, store.PutWeek(ctx, key, barv1.List{{Timestamp: time.Now()}}))
	}

	evicted, err := store.Retain(ctx, w1, 2)
	require.NoError(t, err)
	assert.Empty(t, evicted)

	evicted, err = store.Retain(ctx, w2, 2)
	require.NoError(t, err)
	assert.Empty(t, evicted)

	evicted, err = store.Retain(ctx, w3, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{w1.BucketKey("test:")}, evicted)

	members, err := server.List(barv1.IndexKey("test:", "AAPL", "1Day"))
	require.NoError(t, err)
	assert.Equal(t, []string{w3.BucketKey("test:"), w2.BucketKey("test:")}, members)

	assert.False(t, server.Exists(w1.BucketKey("test:")))
	assert.True(t, server.Exists(w2.BucketKey("test:")))
	assert.True(t, server.Exists(w3.BucketKey("test:")))
}

func TestStore_DeleteKeys_BypassesIndex(t *testing.T) {
	ctx := context.Background()
	store, server := newStore(t)

	w1 := weekKey(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	other := barv1.NewWeekKey("MSFT", "1Day", interval.WeekOf(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, store.PutWeek(ctx, w1, barv1.List{{Timestamp: time.Now()}}))
	require.NoError(t, store.PutWeek(ctx, other, barv1.List{{Timestamp: time.Now()}}))
	_, err := store.Retain(ctx, w1, 4)
	require.NoError(t, err)

	deleted, err := store.DeleteKeys(ctx, barv1.CacheKeyFilter{Symbol: "AAPL"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.False(t, server.Exists(w1.BucketKey("test:")))
	assert.True(t, server.Exists(other.BucketKey("test:")))

	members, err := server.List(barv1.IndexKey("test:", "AAPL", "1Day"))
	require.NoError(t, err)
	assert.Equal(t, []string{w1.BucketKey("test:")}, members)

	_, found, err := store.GetWeek(ctx, w1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_ListKeys(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(client *redisMock.MockClient)
		assertFn func(t *testing.T, infos []KeyInfo, err error)
	}{
		{
			name: "success skips keys whose size cannot be read",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Prefix().Return("c:")
				client.EXPECT().Scan(gomock.Any(), "c:bars:AAPL:*:*:*").Return([]string{"c:bars:AAPL:1Day:1:2024", "c:bars:AAPL:1Day:2:2024"}, nil)
				client.EXPECT().MemoryUsage(gomock.Any(), "c:bars:AAPL:1Day:1:2024").Return(int64(512), nil)
				client.EXPECT().MemoryUsage(gomock.Any(), "c:bars:AAPL:1Day:2:2024").Return(int64(0), errors.New("key vanished"))
			},
			assertFn: func(t *testing.T, infos []KeyInfo, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []KeyInfo{{Key: "c:bars:AAPL:1Day:1:2024", Bytes: 512}}, infos)
			},
		},
		{
			name: "scan failure aborts",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().Prefix().Return("c:")
				client.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			assertFn: func(t *testing.T, infos []KeyInfo, err error) {
				assert.Error(t, err)
				assert.Nil(t, infos)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := redisMock.NewMockClient(ctrl)
			testCase.mockFn(client)

			infos, err := NewStore(client, logger.NewNop()).ListKeys(context.Background(), barv1.CacheKeyFilter{Symbol: "AAPL"})
			testCase.assertFn(t, infos, err)
		})
	}
}

func TestStore_Info(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := redisMock.NewMockClient(ctrl)
	client.EXPECT().Info(gomock.Any()).Return("# Server\r\nredis_version:7.2.4\r\nuptime_in_seconds:42\r\n\r\n# Memory\r\nused_memory:1024\r\nused_memory_human:1.00K\r\n", nil)

	info, err := NewStore(client, logger.NewNop()).Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7.2.4", info["server"]["redis_version"])
	assert.Equal(t, "42", info["server"]["uptime_in_seconds"])
	assert.Equal(t, "1.00K", info["memory"]["used_memory_human"])
}

func TestParseInfo(t *testing.T) {
	info := ParseInfo("loose:1\n# Keyspace\ndb0:keys=3,expires=0,avg_ttl=0\nmalformed line\n")

	assert.Equal(t, "1", info["default"]["loose"])
	assert.Equal(t, "keys=3,expires=0,avg_ttl=0", info["keyspace"]["db0"])
	assert.Len(t, info["keyspace"], 1)
}
