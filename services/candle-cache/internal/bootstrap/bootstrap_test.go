package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/pkg/redis"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap_EndToEnd(t *testing.T) {
	ctx := context.Background()

	var upstreamCalls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bars":{"AAPL":[` +
			`{"t":"2024-01-02T05:00:00Z","o":1,"h":2,"l":0.5,"c":1.5,"v":100},` +
			`{"t":"2024-01-03T05:00:00Z","o":1.5,"h":2,"l":1,"c":1.8,"v":120},` +
			`{"t":"2024-01-10T05:00:00Z","o":1.8,"h":2.2,"l":1.7,"c":2,"v":90}` +
			`]},"next_page_token":null}`))
	}))
	t.Cleanup(upstream.Close)

	server := miniredis.RunT(t)
	redisCfg := redis.DefaultConfig()
	redisCfg.Addrs = []string{server.Addr()}
	client := redis.NewClient(logger.NewNop(), redisCfg)
	require.NoError(t, client.Connect(ctx))
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	dir := t.TempDir()
	cfg := config.Config{
		Cache:     config.CacheConfig{MaxWeek: 8, DefaultTimeframe: "1Day"},
		Partition: config.PartitionConfig{Dir: dir, Format: "json", BackfillConcurrency: 2},
		Upstream: config.UpstreamConfig{
			BaseURL:    upstream.URL,
			KeyID:      "key",
			SecretKey:  "secret",
			Feed:       "iex",
			Timeout:    5 * time.Second,
			PageLimit:  1000,
			Adjustment: "raw",
			Currency:   "USD",
		},
	}

	b, err := (&Bootstrap{}).Init(BoostrapConfig{
		Config:     cfg,
		Redis:      client,
		HTTPClient: upstream.Client(),
		Logger:     logger.NewNop(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		b.Rest.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := get("/v1/bars?symbol=aapl&start=2024-01-02&end=2024-01-03")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data barv1.List `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, 1.8, body.Data[1].Close)

	_, err = os.Stat(filepath.Join(dir, "AAPL", "2024-01_1Day.json"))
	assert.NoError(t, err)
	assert.True(t, server.Exists("candles:bars:AAPL:1Day:1:2024"))

	// the next week of January is served from the partition, not upstream
	rec = get("/v1/bars?symbol=AAPL&start=2024-01-08&end=2024-01-12")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), upstreamCalls.Load())

	counters := b.Usecase.AdminUsecase.Counters()
	assert.Equal(t, int64(2), counters.L1Misses)
	assert.Equal(t, int64(1), counters.L2Misses)
	assert.Equal(t, int64(1), counters.L2Hits)
	assert.Equal(t, int64(1), counters.L3Months)
	assert.Equal(t, int64(1), counters.L3Pages)

	rec = get("/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBootstrap_UpstreamTimeoutFailsWholeRequest(t *testing.T) {
	ctx := context.Background()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Query().Get("start"), "2024-02") {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bars":{"AAPL":[` +
			`{"t":"2024-01-30T05:00:00Z","o":1,"h":2,"l":0.5,"c":1.5,"v":100}` +
			`]},"next_page_token":null}`))
	}))
	t.Cleanup(upstream.Close)

	server := miniredis.RunT(t)
	redisCfg := redis.DefaultConfig()
	redisCfg.Addrs = []string{server.Addr()}
	client := redis.NewClient(logger.NewNop(), redisCfg)
	require.NoError(t, client.Connect(ctx))
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	dir := t.TempDir()
	b, err := (&Bootstrap{}).Init(BoostrapConfig{
		Config: config.Config{
			Cache:     config.CacheConfig{MaxWeek: 8, DefaultTimeframe: "1Day"},
			Partition: config.PartitionConfig{Dir: dir, Format: "json", BackfillConcurrency: 2},
			Upstream: config.UpstreamConfig{
				BaseURL:    upstream.URL,
				KeyID:      "key",
				SecretKey:  "secret",
				Feed:       "iex",
				Timeout:    100 * time.Millisecond,
				PageLimit:  1000,
				Adjustment: "raw",
				Currency:   "USD",
			},
		},
		Redis:      client,
		HTTPClient: upstream.Client(),
		Logger:     logger.NewNop(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	// the ISO week of 2024-01-29 straddles January and February
	rec := httptest.NewRecorder()
	b.Rest.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bars?symbol=AAPL&start=2024-01-29&end=2024-02-02", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code, rec.Body.String())
	assert.NoFileExists(t, filepath.Join(dir, "AAPL", "2024-02_1Day.json"))
	assert.False(t, server.Exists("candles:bars:AAPL:1Day:5:2024"), "no partial week is cached")

	// January is fetched on its own and still lands in its partition
	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "AAPL", "2024-01_1Day.json"))
		return err == nil
	}, time.Second, 10*time.Millisecond)
}

func TestBootstrap_InvalidFormat(t *testing.T) {
	_, err := (&Bootstrap{}).Init(BoostrapConfig{
		Config: config.Config{Partition: config.PartitionConfig{Format: "csv"}},
		Logger: logger.NewNop(),
	})
	assert.Error(t, err)
}
