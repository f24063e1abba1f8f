package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/pkg/util"
	adminMock "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/admin/mock"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	candleMock "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/candle/mock"
	settingsDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/settings"
	settingsMock "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/settings/mock"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/filestore/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mocks struct {
	candle   *candleMock.MockUsecase
	admin    *adminMock.MockUsecase
	settings *settingsMock.MockUsecase
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(t *testing.T, probe healthcheck.Probe) (http.Handler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		candle:   candleMock.NewMockUsecase(ctrl),
		admin:    adminMock.NewMockUsecase(ctrl),
		settings: settingsMock.NewMockUsecase(ctrl),
	}

	log := logger.NewNop()
	validate := validator.New()
	health := healthcheck.HealthCheck{Probes: map[string]healthcheck.Probe{"redis": probe}}

	router := NewRouter(
		NewBarsHandler(m.candle, validate, log),
		NewAdminHandler(m.admin, log),
		NewSettingsHandler(m.settings, validate, log),
		health,
		log,
	)
	return router, m
}

func do(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func okProbe(context.Context) error { return nil }

func TestBarsHandler_GetBars(t *testing.T) {
	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		target   string
		mockFn   func(m mocks)
		assertFn func(t *testing.T, rec *httptest.ResponseRecorder, env envelope)
	}{
		{
			name:   "success",
			target: "/v1/bars?symbol=AAPL&timeframe=1Day&start=2024-01-03T00:00:00Z&end=2024-01-05",
			mockFn: func(m mocks) {
				end := time.Date(2024, 1, 5, 23, 59, 59, 999000000, time.UTC)
				m.candle.EXPECT().GetBars(gomock.Any(), "AAPL", "1Day", start, end).Return(barv1.List{
					{Timestamp: start, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10},
				}, nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "success", env.Status)
				assert.Equal(t, "OK", env.Code)

				var bars barv1.List
				require.NoError(t, json.Unmarshal(env.Data, &bars))
				require.Len(t, bars, 1)
				assert.Equal(t, 1.5, bars[0].Close)
				assert.NotEmpty(t, rec.Header().Get(util.RequestIDHeader))
			},
		},
		{
			name:   "empty result is an empty array",
			target: "/v1/bars?symbol=AAPL&start=2024-01-03T00:00:00Z&end=2024-01-03T00:00:00Z",
			mockFn: func(m mocks) {
				m.candle.EXPECT().GetBars(gomock.Any(), "AAPL", "", start, start).Return(barv1.List{}, nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, "[]", string(env.Data))
			},
		},
		{
			name:   "missing symbol",
			target: "/v1/bars?start=2024-01-03&end=2024-01-05",
			mockFn: func(m mocks) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "InvalidArgument", env.Code)
				assert.Contains(t, env.Message, "symbol")
			},
		},
		{
			name:   "malformed start",
			target: "/v1/bars?symbol=AAPL&start=yesterday&end=2024-01-05",
			mockFn: func(m mocks) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, env.Message, "start")
			},
		},
		{
			name:   "end before start",
			target: "/v1/bars?symbol=AAPL&start=2024-01-05&end=2024-01-03T00:00:00Z",
			mockFn: func(m mocks) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, env.Message, "end")
			},
		},
		{
			name:   "upstream failure is a bad gateway",
			target: "/v1/bars?symbol=AAPL&start=2024-01-03&end=2024-01-05",
			mockFn: func(m mocks) {
				m.candle.EXPECT().GetBars(gomock.Any(), "AAPL", "", gomock.Any(), gomock.Any()).
					Return(nil, errors.TracerFromError(&barv1.UpstreamFetchError{Symbol: "AAPL", Year: 2024, Month: time.January, StatusCode: 429, Err: errors.New("rate limited")}))
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)
				assert.Equal(t, "Unavailable", env.Code)
				assert.Equal(t, "error", env.Status)
			},
		},
		{
			name:   "missing credentials is an internal error",
			target: "/v1/bars?symbol=AAPL&start=2024-01-03&end=2024-01-05",
			mockFn: func(m mocks) {
				m.candle.EXPECT().GetBars(gomock.Any(), "AAPL", "", gomock.Any(), gomock.Any()).
					Return(nil, &barv1.ConfigurationError{Key: "UPSTREAM_KEY_ID"})
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, env.Message, "UPSTREAM_KEY_ID")
			},
		},
		{
			name:   "unknown error hides its message",
			target: "/v1/bars?symbol=AAPL&start=2024-01-03&end=2024-01-05",
			mockFn: func(m mocks) {
				m.candle.EXPECT().GetBars(gomock.Any(), "AAPL", "", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("dial tcp 10.0.0.1:6379: connection refused"))
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, "internal server error", env.Message)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, m := newRouter(t, okProbe)
			tc.mockFn(m)

			rec, env := do(t, router, http.MethodGet, tc.target, "")
			tc.assertFn(t, rec, env)
		})
	}
}

func TestAdminHandler(t *testing.T) {
	testCases := []struct {
		name     string
		method   string
		target   string
		mockFn   func(m mocks)
		assertFn func(t *testing.T, rec *httptest.ResponseRecorder, env envelope)
	}{
		{
			name:   "partition stats",
			method: http.MethodGet,
			target: "/admin/partitions/AAPL/stats",
			mockFn: func(m mocks) {
				m.admin.EXPECT().PartitionStats(gomock.Any(), "AAPL").Return(partition.Stats{Symbol: "AAPL", Files: 3, TotalBytes: 2048}, nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"symbol":"AAPL","files":3,"total_bytes":2048}`, string(env.Data))
			},
		},
		{
			name:   "unknown symbol",
			method: http.MethodGet,
			target: "/admin/partitions/TSLA",
			mockFn: func(m mocks) {
				m.admin.EXPECT().ListPartitions(gomock.Any(), "TSLA").Return(nil, errors.TracerFromError(&barv1.PartitionNotFoundError{Symbol: "TSLA"}))
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, "NotFound", env.Code)
			},
		},
		{
			name:   "delete partitions with filter",
			method: http.MethodDelete,
			target: "/admin/partitions/AAPL?year=2024&month=3&timeframe=1Day",
			mockFn: func(m mocks) {
				filter := barv1.PartitionFilter{Year: 2024, Month: time.March, Timeframe: "1Day"}
				m.admin.EXPECT().DeletePartitions(gomock.Any(), "AAPL", filter).Return([]barv1.PartitionKey{
					{Symbol: "AAPL", Timeframe: "1Day", Year: 2024, Month: time.March},
				}, nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"deleted":[{"symbol":"AAPL","timeframe":"1Day","year":2024,"month":3}]}`, string(env.Data))
			},
		},
		{
			name:   "delete partitions with malformed year",
			method: http.MethodDelete,
			target: "/admin/partitions/AAPL?year=twenty",
			mockFn: func(m mocks) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, env.Message, "year")
			},
		},
		{
			name:   "delete all partitions",
			method: http.MethodDelete,
			target: "/admin/partitions",
			mockFn: func(m mocks) {
				m.admin.EXPECT().DeleteAllPartitions(gomock.Any()).Return(2, nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.JSONEq(t, `{"symbols":2}`, string(env.Data))
			},
		},
		{
			name:   "cache keys",
			method: http.MethodGet,
			target: "/admin/cache/keys?symbol=AAPL&week=5",
			mockFn: func(m mocks) {
				m.admin.EXPECT().ListCacheKeys(gomock.Any(), barv1.CacheKeyFilter{Symbol: "AAPL", Week: 5}).Return(nil, nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "delete cache keys",
			method: http.MethodDelete,
			target: "/admin/cache/keys?timeframe=1Min",
			mockFn: func(m mocks) {
				m.admin.EXPECT().DeleteCacheKeys(gomock.Any(), barv1.CacheKeyFilter{Timeframe: "1Min"}).Return(int64(7), nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.JSONEq(t, `{"deleted":7}`, string(env.Data))
			},
		},
		{
			name:   "cache info",
			method: http.MethodGet,
			target: "/admin/cache/info",
			mockFn: func(m mocks) {
				m.admin.EXPECT().CacheInfo(gomock.Any()).Return(map[string]map[string]string{"memory": {"used_memory": "1024"}}, nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.JSONEq(t, `{"memory":{"used_memory":"1024"}}`, string(env.Data))
			},
		},
		{
			name:   "reset counters",
			method: http.MethodDelete,
			target: "/admin/counters",
			mockFn: func(m mocks) {
				gomock.InOrder(
					m.admin.EXPECT().ResetCounters(),
					m.admin.EXPECT().Counters().Return(barv1.TierCounters{}),
				)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				var counters barv1.TierCounters
				require.NoError(t, json.Unmarshal(env.Data, &counters))
				assert.Equal(t, barv1.TierCounters{}, counters)
			},
		},
		{
			name:   "method not allowed",
			method: http.MethodPost,
			target: "/admin/counters",
			mockFn: func(m mocks) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, m := newRouter(t, okProbe)
			tc.mockFn(m)

			rec, env := do(t, router, tc.method, tc.target, "")
			tc.assertFn(t, rec, env)
		})
	}
}

func TestSettingsHandler(t *testing.T) {
	snapshot := settingsDomain.Values{DefaultTimeframe: "1Day", Feed: "iex", BaseURL: "https://data.alpaca.markets", UpstreamTimeout: 30 * time.Second, MaxWeek: 4}

	testCases := []struct {
		name     string
		method   string
		target   string
		body     string
		mockFn   func(m mocks)
		assertFn func(t *testing.T, rec *httptest.ResponseRecorder, env envelope)
	}{
		{
			name:   "snapshot",
			method: http.MethodGet,
			target: "/admin/settings",
			mockFn: func(m mocks) {
				m.settings.EXPECT().Snapshot().Return(snapshot)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				var got settingsDomain.Values
				require.NoError(t, json.Unmarshal(env.Data, &got))
				assert.Equal(t, snapshot, got)
			},
		},
		{
			name:   "update",
			method: http.MethodPut,
			target: "/admin/settings/max_week",
			body:   `{"value":"4"}`,
			mockFn: func(m mocks) {
				m.settings.EXPECT().Set(gomock.Any(), "max_week", "4").Return(nil)
				m.settings.EXPECT().Snapshot().Return(snapshot)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "rejected value",
			method: http.MethodPut,
			target: "/admin/settings/max_week",
			body:   `{"value":"-1"}`,
			mockFn: func(m mocks) {
				m.settings.EXPECT().Set(gomock.Any(), "max_week", "-1").
					Return(errors.NewErrorDetailsWithCause("Invalid value for max_week", string(errors.SettingInvalidError), "max_week", errors.New("max week must be at least 1")))
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, env.Message, "max_week")
			},
		},
		{
			name:   "missing value",
			method: http.MethodPut,
			target: "/admin/settings/feed",
			body:   `{}`,
			mockFn: func(m mocks) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, env.Message, "value")
			},
		},
		{
			name:   "malformed body",
			method: http.MethodPut,
			target: "/admin/settings/feed",
			body:   `feed=sip`,
			mockFn: func(m mocks) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder, env envelope) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, m := newRouter(t, okProbe)
			tc.mockFn(m)

			rec, env := do(t, router, tc.method, tc.target, tc.body)
			tc.assertFn(t, rec, env)
		})
	}
}

func TestRouter_Health(t *testing.T) {
	router, _ := newRouter(t, okProbe)
	rec, _ := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	router, _ = newRouter(t, func(context.Context) error { return errors.New("redis down") })
	rec, _ = do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis down")
}

func TestRequestID_Propagates(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = util.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/bars", nil)
	req.Header.Set(util.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(util.RequestIDHeader))
}

func TestAccessLog_RecoversPanic(t *testing.T) {
	handler := AccessLog(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bars", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
