package settings

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	settingsDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() settingsDomain.Values {
	return settingsDomain.Values{
		DefaultTimeframe: "1Day",
		Feed:             "iex",
		BaseURL:          "https://data.alpaca.markets",
		UpstreamTimeout:  30 * time.Second,
		MaxWeek:          8,
	}
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(defaults(), logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, defaults(), store.Snapshot())

	bad := defaults()
	bad.MaxWeek = 0
	_, err = NewStore(bad, logger.NewNop())
	assert.True(t, errors.ErrorCodeEquals(err, errors.SettingInvalidError))
}

func TestStore_Set(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		value    string
		assertFn func(t *testing.T, store *Store, err error)
	}{
		{
			name:  "max week",
			key:   settingsDomain.KeyMaxWeek,
			value: "2",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, store.MaxWeek())
			},
		},
		{
			name:  "max week must be positive",
			key:   settingsDomain.KeyMaxWeek,
			value: "0",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.SettingInvalidError))
				assert.Equal(t, 8, store.MaxWeek())
			},
		},
		{
			name:  "max week must be a number",
			key:   settingsDomain.KeyMaxWeek,
			value: "two",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.SettingInvalidError))
			},
		},
		{
			name:  "timeout in go syntax",
			key:   settingsDomain.KeyUpstreamTimeout,
			value: "1500ms",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1500*time.Millisecond, store.UpstreamTimeout())
			},
		},
		{
			name:  "timeout in seconds",
			key:   settingsDomain.KeyUpstreamTimeout,
			value: "5",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 5*time.Second, store.UpstreamTimeout())
			},
		},
		{
			name:  "negative timeout",
			key:   settingsDomain.KeyUpstreamTimeout,
			value: "-1s",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.Error(t, err)
				assert.Equal(t, 30*time.Second, store.UpstreamTimeout())
			},
		},
		{
			name:  "base url",
			key:   settingsDomain.KeyBaseURL,
			value: "http://localhost:9000",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "http://localhost:9000", store.BaseURL())
			},
		},
		{
			name:  "relative base url",
			key:   settingsDomain.KeyBaseURL,
			value: "/v2",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:  "feed",
			key:   settingsDomain.KeyFeed,
			value: "sip",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "sip", store.Feed())
			},
		},
		{
			name:  "default timeframe",
			key:   settingsDomain.KeyDefaultTimeframe,
			value: "1Hour",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "1Hour", store.DefaultTimeframe())
			},
		},
		{
			name:  "default timeframe with separator",
			key:   settingsDomain.KeyDefaultTimeframe,
			value: "1_Hour",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.Error(t, err)
				assert.Equal(t, "1Day", store.DefaultTimeframe())
			},
		},
		{
			name:  "unknown key",
			key:   "colour",
			value: "blue",
			assertFn: func(t *testing.T, store *Store, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			store, err := NewStore(defaults(), logger.NewNop())
			require.NoError(t, err)

			err = store.Set(context.Background(), testCase.key, testCase.value)
			testCase.assertFn(t, store, err)
		})
	}
}
