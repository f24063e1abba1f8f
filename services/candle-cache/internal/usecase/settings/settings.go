package settings

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	settingsDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/settings"
)

// Store holds the hot-reloadable settings. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	values settingsDomain.Values
	logger logger.Interface
}

var _ settingsDomain.Usecase = (*Store)(nil)

// NewStore validates initial and returns a Store seeded with it.
func NewStore(initial settingsDomain.Values, logger logger.Interface) (*Store, error) {
	s := &Store{logger: logger}

	setters := []func() error{
		func() error { return s.SetDefaultTimeframe(initial.DefaultTimeframe) },
		func() error { return s.SetFeed(initial.Feed) },
		func() error { return s.SetBaseURL(initial.BaseURL) },
		func() error { return s.SetUpstreamTimeout(initial.UpstreamTimeout) },
		func() error { return s.SetMaxWeek(initial.MaxWeek) },
	}
	for _, set := range setters {
		if err := set(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) DefaultTimeframe() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.DefaultTimeframe
}

func (s *Store) Feed() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Feed
}

func (s *Store) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.BaseURL
}

func (s *Store) UpstreamTimeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.UpstreamTimeout
}

func (s *Store) MaxWeek() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.MaxWeek
}

// Snapshot returns a copy of every setting.
func (s *Store) Snapshot() settingsDomain.Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

func (s *Store) SetDefaultTimeframe(timeframe string) error {
	if err := barv1.ValidateTimeframe(timeframe); err != nil {
		return invalid(settingsDomain.KeyDefaultTimeframe, err)
	}
	s.mu.Lock()
	s.values.DefaultTimeframe = timeframe
	s.mu.Unlock()
	return nil
}

func (s *Store) SetFeed(feed string) error {
	if feed == "" {
		return invalid(settingsDomain.KeyFeed, errors.New("feed must not be empty"))
	}
	s.mu.Lock()
	s.values.Feed = feed
	s.mu.Unlock()
	return nil
}

func (s *Store) SetBaseURL(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return invalid(settingsDomain.KeyBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(settingsDomain.KeyBaseURL, errors.New("base url must be an absolute http(s) url"))
	}
	s.mu.Lock()
	s.values.BaseURL = baseURL
	s.mu.Unlock()
	return nil
}

func (s *Store) SetUpstreamTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return invalid(settingsDomain.KeyUpstreamTimeout, errors.New("timeout must be positive"))
	}
	s.mu.Lock()
	s.values.UpstreamTimeout = timeout
	s.mu.Unlock()
	return nil
}

func (s *Store) SetMaxWeek(maxWeek int) error {
	if maxWeek < 1 {
		return invalid(settingsDomain.KeyMaxWeek, errors.New("max week must be at least 1"))
	}
	s.mu.Lock()
	s.values.MaxWeek = maxWeek
	s.mu.Unlock()
	return nil
}

// Set parses value for key and applies it. Durations accept Go syntax ("30s") or plain seconds.
func (s *Store) Set(ctx context.Context, key, value string) error {
	var err error
	switch key {
	case settingsDomain.KeyDefaultTimeframe:
		err = s.SetDefaultTimeframe(value)
	case settingsDomain.KeyFeed:
		err = s.SetFeed(value)
	case settingsDomain.KeyBaseURL:
		err = s.SetBaseURL(value)
	case settingsDomain.KeyUpstreamTimeout:
		var timeout time.Duration
		timeout, err = parseDuration(value)
		if err != nil {
			err = invalid(key, err)
			break
		}
		err = s.SetUpstreamTimeout(timeout)
	case settingsDomain.KeyMaxWeek:
		var maxWeek int
		maxWeek, err = strconv.Atoi(value)
		if err != nil {
			err = invalid(key, err)
			break
		}
		err = s.SetMaxWeek(maxWeek)
	default:
		err = &barv1.ValidationError{Field: "key", Reason: "unknown setting " + strconv.Quote(key)}
	}
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Setting updated",
		logger.Field{Key: "key", Value: key},
		logger.Field{Key: "value", Value: value},
	)
	return nil
}

func parseDuration(value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(value)
}

func invalid(key string, err error) error {
	return errors.NewErrorDetailsWithCause("Invalid value for "+key, string(errors.SettingInvalidError), key, err)
}
