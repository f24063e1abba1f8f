package settings

import (
	"context"
	"time"
)

// Keys accepted by Usecase.Set.
const (
	KeyDefaultTimeframe = "default_timeframe"
	KeyFeed             = "feed"
	KeyBaseURL          = "base_url"
	KeyUpstreamTimeout  = "upstream_timeout"
	KeyMaxWeek          = "max_week"
)

// Values is a snapshot of the runtime settings.
type Values struct {
	DefaultTimeframe string        `json:"default_timeframe"`
	Feed             string        `json:"feed"`
	BaseURL          string        `json:"base_url"`
	UpstreamTimeout  time.Duration `json:"upstream_timeout"`
	MaxWeek          int           `json:"max_week"`
}

// Reader exposes the current value of each runtime setting. Values may change between calls.
type Reader interface {
	DefaultTimeframe() string
	Feed() string
	BaseURL() string
	UpstreamTimeout() time.Duration
	MaxWeek() int
}

// Usecase is the settings usecase.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=settings_mock
type Usecase interface {
	Reader
	Set(ctx context.Context, key, value string) error
	Snapshot() Values
}
