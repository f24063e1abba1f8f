package candle

import (
	"context"
	"time"

	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// Usecase is the public entry point of the tiered cache.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=candle_mock
type Usecase interface {
	// GetBars returns the bars of symbol in [start, end] sorted ascending. An empty timeframe
	// falls back to the configured default.
	GetBars(ctx context.Context, symbol, timeframe string, start, end time.Time) (barv1.List, error)
}
