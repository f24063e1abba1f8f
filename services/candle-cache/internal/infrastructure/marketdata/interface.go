package marketdata

import (
	"context"
	"time"

	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// Fetcher retrieves a complete calendar month of bars from the upstream provider.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=marketdata_mock
type Fetcher interface {
	// FetchMonth follows pagination until exhausted. It never returns a partial month:
	// any failure yields a *barv1.UpstreamFetchError and no bars.
	FetchMonth(ctx context.Context, symbol, timeframe string, year int, month time.Month) (barv1.List, error)
}
