package marketdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/interval"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	settingsDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/settings"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/pkg/config"
)

// Client is the paginated upstream bars client.
type Client struct {
	httpClient *http.Client
	config     config.UpstreamConfig
	settings   settingsDomain.Reader
	logger     logger.Interface

	months   atomic.Int64
	pages    atomic.Int64
	failures atomic.Int64
}

var (
	_ Fetcher             = (*Client)(nil)
	_ barv1.CounterSource = (*Client)(nil)
)

// NewClient creates a new Client. Base URL, feed and timeout are read from settings on every request.
// Any Timeout set on httpClient is dropped: the upstream_timeout setting is the only request bound.
func NewClient(httpClient *http.Client, config config.UpstreamConfig, settings settingsDomain.Reader, logger logger.Interface) *Client {
	hc := &http.Client{}
	if httpClient != nil {
		*hc = *httpClient
		hc.Timeout = 0
	}
	return &Client{
		httpClient: hc,
		config:     config,
		settings:   settings,
		logger:     logger,
	}
}

func (c *Client) FetchMonth(ctx context.Context, symbol, timeframe string, year int, month time.Month) (barv1.List, error) {
	fail := func(status int, err error) error {
		c.failures.Add(1)
		return &barv1.UpstreamFetchError{Symbol: symbol, Year: year, Month: month, StatusCode: status, Err: err}
	}

	if c.config.KeyID == "" {
		return nil, &barv1.ConfigurationError{Key: "UPSTREAM_KEY_ID"}
	}
	if c.config.SecretKey == "" {
		return nil, &barv1.ConfigurationError{Key: "UPSTREAM_SECRET_KEY"}
	}

	window := interval.NewMonth(year, month)
	seen := make(map[string]struct{})

	var (
		bars  barv1.List
		token string
		pages int
	)
	for {
		page, status, err := c.fetchPage(ctx, symbol, timeframe, window, token)
		if err != nil {
			c.logger.ErrorContext(ctx, err,
				logger.Field{Key: "symbol", Value: symbol},
				logger.Field{Key: "month", Value: window.String()},
				logger.Field{Key: "page", Value: pages + 1},
			)
			return nil, fail(status, err)
		}
		pages++
		c.pages.Add(1)
		bars = append(bars, page.Bars[symbol]...)

		if page.NextPageToken == nil || *page.NextPageToken == "" {
			break
		}
		token = *page.NextPageToken
		if _, ok := seen[token]; ok {
			return nil, fail(0, errors.NewErrorDetails("Pagination token repeated", string(errors.UpstreamDecodeError), token))
		}
		seen[token] = struct{}{}
	}

	c.months.Add(1)
	c.logger.InfoContext(ctx, "Month fetched from upstream",
		logger.Field{Key: "symbol", Value: symbol},
		logger.Field{Key: "timeframe", Value: timeframe},
		logger.Field{Key: "month", Value: window.String()},
		logger.Field{Key: "pages", Value: pages},
		logger.Field{Key: "bars", Value: len(bars)},
	)
	return bars, nil
}

// fetchPage issues one request bounded by the configured upstream timeout.
// The returned status is zero when no response was received.
func (c *Client) fetchPage(ctx context.Context, symbol, timeframe string, window interval.Month, token string) (*barsResponse, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.settings.UpstreamTimeout())
	defer cancel()

	endpoint := strings.TrimRight(c.settings.BaseURL(), "/") + barsPath

	query := url.Values{}
	query.Set("symbols", symbol)
	query.Set("timeframe", timeframe)
	query.Set("start", window.Start.Format(time.RFC3339))
	query.Set("end", window.End.Format(time.RFC3339Nano))
	query.Set("limit", strconv.Itoa(c.config.PageLimit))
	query.Set("adjustment", c.config.Adjustment)
	query.Set("feed", c.settings.Feed())
	query.Set("currency", c.config.Currency)
	query.Set("sort", "asc")
	if token != "" {
		query.Set("page_token", token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, 0, errors.NewErrorDetailsWithCause("Failed to build upstream request", string(errors.UpstreamRequestError), endpoint, err)
	}
	req.Header.Set(headerKeyID, c.config.KeyID)
	req.Header.Set(headerSecretKey, c.config.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.NewErrorDetailsWithCause("Upstream request failed", string(errors.UpstreamRequestError), endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, resp.StatusCode, errors.NewErrorDetails(
			fmt.Sprintf("Upstream responded %s: %s", resp.Status, strings.TrimSpace(string(body))),
			string(errors.UpstreamStatusError),
			endpoint,
		)
	}

	var page barsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, resp.StatusCode, errors.NewErrorDetailsWithCause("Failed to decode upstream response", string(errors.UpstreamDecodeError), endpoint, err)
	}

	return &page, resp.StatusCode, nil
}

func (c *Client) CollectCounters(counters *barv1.TierCounters) {
	counters.L3Months += c.months.Load()
	counters.L3Pages += c.pages.Load()
	counters.L3Failures += c.failures.Load()
}

func (c *Client) ResetCounters() {
	c.months.Store(0)
	c.pages.Store(0)
	c.failures.Store(0)
}
