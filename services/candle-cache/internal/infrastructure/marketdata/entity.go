package marketdata

import (
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

const (
	barsPath = "/v2/stocks/bars"

	headerKeyID     = "APCA-API-KEY-ID"
	headerSecretKey = "APCA-API-SECRET-KEY"

	// maxErrorBody bounds how much of a failed response body ends up in the error.
	maxErrorBody = 512
)

// barsResponse is one page of the multi-symbol bars endpoint.
type barsResponse struct {
	Bars          map[string]barv1.List `json:"bars"`
	NextPageToken *string               `json:"next_page_token"`
}
