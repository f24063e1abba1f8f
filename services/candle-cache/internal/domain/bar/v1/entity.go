package barv1

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/interval"
)

// Bar is one OHLCV sample. JSON field names follow the upstream market-data wire format.
type Bar struct {
	Timestamp  time.Time `json:"t"`
	Open       float64   `json:"o"`
	High       float64   `json:"h"`
	Low        float64   `json:"l"`
	Close      float64   `json:"c"`
	Volume     float64   `json:"v"`
	TradeCount int64     `json:"n,omitempty"`
	VWAP       float64   `json:"vw,omitempty"`
}

// List is a sequence of bars with no ordering guarantee unless Sort was called.
type List []Bar

// Sort orders the list ascending by timestamp in place, keeping the input order of ties.
func (l List) Sort() List {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Timestamp.Before(l[j].Timestamp)
	})
	return l
}

// Within returns the bars whose timestamp lies in [start, end] compared at millisecond resolution.
func (l List) Within(start, end time.Time) List {
	from, to := start.UnixMilli(), end.UnixMilli()
	out := make(List, 0, len(l))
	for _, b := range l {
		ms := b.Timestamp.UnixMilli()
		if ms >= from && ms <= to {
			out = append(out, b)
		}
	}
	return out
}

// Between returns the bars whose timestamp lies in [start, end] using exact instants.
func (l List) Between(start, end time.Time) List {
	out := make(List, 0, len(l))
	for _, b := range l {
		if !b.Timestamp.Before(start) && !b.Timestamp.After(end) {
			out = append(out, b)
		}
	}
	return out
}

// InWindow returns the bars whose timestamp lies in the half-open window [start, next).
func (l List) InWindow(start, next time.Time) List {
	out := make(List, 0, len(l))
	for _, b := range l {
		if !b.Timestamp.Before(start) && b.Timestamp.Before(next) {
			out = append(out, b)
		}
	}
	return out
}

// GroupByMonth splits the list by the UTC calendar month of each bar, months in ascending order.
func (l List) GroupByMonth() ([]interval.Month, map[interval.Month]List) {
	groups := make(map[interval.Month]List)
	var months []interval.Month
	for _, b := range l {
		m := interval.MonthOf(b.Timestamp)
		if _, ok := groups[m]; !ok {
			months = append(months, m)
		}
		groups[m] = append(groups[m], b)
	}

	slices.SortFunc(months, func(a, b interval.Month) int {
		return a.Start.Compare(b.Start)
	})
	return months, groups
}

// NormalizeSymbol upper-cases and trims a ticker.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// keyReserved are the characters that would break file names, key segments or Redis glob patterns.
const keyReserved = "/_:*?[]\\ "

// ValidateTimeframe rejects timeframes that would make keys or file names ambiguous.
func ValidateTimeframe(timeframe string) error {
	if timeframe == "" {
		return &ValidationError{Field: "timeframe", Reason: "is required"}
	}
	if strings.ContainsAny(timeframe, keyReserved) {
		return &ValidationError{Field: "timeframe", Reason: "must not contain '/', '_', ':', '\\', spaces or glob characters"}
	}
	return nil
}

// ValidateSymbol rejects symbols that cannot be used as a directory or key segment.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return &ValidationError{Field: "symbol", Reason: "is required"}
	}
	if strings.ContainsAny(symbol, keyReserved) || symbol == "." || symbol == ".." {
		return &ValidationError{Field: "symbol", Reason: "contains invalid characters"}
	}
	return nil
}
