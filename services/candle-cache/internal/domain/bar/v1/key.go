package barv1

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/interval"
)

// WeekKey identifies one L1 week bucket.
type WeekKey struct {
	Symbol    string
	Timeframe string
	Year      int // ISO week-year
	Week      int
}

// NewWeekKey builds the bucket key of week w.
func NewWeekKey(symbol, timeframe string, w interval.Week) WeekKey {
	return WeekKey{Symbol: symbol, Timeframe: timeframe, Year: w.Year, Week: w.Week}
}

// BucketKey renders the Redis key holding the bucket: {prefix}bars:{symbol}:{tf}:{week}:{year}.
func (k WeekKey) BucketKey(prefix string) string {
	return fmt.Sprintf("%sbars:%s:%s:%d:%d", prefix, k.Symbol, k.Timeframe, k.Week, k.Year)
}

// IndexKey renders the Redis key of the retention index of the bucket's symbol and timeframe.
func (k WeekKey) IndexKey(prefix string) string {
	return IndexKey(prefix, k.Symbol, k.Timeframe)
}

// IndexKey renders {prefix}weeks:{symbol}:{tf}.
func IndexKey(prefix, symbol, timeframe string) string {
	return fmt.Sprintf("%sweeks:%s:%s", prefix, symbol, timeframe)
}

// CacheKeyFilter selects L1 buckets. Empty or zero fields match anything.
type CacheKeyFilter struct {
	Symbol    string
	Timeframe string
	Week      int
	Year      int
}

// Pattern renders the filter as a Redis glob over bucket keys.
func (f CacheKeyFilter) Pattern(prefix string) string {
	part := func(s string) string {
		if s == "" {
			return "*"
		}
		return s
	}
	number := func(n int) string {
		if n == 0 {
			return "*"
		}
		return strconv.Itoa(n)
	}

	return fmt.Sprintf("%sbars:%s:%s:%s:%s", prefix, part(f.Symbol), part(f.Timeframe), number(f.Week), number(f.Year))
}

// PartitionKey identifies one L2 month partition.
type PartitionKey struct {
	Symbol    string     `json:"symbol"`
	Timeframe string     `json:"timeframe"`
	Year      int        `json:"year"`
	Month     time.Month `json:"month"`
}

// String renders the key for logging and request coalescing.
func (k PartitionKey) String() string {
	return fmt.Sprintf("%s/%04d-%02d_%s", k.Symbol, k.Year, int(k.Month), k.Timeframe)
}

// FileName renders YYYY-MM_<timeframe>.<ext>.
func (k PartitionKey) FileName(ext string) string {
	return fmt.Sprintf("%04d-%02d_%s.%s", k.Year, int(k.Month), k.Timeframe, ext)
}

// ParsePartitionFileName decodes a partition file name back into year, month and timeframe.
func ParsePartitionFileName(symbol, name string) (PartitionKey, string, bool) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return PartitionKey{}, "", false
	}
	base, ext := name[:dot], name[dot+1:]

	date, timeframe, ok := strings.Cut(base, "_")
	if !ok || timeframe == "" {
		return PartitionKey{}, "", false
	}

	t, err := time.Parse("2006-01", date)
	if err != nil {
		return PartitionKey{}, "", false
	}

	return PartitionKey{
		Symbol:    symbol,
		Timeframe: timeframe,
		Year:      t.Year(),
		Month:     t.Month(),
	}, ext, true
}

// PartitionFilter selects L2 partitions of one symbol. Zero fields match anything.
type PartitionFilter struct {
	Year      int
	Month     time.Month
	Timeframe string
}

// Matches reports whether key passes the filter.
func (f PartitionFilter) Matches(key PartitionKey) bool {
	if f.Year != 0 && f.Year != key.Year {
		return false
	}
	if f.Month != 0 && f.Month != key.Month {
		return false
	}
	if f.Timeframe != "" && f.Timeframe != key.Timeframe {
		return false
	}
	return true
}
