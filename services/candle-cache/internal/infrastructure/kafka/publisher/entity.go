package publisher

import (
	"time"

	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
)

// PartitionWrittenEvent is published once per persisted month partition.
type PartitionWrittenEvent struct {
	Symbol    string    `json:"symbol"`
	Timeframe string    `json:"timeframe"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Bars      int       `json:"bars"`
	First     time.Time `json:"first"`
	Last      time.Time `json:"last"`
	WrittenAt time.Time `json:"written_at"`
}

// NewPartitionWrittenEvent summarises bars, which must be sorted.
func NewPartitionWrittenEvent(key barv1.PartitionKey, bars barv1.List, writtenAt time.Time) PartitionWrittenEvent {
	event := PartitionWrittenEvent{
		Symbol:    key.Symbol,
		Timeframe: key.Timeframe,
		Year:      key.Year,
		Month:     int(key.Month),
		Bars:      len(bars),
		WrittenAt: writtenAt.UTC(),
	}
	if len(bars) > 0 {
		event.First = bars[0].Timestamp
		event.Last = bars[len(bars)-1].Timestamp
	}
	return event
}
