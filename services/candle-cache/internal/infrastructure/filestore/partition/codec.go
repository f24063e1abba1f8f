package partition

import (
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	"github.com/parquet-go/parquet-go"
)

// Codec serializes one partition file.
type Codec interface {
	Extension() string
	Encode(w io.Writer, bars barv1.List) error
	Decode(r io.ReaderAt, size int64) (barv1.List, error)
}

// NewCodec returns the codec for format ("json" or "parquet").
func NewCodec(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return JSONCodec{}, nil
	case "parquet":
		return ParquetCodec{}, nil
	default:
		return nil, errors.NewErrorDetails("Unsupported partition format", string(errors.PartitionFormatError), format)
	}
}

// JSONCodec stores a partition as a JSON array of bars.
type JSONCodec struct{}

func (JSONCodec) Extension() string { return "json" }

func (JSONCodec) Encode(w io.Writer, bars barv1.List) error {
	if bars == nil {
		bars = barv1.List{}
	}
	return json.NewEncoder(w).Encode(bars)
}

func (JSONCodec) Decode(r io.ReaderAt, size int64) (barv1.List, error) {
	var bars barv1.List
	if err := json.NewDecoder(io.NewSectionReader(r, 0, size)).Decode(&bars); err != nil {
		return nil, err
	}
	return bars, nil
}

// parquetBar is the columnar row layout; timestamps are unix milliseconds.
type parquetBar struct {
	Timestamp  int64   `parquet:"t"`
	Open       float64 `parquet:"o"`
	High       float64 `parquet:"h"`
	Low        float64 `parquet:"l"`
	Close      float64 `parquet:"c"`
	Volume     float64 `parquet:"v"`
	TradeCount int64   `parquet:"n,optional"`
	VWAP       float64 `parquet:"vw,optional"`
}

// ParquetCodec stores a partition as a parquet file.
type ParquetCodec struct{}

func (ParquetCodec) Extension() string { return "parquet" }

func (ParquetCodec) Encode(w io.Writer, bars barv1.List) error {
	rows := make([]parquetBar, len(bars))
	for i, b := range bars {
		rows[i] = parquetBar{
			Timestamp:  b.Timestamp.UnixMilli(),
			Open:       b.Open,
			High:       b.High,
			Low:        b.Low,
			Close:      b.Close,
			Volume:     b.Volume,
			TradeCount: b.TradeCount,
			VWAP:       b.VWAP,
		}
	}
	return parquet.Write(w, rows)
}

func (ParquetCodec) Decode(r io.ReaderAt, size int64) (barv1.List, error) {
	rows, err := parquet.Read[parquetBar](r, size)
	if err != nil {
		return nil, err
	}

	bars := make(barv1.List, len(rows))
	for i, row := range rows {
		bars[i] = barv1.Bar{
			Timestamp:  time.UnixMilli(row.Timestamp).UTC(),
			Open:       row.Open,
			High:       row.High,
			Low:        row.Low,
			Close:      row.Close,
			Volume:     row.Volume,
			TradeCount: row.TradeCount,
			VWAP:       row.VWAP,
		}
	}
	return bars, nil
}
