package warmup

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/interval"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	partitionDomain "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/partition"
)

const monthLayout = "2006-01"

// Job is one warmup run: every month of [From, To] for every symbol.
type Job struct {
	Symbols   []string
	Timeframe string
	From      interval.Month
	To        interval.Month
}

// Result is the number of bars resolved per symbol.
type Result map[string]int

// ParseJob reads a Job from command line arguments.
func ParseJob(args []string) (Job, error) {
	fs := flag.NewFlagSet("warmup", flag.ContinueOnError)
	symbols := fs.String("symbols", "", "comma separated symbols, e.g. AAPL,MSFT")
	timeframe := fs.String("timeframe", "1Day", "bar timeframe")
	from := fs.String("from", "", "first month, YYYY-MM")
	to := fs.String("to", "", "last month, YYYY-MM, defaults to -from")

	if err := fs.Parse(args); err != nil {
		return Job{}, err
	}

	job := Job{Timeframe: *timeframe}
	for _, symbol := range strings.Split(*symbols, ",") {
		symbol = barv1.NormalizeSymbol(symbol)
		if symbol == "" {
			continue
		}
		if err := barv1.ValidateSymbol(symbol); err != nil {
			return Job{}, err
		}
		job.Symbols = append(job.Symbols, symbol)
	}
	if len(job.Symbols) == 0 {
		return Job{}, &barv1.ValidationError{Field: "symbols", Reason: "is required"}
	}
	if err := barv1.ValidateTimeframe(job.Timeframe); err != nil {
		return Job{}, err
	}

	if *to == "" {
		*to = *from
	}
	var err error
	if job.From, err = parseMonth("from", *from); err != nil {
		return Job{}, err
	}
	if job.To, err = parseMonth("to", *to); err != nil {
		return Job{}, err
	}
	if job.From.Start.After(job.To.Start) {
		return Job{}, &barv1.ValidationError{Field: "from", Reason: "must not be after to"}
	}

	return job, nil
}

func parseMonth(field, value string) (interval.Month, error) {
	t, err := time.Parse(monthLayout, value)
	if err != nil {
		return interval.Month{}, &barv1.ValidationError{Field: field, Reason: "expected YYYY-MM"}
	}
	return interval.NewMonth(t.Year(), t.Month()), nil
}

// Run fills the month partitions of the job. A failing symbol does not stop the others.
func Run(ctx context.Context, partitions partitionDomain.Usecase, job Job, log logger.Interface) (Result, error) {
	result := make(Result, len(job.Symbols))
	var failed []string

	for _, symbol := range job.Symbols {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		bars, err := partitions.GetRange(ctx, symbol, job.Timeframe, job.From.Start, job.To.End)
		if err != nil {
			log.ErrorContext(ctx, errors.TracerFromError(err), logger.NewField("symbol", symbol))
			failed = append(failed, symbol)
			continue
		}

		result[symbol] = len(bars)
		log.InfoContext(ctx, "Warmed partitions",
			logger.NewField("symbol", symbol),
			logger.NewField("from", job.From.String()),
			logger.NewField("to", job.To.String()),
			logger.NewField("bars", len(bars)),
		)
	}

	if len(failed) > 0 {
		return result, errors.NewTracer(fmt.Sprintf("warmup failed for %s", strings.Join(failed, ",")))
	}
	return result, nil
}
