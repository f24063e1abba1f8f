package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/candle"
)

const dateLayout = "2006-01-02"

type barsRequest struct {
	Symbol    string    `validate:"required,max=32"`
	Timeframe string    `validate:"omitempty,max=16"`
	Start     time.Time `validate:"required"`
	End       time.Time `validate:"required,gtefield=Start"`
}

// BarsHandler serves GET /v1/bars.
type BarsHandler struct {
	usecase  candle.Usecase
	validate *validator.Validate
	logger   logger.Interface
}

// NewBarsHandler creates a new BarsHandler.
func NewBarsHandler(usecase candle.Usecase, validate *validator.Validate, logger logger.Interface) *BarsHandler {
	return &BarsHandler{
		usecase:  usecase,
		validate: validate,
		logger:   logger,
	}
}

// parseInstant accepts RFC 3339 or a plain date. A plain end date covers its whole day.
func parseInstant(field, value string, endOfDay bool) (time.Time, error) {
	if value == "" {
		return time.Time{}, badRequest(field, "is required")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, badRequest(field, "must be RFC 3339 or YYYY-MM-DD")
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Millisecond)
	}
	return t, nil
}

func (h *BarsHandler) GetBars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	start, err := parseInstant("start", query.Get("start"), false)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}
	end, err := parseInstant("end", query.Get("end"), true)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	req := barsRequest{
		Symbol:    strings.TrimSpace(query.Get("symbol")),
		Timeframe: strings.TrimSpace(query.Get("timeframe")),
		Start:     start,
		End:       end,
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(ctx, w, h.logger, validationError(err))
		return
	}

	bars, err := h.usecase.GetBars(ctx, req.Symbol, req.Timeframe, req.Start, req.End)
	if err != nil {
		writeError(ctx, w, h.logger, err,
			logger.Field{Key: "symbol", Value: req.Symbol},
			logger.Field{Key: "timeframe", Value: req.Timeframe},
		)
		return
	}

	writeSuccess(w, bars)
}

// validationError reports the first failing field of a validator error.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return badRequest(strings.ToLower(fe.Field()), "failed on "+fe.Tag())
	}
	return badRequest("request", err.Error())
}
