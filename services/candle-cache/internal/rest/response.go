package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	barv1 "github.com/muhammadchandra19/candlecache/services/candle-cache/internal/domain/bar/v1"
	"google.golang.org/grpc/codes"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{
		Status:    "success",
		Message:   "success",
		Code:      codes.OK.String(),
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

// statusOf maps an error chain to the HTTP status, the status code string and a client safe message.
func statusOf(err error) (int, codes.Code, string) {
	var (
		validationErr *barv1.ValidationError
		notFoundErr   *barv1.PartitionNotFoundError
		upstreamErr   *barv1.UpstreamFetchError
		configErr     *barv1.ConfigurationError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, codes.InvalidArgument, validationErr.Error()
	case errors.ErrorCodeEquals(err, errors.SettingInvalidError),
		errors.ErrorCodeEquals(err, errors.GeneralBadRequestError):
		var details *errors.ErrorDetails
		errors.As(err, &details)
		return http.StatusBadRequest, codes.InvalidArgument, details.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, codes.NotFound, notFoundErr.Error()
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway, codes.Unavailable, upstreamErr.Error()
	case errors.As(err, &configErr):
		return http.StatusInternalServerError, codes.FailedPrecondition, configErr.Error()
	default:
		return http.StatusInternalServerError, codes.Internal, "internal server error"
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, log logger.Interface, err error, fields ...logger.Field) {
	status, code, message := statusOf(err)
	if status >= http.StatusInternalServerError || status == http.StatusBadGateway {
		log.ErrorContext(ctx, err, fields...)
	}

	writeJSON(w, status, Response{
		Status:    "error",
		Message:   message,
		Code:      code.String(),
		Timestamp: time.Now().UTC(),
	})
}

func badRequest(field, reason string) error {
	return &barv1.ValidationError{Field: field, Reason: reason}
}
