package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/muhammadchandra19/candlecache/pkg/errors"
	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/pkg/util"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestID propagates X-Request-Id, generating one when the caller sent none.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := util.WithRequestID(r.Context(), r.Header.Get(util.RequestIDHeader))
		ctx = util.WithClientIP(ctx, clientIP(r))
		w.Header().Set(util.RequestIDHeader, util.GetRequestID(ctx))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// AccessLog logs one line per request and turns panics into 500 answers.
func AccessLog(log logger.Interface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				if p := recover(); p != nil {
					writeError(r.Context(), rec, log, errors.NewTracer(fmt.Sprintf("panic: %v", p)),
						logger.Field{Key: "path", Value: r.URL.Path},
					)
				}

				log.InfoContext(r.Context(), "HTTP request",
					logger.Field{Key: "method", Value: r.Method},
					logger.Field{Key: "path", Value: r.URL.Path},
					logger.Field{Key: "status", Value: rec.status},
					logger.Field{Key: "duration_ms", Value: time.Since(start).Milliseconds()},
					logger.Field{Key: "client_ip", Value: util.GetClientIP(r.Context())},
				)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
