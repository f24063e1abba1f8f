package util

import (
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header used to propagate request ids between services.
	RequestIDHeader = "X-Request-Id"

	requestIDKey = key("x-request-id")
)

// generate returns a uuid-v4 string to use as request id
func generate() string {
	return uuid.NewString()
}
