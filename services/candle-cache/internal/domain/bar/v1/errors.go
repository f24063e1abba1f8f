package barv1

import (
	"fmt"
	"time"
)

// UpstreamFetchError is returned when a month could not be fetched completely from the upstream API.
type UpstreamFetchError struct {
	Symbol     string
	Year       int
	Month      time.Month
	StatusCode int
	Err        error
}

func (e *UpstreamFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s %04d-%02d: upstream status %d: %v", e.Symbol, e.Year, int(e.Month), e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s %04d-%02d: %v", e.Symbol, e.Year, int(e.Month), e.Err)
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}

// PartitionNotFoundError is returned by admin operations for a symbol without any partition directory.
type PartitionNotFoundError struct {
	Symbol string
}

func (e *PartitionNotFoundError) Error() string {
	return fmt.Sprintf("no partitions stored for symbol %s", e.Symbol)
}

// ConfigurationError is returned when a required setting is missing at the point of use.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required setting %s", e.Key)
}

// ValidationError is returned for malformed caller input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
