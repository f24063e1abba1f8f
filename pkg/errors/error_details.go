package errors

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-defined error message.
	Message string

	// Code (required) is one of the ErrorCode values.
	Code string

	// Field (optional) is the related field or operation the error occurred on, if any.
	Field string

	// Err (optional) is the underlying cause.
	Err error
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// NewErrorDetailsWithCause creates a new ErrorDetails struct that keeps the original error.
func NewErrorDetailsWithCause(message, code, field string, cause error) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
		Err:     cause,
	}
}

// Error() is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ErrorDetails) Unwrap() error {
	return e.Err
}

// ErrorCodeEquals checks whether a given `error` has a specific code anywhere in its chain.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	var details *ErrorDetails
	if !As(err, &details) {
		return false
	}

	return details.Code == string(code)
}
