package common

import (
	"errors"
	"net/http"
)

// ErrorResponse is the JSON shape of an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code, a user-presentable message and the HTTP
// status the API should answer with.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError creates a new custom error.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// HasCode reports whether err (or anything it wraps) is a CustomError with the
// given code.
func HasCode(err error, code string) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// ValidationError marks input rejected before any network call was made.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError checks whether err is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Predefined error codes.
const (
	// Client errors (4xx)
	ErrCodeInvalidRequest    = "INVALID_REQUEST"    // 400
	ErrCodeNotFound          = "NOT_FOUND"          // 404
	ErrCodeRequestTimeout    = "REQUEST_TIMEOUT"    // 408
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"  // 429
	ErrCodeRateLimited       = "RATE_LIMITED"       // 429 (upstream 402)
	ErrCodeRecipeUnavailable = "RECIPE_UNAVAILABLE" // 404 (upstream 404)

	// Server errors (5xx)
	ErrCodeInternalError       = "INTERNAL_ERROR"       // 500
	ErrCodeUpstreamFailure     = "UPSTREAM_FAILURE"     // 502
	ErrCodeUpstreamUnreachable = "UPSTREAM_UNREACHABLE" // 502
)

// Predefined errors.
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "Invalid request", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "Resource not found", http.StatusNotFound, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "Request timeout", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "Too many requests", http.StatusTooManyRequests, nil)
	ErrInternalError   = NewError(ErrCodeInternalError, "Internal server error", http.StatusInternalServerError, nil)

	// Upstream errors
	ErrRateLimited       = NewError(ErrCodeRateLimited, "Spoonacular rate limit reached. Try again later.", http.StatusTooManyRequests, nil)
	ErrRecipeUnavailable = NewError(ErrCodeRecipeUnavailable, "Recipe details unavailable. This recipe may have been removed.", http.StatusNotFound, nil)
)
