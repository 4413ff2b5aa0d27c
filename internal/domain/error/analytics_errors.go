// Package error defines domain-specific errors for the application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrMissingYear is returned when the trends year is not provided.
	ErrMissingYear = errors.New("year is required")

	// ErrInvalidRecentLimit is returned when the recent-transactions limit is
	// outside the allowed range.
	ErrInvalidRecentLimit = errors.New("limit must be between 1 and 50")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange   AnalyticsErrorCode = "ANL-010001"
	ErrCodeInvalidDateFormat  AnalyticsErrorCode = "ANL-010002"
	ErrCodeMissingYear        AnalyticsErrorCode = "ANL-010003"
	ErrCodeInvalidRecentLimit AnalyticsErrorCode = "ANL-010004"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsInternalError AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
