// Package error defines domain-specific errors for the application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist or
	// does not belong to the acting user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNotesTooLong is returned when the transaction notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrInvalidListLimit is returned when a list limit is outside the allowed range.
	ErrInvalidListLimit = errors.New("limit out of range")

	// ErrInvalidAmount is returned when the transaction amount is not a valid decimal.
	ErrInvalidAmount = errors.New("invalid amount")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010001"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010002"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010003"
	ErrCodeNotesTooLong             TransactionErrorCode = "TXN-010004"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidListLimit         TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidAmount            TransactionErrorCode = "TXN-010007"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
