// Package error defines domain-specific errors for the application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	// The message never reveals which of email or password was wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrInvalidToken is returned when a token is invalid, malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists   AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010004"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020002"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030002"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
