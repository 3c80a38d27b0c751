// Package error defines domain-specific errors for the dues-management backend.
package error

import "errors"

// Auth domain errors.
var (
	// ErrKKAlreadyExists is returned when registering a household id that is taken.
	ErrKKAlreadyExists = errors.New("account with the same KK already exists")

	// ErrInvalidKK is returned when the household id is missing or non-numeric.
	ErrInvalidKK = errors.New("invalid KK")

	// ErrInvalidCredentials is returned when the KK/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid account")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingToken is returned when no bearer token was supplied.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned when the bearer token fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("forbidden")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidKK          AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010002"
	ErrCodeMissingAuthFields  AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010004"

	// Conflict errors (02XXXX)
	ErrCodeKKExists AuthErrorCode = "AUTH-020001"

	// Token errors (03XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-030001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030002"
	ErrCodeForbidden    AuthErrorCode = "AUTH-030003"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-030004"

	// Not-found errors (04XXXX)
	ErrCodeUserNotFound AuthErrorCode = "AUTH-040001"
)

// AuthError represents an auth error with code and message.
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
