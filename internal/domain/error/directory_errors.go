package error

import "errors"

// Resident directory domain errors.
var (
	// ErrDirectoryEntryNotFound is returned when a directory entry is not found.
	ErrDirectoryEntryNotFound = errors.New("warga not found")

	// ErrInvalidMonthName is returned when a month name is not one of the
	// twelve fixed month names.
	ErrInvalidMonthName = errors.New("invalid month name")

	// ErrEmptyAlamat is returned when an address update carries no address.
	ErrEmptyAlamat = errors.New("alamat is required")

	// ErrInvalidDirectoryRequest is returned for malformed request input
	// (bad ids, unparsable bodies) before any field-level validation.
	ErrInvalidDirectoryRequest = errors.New("invalid request")
)

// DirectoryErrorCode defines error codes for directory errors.
// Format: DIR-XXYYYY where XX is category and YYYY is specific error.
type DirectoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthName        DirectoryErrorCode = "DIR-010001"
	ErrCodeEmptyAlamat             DirectoryErrorCode = "DIR-010002"
	ErrCodeInvalidDirectoryRequest DirectoryErrorCode = "DIR-010003"

	// Not-found errors (04XXXX)
	ErrCodeDirectoryEntryNotFound DirectoryErrorCode = "DIR-040001"
)

// DirectoryError represents a directory error with code and message.
type DirectoryError struct {
	Code    DirectoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DirectoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// NewDirectoryError creates a new DirectoryError with the given code and message.
func NewDirectoryError(code DirectoryErrorCode, message string, err error) *DirectoryError {
	return &DirectoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
