package error

import "errors"

// Billing cycle and payment claim domain errors.
var (
	// ErrBillingCycleNotFound is returned when a billing cycle is not found.
	ErrBillingCycleNotFound = errors.New("billing cycle not found")

	// ErrEmptyBillingItems is returned when a cycle is created without line items.
	ErrEmptyBillingItems = errors.New("billing cycle requires at least one item")

	// ErrClaimNotFound is returned when a payment claim is not found.
	ErrClaimNotFound = errors.New("payment claim not found")

	// ErrInvalidClaimStatus is returned when a review outcome is not
	// verified or need_to_fix.
	ErrInvalidClaimStatus = errors.New("invalid claim status")

	// ErrMissingProofImage is returned when a submission carries no proof image.
	ErrMissingProofImage = errors.New("proof image is required")
)

// BillingErrorCode defines error codes for billing and claim errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyBillingItems  BillingErrorCode = "BIL-010001"
	ErrCodeInvalidClaimStatus BillingErrorCode = "BIL-010002"
	ErrCodeMissingProofImage  BillingErrorCode = "BIL-010003"
	ErrCodeMissingBillFields  BillingErrorCode = "BIL-010004"

	// Not-found errors (04XXXX)
	ErrCodeBillingCycleNotFound BillingErrorCode = "BIL-040001"
	ErrCodeClaimNotFound        BillingErrorCode = "BIL-040002"
)

// BillingError represents a billing/claim error with code and message.
type BillingError struct {
	Code    BillingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillingError) Unwrap() error {
	return e.Err
}

// NewBillingError creates a new BillingError with the given code and message.
func NewBillingError(code BillingErrorCode, message string, err error) *BillingError {
	return &BillingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
