package error

import "errors"

// Ledger domain errors.
var (
	// ErrLedgerEntryNotFound is returned when a ledger entry is not found.
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")

	// ErrInvalidTransactionKind is returned when jenisTransaksi is not
	// pemasukan or pengeluaran.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidAmount is returned when jumlah is negative or unparseable.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidPeriode is returned when periode does not match YYYY-MM.
	ErrInvalidPeriode = errors.New("invalid periode")

	// ErrPeriodeAlreadyPublished is returned when publishing a period that
	// already has a publication record.
	ErrPeriodeAlreadyPublished = errors.New("periode already published")

	// ErrPeriodeNotPublished is returned when a resident queries an
	// unpublished period.
	ErrPeriodeNotPublished = errors.New("periode not published")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionKind LedgerErrorCode = "LED-010001"
	ErrCodeInvalidAmount          LedgerErrorCode = "LED-010002"
	ErrCodeInvalidPeriode         LedgerErrorCode = "LED-010003"
	ErrCodeMissingLedgerFields    LedgerErrorCode = "LED-010004"

	// Conflict errors (02XXXX)
	ErrCodePeriodeAlreadyPublished LedgerErrorCode = "LED-020001"

	// Authorization errors (03XXXX)
	ErrCodePeriodeNotPublished LedgerErrorCode = "LED-030001"

	// Not-found errors (04XXXX)
	ErrCodeLedgerEntryNotFound LedgerErrorCode = "LED-040001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
