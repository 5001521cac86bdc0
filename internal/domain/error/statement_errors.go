// Package error defines domain-specific errors for the BankFlow application.
package error

import "errors"

// Statement processing domain errors.
var (
	// ErrMissingTransactions is returned when the transactions table is absent from the request.
	ErrMissingTransactions = errors.New("transactions table is required")

	// ErrMissingLineDate is returned when a statement line has no date field.
	ErrMissingLineDate = errors.New("statement line date is required")
)

// StatementErrorCode defines error codes for statement processing errors.
// Format: STM-XXYYYY where XX is category and YYYY is specific error.
type StatementErrorCode string

const (
	// Schema errors (01XXXX)
	ErrCodeMissingTransactions StatementErrorCode = "STM-010001"
	ErrCodeMissingLineDate     StatementErrorCode = "STM-010002"
)

// StatementError represents a statement processing error with code and message.
type StatementError struct {
	Code    StatementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}

// NewStatementError creates a new StatementError with the given code and message.
func NewStatementError(code StatementErrorCode, message string, err error) *StatementError {
	return &StatementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
