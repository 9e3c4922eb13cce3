package error

import "errors"

// Budget plan domain errors.
var (
	// ErrBudgetPlanNotFound is returned when a budget plan is not found in the system.
	ErrBudgetPlanNotFound = errors.New("budget plan not found")

	// ErrInvalidPlanType is returned when the plan type is invalid.
	ErrInvalidPlanType = errors.New("invalid plan type")
)

// BudgetPlanErrorCode defines error codes for budget plan errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetPlanErrorCode string

const (
	ErrCodeInvalidPlanType         BudgetPlanErrorCode = "BGT-010001"
	ErrCodeMissingBudgetPlanFields BudgetPlanErrorCode = "BGT-010002"
	ErrCodeBudgetPlanNotFound      BudgetPlanErrorCode = "BGT-020001"
)

// BudgetPlanError represents a budget plan error with code and message.
type BudgetPlanError struct {
	Code    BudgetPlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetPlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetPlanError) Unwrap() error {
	return e.Err
}

// NewBudgetPlanError creates a new BudgetPlanError with the given code and message.
func NewBudgetPlanError(code BudgetPlanErrorCode, message string, err error) *BudgetPlanError {
	return &BudgetPlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
