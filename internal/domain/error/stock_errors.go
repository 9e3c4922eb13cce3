package error

import "errors"

// Stock domain errors.
var (
	// ErrStockNotFound is returned when a stock is not found in the system.
	ErrStockNotFound = errors.New("stock not found")

	// ErrStockWalletRequired is returned when a stock operation targets a
	// wallet that is not of Stock type.
	ErrStockWalletRequired = errors.New("stock can only be added to a Stock type wallet")

	// ErrNotHolding is returned when a sale is attempted on an already-sold stock.
	ErrNotHolding = errors.New("stock is not currently held")

	// ErrInvalidStockVolume is returned when the stock volume is negative.
	ErrInvalidStockVolume = errors.New("invalid stock volume")

	// ErrInvalidStockPrice is returned when the stock price is negative.
	ErrInvalidStockPrice = errors.New("invalid stock price")
)

// StockErrorCode defines error codes for stock errors.
// Format: STK-XXYYYY where XX is category and YYYY is specific error.
type StockErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeStockWalletRequired StockErrorCode = "STK-010001"
	ErrCodeInvalidStockVolume  StockErrorCode = "STK-010002"
	ErrCodeInvalidStockPrice   StockErrorCode = "STK-010003"
	ErrCodeMissingStockFields  StockErrorCode = "STK-010004"

	// Lookup errors (02XXXX)
	ErrCodeStockNotFound       StockErrorCode = "STK-020001"
	ErrCodeStockWalletNotFound StockErrorCode = "STK-020002"

	// State errors (03XXXX)
	ErrCodeNotHolding StockErrorCode = "STK-030001"
)

// StockError represents a stock error with code and message.
type StockError struct {
	Code    StockErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StockError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StockError) Unwrap() error {
	return e.Err
}

// NewStockError creates a new StockError with the given code and message.
func NewStockError(code StockErrorCode, message string, err error) *StockError {
	return &StockError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
