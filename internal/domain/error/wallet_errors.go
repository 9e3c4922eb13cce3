package error

import "errors"

// Wallet domain errors.
var (
	// ErrWalletNotFound is returned when a wallet is not found in the system.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInvalidWalletType is returned when the wallet type is invalid.
	ErrInvalidWalletType = errors.New("invalid wallet type")

	// ErrInsufficientFunds is returned when a transfer or purchase exceeds the
	// available effective balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameWalletTransfer is returned when source and destination wallets are identical.
	ErrSameWalletTransfer = errors.New("cannot transfer to the same wallet")

	// ErrInvalidTransferAmount is returned when the transfer amount is not positive.
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WLT-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidWalletType     WalletErrorCode = "WLT-010001"
	ErrCodeMissingWalletFields   WalletErrorCode = "WLT-010002"
	ErrCodeSameWalletTransfer    WalletErrorCode = "WLT-010003"
	ErrCodeInvalidTransferAmount WalletErrorCode = "WLT-010004"

	// Lookup errors (02XXXX)
	ErrCodeWalletNotFound WalletErrorCode = "WLT-020001"

	// Funds errors (03XXXX)
	ErrCodeInsufficientFunds WalletErrorCode = "WLT-030001"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
