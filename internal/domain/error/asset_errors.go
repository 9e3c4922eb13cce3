package error

import "errors"

// Asset domain errors.
var (
	// ErrAssetNotFound is returned when an asset is not found in the system.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidAssetType is returned when the asset type is invalid.
	ErrInvalidAssetType = errors.New("invalid asset type")
)

// AssetErrorCode defines error codes for asset errors.
// Format: AST-XXYYYY where XX is category and YYYY is specific error.
type AssetErrorCode string

const (
	ErrCodeInvalidAssetType   AssetErrorCode = "AST-010001"
	ErrCodeMissingAssetFields AssetErrorCode = "AST-010002"
	ErrCodeAssetNotFound      AssetErrorCode = "AST-020001"
)

// AssetError represents an asset error with code and message.
type AssetError struct {
	Code    AssetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AssetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AssetError) Unwrap() error {
	return e.Err
}

// NewAssetError creates a new AssetError with the given code and message.
func NewAssetError(code AssetErrorCode, message string, err error) *AssetError {
	return &AssetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
