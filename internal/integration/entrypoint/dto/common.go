// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/shopspring/decimal"

// DateLayout is the wire format for dates in requests and responses.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a simple confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func floatPtrToDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
