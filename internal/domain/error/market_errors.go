package error

import "errors"

// Market data errors.
var (
	// ErrQuoteNotFound is returned when no price could be fetched for a symbol.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrMarketUnavailable is returned when every upstream price source failed.
	ErrMarketUnavailable = errors.New("market data service unavailable")

	// ErrQuoteCacheMiss is returned when a quote is not in the cache.
	ErrQuoteCacheMiss = errors.New("quote not cached")
)
