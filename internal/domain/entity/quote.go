package entity

import "time"

// Quote is a point-in-time market price for a symbol. Quotes are a
// presentational overlay fetched from external providers; they never feed
// the ledger's purchase-basis valuations.
type Quote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Change24h float64   `json:"change_24h"`
	Timestamp time.Time `json:"timestamp"`
}
