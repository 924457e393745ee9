package model

import "time"

// MarketPrice is one observed price for a symbol on a calendar date.
// Multiple observations per symbol are allowed; the write path upserts
// on (user, symbol, date) so at most one row exists per day.
type MarketPrice struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category"`
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
