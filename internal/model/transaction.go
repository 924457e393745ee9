package model

import "time"

// Transaction types. Sell and close are treated identically by every
// calculation; close records a position realized at market, sell an
// ordinary disposal.
const (
	TransactionBuy   = "buy"
	TransactionSell  = "sell"
	TransactionClose = "close"
)

// Transaction represents a single recorded trade for a user.
// TotalMoney is the authoritative cash amount moved and is always
// non-negative; direction is carried by Type. Price and Fee are
// informational and never enter P&L calculations.
type Transaction struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Date       time.Time `json:"date"`
	Type       string    `json:"type"`
	Category   string    `json:"category"`
	Symbol     string    `json:"symbol"`
	Quantity   float64   `json:"quantity"`
	Price      float64   `json:"price"`
	Fee        float64   `json:"fee"`
	TotalMoney float64   `json:"totalMoney"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// IsBuy reports whether the transaction adds to a position.
func (t Transaction) IsBuy() bool {
	return t.Type == TransactionBuy
}

// IsSell reports whether the transaction reduces a position.
// Sell and close are equivalent in all computations.
func (t Transaction) IsSell() bool {
	return t.Type == TransactionSell || t.Type == TransactionClose
}
