package request

// CreateTransactionRequest is the payload for recording a new trade.
// TotalMoney is the cash amount moved, always non-negative; direction
// comes from Type.
type CreateTransactionRequest struct {
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	Category   string  `json:"category"`
	Symbol     string  `json:"symbol"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	Fee        float64 `json:"fee"`
	TotalMoney float64 `json:"totalMoney"`
	Notes      string  `json:"notes"`
}

// UpdateTransactionRequest is the payload for editing a trade. Only
// the provided fields change.
type UpdateTransactionRequest struct {
	Date       *string  `json:"date"`
	Type       *string  `json:"type"`
	Category   *string  `json:"category"`
	Symbol     *string  `json:"symbol"`
	Quantity   *float64 `json:"quantity"`
	Price      *float64 `json:"price"`
	Fee        *float64 `json:"fee"`
	TotalMoney *float64 `json:"totalMoney"`
	Notes      *string  `json:"notes"`
}
