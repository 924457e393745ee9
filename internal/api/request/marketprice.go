package request

// UpsertMarketPriceRequest is the payload for recording a price
// observation. Writes replace any existing observation for the same
// symbol and date.
type UpsertMarketPriceRequest struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
}
