package model

import "time"

// PortfolioItem is the derived state of one symbol: remaining quantity,
// weighted-average cost basis, current valuation and lifetime P&L.
// LastPrices holds the last seven observed prices oldest-first, padded
// with the current price when fewer observations exist (sparkline data).
type PortfolioItem struct {
	Symbol            string    `json:"symbol"`
	Category          string    `json:"category"`
	Quantity          float64   `json:"quantity"`
	Invested          float64   `json:"invested"`
	CurrentValue      float64   `json:"currentValue"`
	CurrentPrice      float64   `json:"currentPrice"`
	Realized          float64   `json:"realized"`
	ProfitLoss        float64   `json:"profitLoss"`
	ProfitLossPercent float64   `json:"profitLossPercent"`
	LastPrices        []float64 `json:"lastPrices"`
}

// CategoryStats aggregates one asset-class label. Invested and Sold are
// gross cash-flow sums over the transactions in scope (not netted
// through per-symbol averaging); CurrentValue counts only open
// positions. ProfitLoss follows the cash-flow identity
// currentValue + sold - invested.
type CategoryStats struct {
	Category          string  `json:"category"`
	Invested          float64 `json:"invested"`
	Sold              float64 `json:"sold"`
	CurrentValue      float64 `json:"currentValue"`
	ProfitLoss        float64 `json:"profitLoss"`
	ProfitLossPercent float64 `json:"profitLossPercent"`
	Weight            float64 `json:"weight"`
}

// PortfolioSummary is the full derived portfolio view: totals plus the
// per-symbol and per-category breakdowns, both sorted by current value
// descending.
type PortfolioSummary struct {
	TotalInvested          float64         `json:"totalInvested"`
	TotalSold              float64         `json:"totalSold"`
	TotalCurrentValue      float64         `json:"totalCurrentValue"`
	TotalProfitLoss        float64         `json:"totalProfitLoss"`
	TotalProfitLossPercent float64         `json:"totalProfitLossPercent"`
	Items                  []PortfolioItem `json:"items"`
	Categories             []CategoryStats `json:"categories"`
}

// PricePoint is one dated price observation in a symbol's history.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// SymbolDetail is the position view for a single symbol: holdings,
// lifetime P&L, holding duration and a short price history. PLPercent
// uses the remaining cost basis as denominator, falling back to the
// peak invested amount once the position is fully closed.
type SymbolDetail struct {
	Symbol          string        `json:"symbol"`
	Quantity        float64       `json:"quantity"`
	Invested        float64       `json:"invested"`
	Realized        float64       `json:"realized"`
	CurrentValue    float64       `json:"currentValue"`
	LatestPrice     float64       `json:"latestPrice"`
	LatestPriceDate *time.Time    `json:"latestPriceDate"`
	UnrealizedPL    float64       `json:"unrealizedPL"`
	TotalPL         float64       `json:"totalPL"`
	PLPercent       float64       `json:"plPercent"`
	HoldingDays     int           `json:"holdingDays"`
	FirstBuyDate    *time.Time    `json:"firstBuyDate"`
	PriceHistory    []PricePoint  `json:"priceHistory"`
	Transactions    []Transaction `json:"transactions"`
}

// HistoryPoint is one month-end net-worth observation, labelled
// "MM/YYYY".
type HistoryPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
