package service

import (
	"math"
	"sort"
	"time"

	"github.com/minhdq/portfolio-tracker/internal/model"
)

// CalculateSymbolDetail replays one symbol's transactions in
// chronological order and returns the position view: holdings, lifetime
// P&L, holding duration, a short price history and the transactions
// themselves (newest first, for display).
//
// Unlike CalculatePortfolio this replay needs chronological order
// because it tracks the first buy date and the peak invested amount.
// Sells arriving while no quantity is held are ignored here rather than
// booked as pure gain.
//
// now supplies the current time for the holding-duration calculation so
// the function stays a total function of its inputs.
func CalculateSymbolDetail(symbol string, transactions []model.Transaction, prices []model.MarketPrice, filterYear int, now time.Time) model.SymbolDetail {
	scoped := make([]model.Transaction, 0, 8)
	for _, t := range transactions {
		if t.Symbol == symbol {
			scoped = append(scoped, t)
		}
	}
	scoped = filterByYear(scoped, filterYear)

	sort.SliceStable(scoped, func(i, j int) bool {
		return scoped[i].Date.Before(scoped[j].Date)
	})

	var quantity, invested, realized, peakInvested float64
	var firstBuyDate, lastTxnDate *time.Time

	for _, txn := range scoped {
		value := txn.TotalMoney
		txnDate := txn.Date
		if lastTxnDate == nil || txnDate.After(*lastTxnDate) {
			d := txnDate
			lastTxnDate = &d
		}

		switch {
		case txn.IsBuy():
			if firstBuyDate == nil {
				d := txnDate
				firstBuyDate = &d
			}
			quantity += txn.Quantity
			invested += value
			if invested > peakInvested {
				peakInvested = invested
			}
		case txn.IsSell():
			if quantity > 0 {
				avgCost := invested / quantity
				costBasis := txn.Quantity * avgCost
				realized += value - costBasis
				invested -= costBasis
				quantity -= txn.Quantity
			}
		}
	}

	// Latest price is unconditional: the year filter scopes activity,
	// never valuation.
	symbolPrices := symbolPricesDesc(prices, symbol)
	latestPrice := 0.0
	var latestPriceDate *time.Time
	if len(symbolPrices) > 0 {
		latestPrice = symbolPrices[0].Price
		d := symbolPrices[0].Date
		latestPriceDate = &d
	}
	currentValue := quantity * latestPrice

	unrealizedPL := currentValue - invested
	totalPL := unrealizedPL + realized

	// Once the position is closed the remaining basis is zero, so the
	// peak capital ever deployed serves as the ROI denominator.
	denom := invested
	if denom <= 0 {
		denom = peakInvested
	}
	var plPercent float64
	if denom > 0 {
		plPercent = totalPL / denom * 100
	}

	holdingDays := 0
	if firstBuyDate != nil {
		var endDate time.Time
		if quantity > 0 {
			if filterYear != 0 {
				endDate = time.Date(filterYear, time.December, 31, 0, 0, 0, 0, time.UTC)
			} else {
				endDate = now
			}
		} else if lastTxnDate != nil {
			endDate = *lastTxnDate
		} else {
			endDate = now
		}
		holdingDays = int(math.Ceil(endDate.Sub(*firstBuyDate).Hours() / 24))
	}

	// Up to 30 most recent observations, oldest first for charting.
	n := len(symbolPrices)
	if n > 30 {
		n = 30
	}
	priceHistory := make([]model.PricePoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		priceHistory = append(priceHistory, model.PricePoint{
			Date:  symbolPrices[i].Date,
			Price: symbolPrices[i].Price,
		})
	}

	// Newest first for display.
	displayTxns := make([]model.Transaction, len(scoped))
	for i, t := range scoped {
		displayTxns[len(scoped)-1-i] = t
	}

	return model.SymbolDetail{
		Symbol:          symbol,
		Quantity:        quantity,
		Invested:        invested,
		Realized:        realized,
		CurrentValue:    currentValue,
		LatestPrice:     latestPrice,
		LatestPriceDate: latestPriceDate,
		UnrealizedPL:    unrealizedPL,
		TotalPL:         totalPL,
		PLPercent:       plPercent,
		HoldingDays:     holdingDays,
		FirstBuyDate:    firstBuyDate,
		PriceHistory:    priceHistory,
		Transactions:    displayTxns,
	}
}
