package service

import (
	"time"

	"github.com/minhdq/portfolio-tracker/internal/model"
)

// priceAsOf returns the price of the most recent observation for the
// symbol dated on or before the boundary, or 0 when none exists yet (no
// backward or forward fill). Among same-day observations the one later
// in the input wins, matching the latest-price tie-break.
func priceAsOf(prices []model.MarketPrice, symbol string, boundary time.Time) float64 {
	var best float64
	var bestDate time.Time
	found := false
	for _, p := range prices {
		if p.Symbol != symbol || p.Date.After(boundary) {
			continue
		}
		if !found || !p.Date.Before(bestDate) {
			best = p.Price
			bestDate = p.Date
			found = true
		}
	}
	return best
}

// CalculatePortfolioHistory replays holdings month by month and returns
// exactly months net-worth points, oldest first, each labelled
// "MM/YYYY".
//
// Each point is the portfolio valued at a trailing calendar month-end
// boundary, clamped so the most recent point never exceeds now. Only
// quantities matter here, so the replay floors them at zero on sells
// instead of tolerating negatives the way CalculatePortfolio does.
// Valuation uses the strict as-of price: a symbol with no observation
// by a boundary contributes nothing at that point.
func CalculatePortfolioHistory(transactions []model.Transaction, prices []model.MarketPrice, months int, now time.Time) []model.HistoryPoint {
	history := make([]model.HistoryPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		boundary := monthEndBoundary(now, i)

		holdings := make(map[string]float64)
		for _, txn := range transactions {
			if txn.Date.After(boundary) {
				continue
			}
			switch {
			case txn.IsBuy():
				holdings[txn.Symbol] += txn.Quantity
			case txn.IsSell():
				q := holdings[txn.Symbol] - txn.Quantity
				if q < 0 {
					q = 0
				}
				holdings[txn.Symbol] = q
			}
		}

		var totalValue float64
		for symbol, qty := range holdings {
			if qty > 0 {
				totalValue += qty * priceAsOf(prices, symbol, boundary)
			}
		}

		history = append(history, model.HistoryPoint{
			Date:  boundary.Format("01/2006"),
			Value: totalValue,
		})
	}

	return history
}

// monthEndBoundary returns the calendar month-end boundary monthsAgo
// months before now, clamped so it never exceeds the end of now's day.
func monthEndBoundary(now time.Time, monthsAgo int) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	// Day 0 of the following month normalizes to this month's last day.
	boundary := time.Date(today.Year(), today.Month()-time.Month(monthsAgo)+1, 0, 0, 0, 0, 0, now.Location())
	if boundary.After(today) {
		boundary = today
	}
	return boundary
}
