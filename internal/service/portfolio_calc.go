package service

import (
	"sort"
	"time"

	"github.com/minhdq/portfolio-tracker/internal/model"
)

// holding is the per-symbol folding state built up while replaying
// transactions. Invested carries the weighted-average cost basis of the
// remaining quantity; realized accumulates gains locked in by sells.
// The category is taken from the first transaction seen for the symbol
// and never overwritten by later transactions with a different label.
type holding struct {
	symbol   string
	category string
	quantity float64
	invested float64
	realized float64
}

// filterByYear restricts transactions to the calendar year when year is
// non-zero. The window runs from Jan 1 00:00:00 through Dec 31 23:59:59
// so end-of-year transactions at any clock time are included.
func filterByYear(transactions []model.Transaction, year int) []model.Transaction {
	if year == 0 {
		return transactions
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.Date.Before(start) && !t.Date.After(end) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// symbolPricesDesc returns every observation for the symbol sorted
// newest first. The sort is stable over an ascending pass and then
// reversed, so among same-day observations the one later in the input
// (repositories order by date, then created_at) ends up first. That
// makes the most recently written same-day price the "latest".
func symbolPricesDesc(prices []model.MarketPrice, symbol string) []model.MarketPrice {
	matched := make([]model.MarketPrice, 0, 8)
	for _, p := range prices {
		if p.Symbol == symbol {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched
}

// CalculatePortfolio folds a transaction list into per-symbol holdings
// using weighted-average cost and joins them with the latest market
// prices to produce the full portfolio view.
//
// filterYear of zero means no filtering. When set, only transactions in
// that calendar year are replayed; market prices are deliberately NOT
// filtered — the year scopes activity, not valuation, so "latest price"
// always comes from the full price set.
//
// The function never fails: missing prices value at 0, over-sold
// positions go negative without being clamped, and zero denominators
// degrade to the documented fallback percentages.
func CalculatePortfolio(transactions []model.Transaction, prices []model.MarketPrice, filterYear int) model.PortfolioSummary {
	scoped := filterByYear(transactions, filterYear)

	holdings := make(map[string]*holding)
	symbolOrder := make([]string, 0)
	var totalInvested, totalSold float64

	for _, txn := range scoped {
		h, ok := holdings[txn.Symbol]
		if !ok {
			h = &holding{symbol: txn.Symbol, category: txn.Category}
			holdings[txn.Symbol] = h
			symbolOrder = append(symbolOrder, txn.Symbol)
		}

		value := txn.TotalMoney
		switch {
		case txn.IsBuy():
			h.quantity += txn.Quantity
			h.invested += value
			totalInvested += value
		case txn.IsSell():
			totalSold += value
			if h.quantity > 0 {
				avgCost := h.invested / h.quantity
				costBasis := txn.Quantity * avgCost
				h.realized += value - costBasis
				h.invested -= costBasis
				h.quantity -= txn.Quantity
			} else {
				// No cost basis to allocate: the whole proceeds count
				// as realized and quantity may go negative.
				h.realized += value
				h.quantity -= txn.Quantity
			}
		}
	}

	items := make([]model.PortfolioItem, 0, len(symbolOrder))
	var totalCurrentValue float64

	for _, symbol := range symbolOrder {
		h := holdings[symbol]
		symbolPrices := symbolPricesDesc(prices, symbol)

		currentPrice := 0.0
		if len(symbolPrices) > 0 {
			currentPrice = symbolPrices[0].Price
		}
		currentValue := h.quantity * currentPrice

		// Last 7 observations oldest-first, front-padded with the
		// current price when the history is shorter.
		n := len(symbolPrices)
		if n > 7 {
			n = 7
		}
		lastPrices := make([]float64, 0, 7)
		for i := 0; i < 7-n; i++ {
			lastPrices = append(lastPrices, currentPrice)
		}
		for i := n - 1; i >= 0; i-- {
			lastPrices = append(lastPrices, symbolPrices[i].Price)
		}

		profitLoss := (currentValue - h.invested) + h.realized
		var profitLossPercent float64
		switch {
		case h.invested > 0:
			profitLossPercent = profitLoss / h.invested * 100
		case h.realized != 0:
			// Fully closed position: no remaining basis to divide by.
			// 100 is an indicative, non-crashing placeholder.
			profitLossPercent = 100
		}

		if h.quantity > 0 {
			totalCurrentValue += currentValue
		}

		items = append(items, model.PortfolioItem{
			Symbol:            h.symbol,
			Category:          h.category,
			Quantity:          h.quantity,
			Invested:          h.invested,
			CurrentValue:      currentValue,
			CurrentPrice:      currentPrice,
			Realized:          h.realized,
			ProfitLoss:        profitLoss,
			ProfitLossPercent: profitLossPercent,
			LastPrices:        lastPrices,
		})
	}

	// Category invested/sold are gross cash-flow sums over the scoped
	// transactions, not netted through the per-symbol averaging.
	categoryMap := make(map[string]*model.CategoryStats)
	categoryOrder := make([]string, 0)
	for _, txn := range scoped {
		cat, ok := categoryMap[txn.Category]
		if !ok {
			cat = &model.CategoryStats{Category: txn.Category}
			categoryMap[txn.Category] = cat
			categoryOrder = append(categoryOrder, txn.Category)
		}
		switch {
		case txn.IsBuy():
			cat.Invested += txn.TotalMoney
		case txn.IsSell():
			cat.Sold += txn.TotalMoney
		}
	}

	// Only open positions contribute current value to their category.
	for _, item := range items {
		if item.Quantity > 0 {
			if cat, ok := categoryMap[item.Category]; ok {
				cat.CurrentValue += item.CurrentValue
			}
		}
	}

	categories := make([]model.CategoryStats, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		cat := categoryMap[name]
		cat.ProfitLoss = cat.CurrentValue + cat.Sold - cat.Invested
		if cat.Invested > 0 {
			cat.ProfitLossPercent = cat.ProfitLoss / cat.Invested * 100
		}
		if totalCurrentValue > 0 {
			cat.Weight = cat.CurrentValue / totalCurrentValue * 100
		}
		categories = append(categories, *cat)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CurrentValue > items[j].CurrentValue
	})
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].CurrentValue > categories[j].CurrentValue
	})

	totalProfitLoss := totalCurrentValue + totalSold - totalInvested
	var totalProfitLossPercent float64
	if totalInvested > 0 {
		totalProfitLossPercent = totalProfitLoss / totalInvested * 100
	}

	return model.PortfolioSummary{
		TotalInvested:          totalInvested,
		TotalSold:              totalSold,
		TotalCurrentValue:      totalCurrentValue,
		TotalProfitLoss:        totalProfitLoss,
		TotalProfitLossPercent: totalProfitLossPercent,
		Items:                  items,
		Categories:             categories,
	}
}
