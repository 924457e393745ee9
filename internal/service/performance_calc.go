package service

import (
	"sort"
	"time"

	"github.com/minhdq/portfolio-tracker/internal/model"
)

// startPosition is the per-symbol state of the start-of-window
// snapshot: quantity held strictly before the window opens and its
// valuation at that moment.
type startPosition struct {
	qty   float64
	value float64
}

// periodFlow accumulates in-window cash flows for one category.
type periodFlow struct {
	buying  float64
	selling float64
}

// CalculatePeriodPerformance isolates the profit generated strictly
// within the window opening at startDate:
//
//	periodProfit = endValue - startValue + inWindowSelling - inWindowBuying
//
// A nil startDate means the whole-history view and delegates to
// CalculatePortfolio unfiltered; the two are then identical by
// construction.
//
// The start snapshot replays all transactions dated strictly before
// startDate into signed quantities (no clamping) and values open
// positions at the latest price on or before startDate. Assets that
// have never been quoted (savings-style instruments) fall back to their
// weighted-average cost basis as a valuation proxy.
//
// In the returned summary "invested" carries the capital deployed in
// the window (startValue + inWindowBuying), which also serves as the
// ROI denominator, and category "sold" carries only the in-window
// selling — this view is period-scoped by design.
func CalculatePeriodPerformance(transactions []model.Transaction, prices []model.MarketPrice, startDate *time.Time) model.PortfolioSummary {
	if startDate == nil {
		return CalculatePortfolio(transactions, prices, 0)
	}
	start := *startDate

	historical := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Date.Before(start) {
			historical = append(historical, t)
		}
	}

	startPortfolio := make(map[string]*startPosition)
	for _, t := range historical {
		pos, ok := startPortfolio[t.Symbol]
		if !ok {
			pos = &startPosition{}
			startPortfolio[t.Symbol] = pos
		}
		if t.IsBuy() {
			pos.qty += t.Quantity
		} else {
			pos.qty -= t.Quantity
		}
	}

	var totalStartValue float64
	for symbol, pos := range startPortfolio {
		if pos.qty <= 0 {
			continue
		}
		price := priceAsOf(prices, symbol, start)
		if price == 0 {
			pos.value = costBasisBefore(historical, symbol)
		} else {
			pos.value = pos.qty * price
		}
		totalStartValue += pos.value
	}

	periodTxns := make([]model.Transaction, 0, len(transactions))
	var totalBuying, totalSelling float64
	categoryFlows := make(map[string]*periodFlow)
	for _, t := range transactions {
		if t.Date.Before(start) {
			continue
		}
		periodTxns = append(periodTxns, t)

		flow, ok := categoryFlows[t.Category]
		if !ok {
			flow = &periodFlow{}
			categoryFlows[t.Category] = flow
		}
		if t.IsBuy() {
			totalBuying += t.TotalMoney
			flow.buying += t.TotalMoney
		} else {
			totalSelling += t.TotalMoney
			flow.selling += t.TotalMoney
		}
	}

	current := CalculatePortfolio(transactions, prices, 0)

	items := make([]model.PortfolioItem, len(current.Items))
	for i, item := range current.Items {
		var startValue float64
		if pos, ok := startPortfolio[item.Symbol]; ok {
			startValue = pos.value
		}

		var symBuying, symSelling float64
		for _, t := range periodTxns {
			if t.Symbol != item.Symbol {
				continue
			}
			if t.IsBuy() {
				symBuying += t.TotalMoney
			} else {
				symSelling += t.TotalMoney
			}
		}

		profit := item.CurrentValue - startValue + symSelling - symBuying
		capitalDeployed := startValue + symBuying
		var profitPercent float64
		if capitalDeployed > 0 {
			profitPercent = profit / capitalDeployed * 100
		}

		item.Invested = capitalDeployed
		item.ProfitLoss = profit
		item.ProfitLossPercent = profitPercent
		items[i] = item
	}

	// A symbol's category comes from the first transaction mentioning
	// it, consistent with the first-seen-wins rule of the folding.
	categoryBySymbol := make(map[string]string)
	for _, t := range transactions {
		if _, ok := categoryBySymbol[t.Symbol]; !ok {
			categoryBySymbol[t.Symbol] = t.Category
		}
	}

	categories := make([]model.CategoryStats, len(current.Categories))
	for i, cat := range current.Categories {
		var catStartValue float64
		for symbol, pos := range startPortfolio {
			if categoryBySymbol[symbol] == cat.Category {
				catStartValue += pos.value
			}
		}

		var flows periodFlow
		if f, ok := categoryFlows[cat.Category]; ok {
			flows = *f
		}

		profit := cat.CurrentValue - catStartValue + flows.selling - flows.buying
		capitalDeployed := catStartValue + flows.buying
		var profitPercent float64
		if capitalDeployed > 0 {
			profitPercent = profit / capitalDeployed * 100
		}

		cat.Invested = capitalDeployed
		cat.Sold = flows.selling
		cat.ProfitLoss = profit
		cat.ProfitLossPercent = profitPercent
		categories[i] = cat
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].CurrentValue > categories[j].CurrentValue
	})

	periodProfit := current.TotalCurrentValue - totalStartValue + totalSelling - totalBuying
	totalCapital := totalStartValue + totalBuying
	var periodProfitPercent float64
	if totalCapital > 0 {
		periodProfitPercent = periodProfit / totalCapital * 100
	}

	return model.PortfolioSummary{
		TotalInvested:          totalCapital,
		TotalSold:              totalSelling,
		TotalCurrentValue:      current.TotalCurrentValue,
		TotalProfitLoss:        periodProfit,
		TotalProfitLossPercent: periodProfitPercent,
		Items:                  items,
		Categories:             categories,
	}
}

// costBasisBefore replays one symbol's historical transactions through
// the weighted-average cost logic and returns the remaining invested
// amount, used as a valuation proxy for assets without market quotes.
// Returns 0 when the replay leaves no quantity held.
func costBasisBefore(historical []model.Transaction, symbol string) float64 {
	var histInvested, histQty float64
	for _, t := range historical {
		if t.Symbol != symbol {
			continue
		}
		if t.IsBuy() {
			histInvested += t.TotalMoney
			histQty += t.Quantity
		} else if histQty > 0 {
			avgCost := histInvested / histQty
			histInvested -= t.Quantity * avgCost
			histQty -= t.Quantity
		}
	}
	if histQty > 0 {
		return histInvested
	}
	return 0
}
