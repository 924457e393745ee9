package service_test

import (
	"testing"
	"time"

	"github.com/minhdq/portfolio-tracker/internal/model"
	"github.com/minhdq/portfolio-tracker/internal/service"
)

// TestCalculatePortfolioHistory_Shape tests the series contract.
//
// WHY: Callers chart the result directly, so the series must contain
// exactly the requested number of points, oldest first, labelled
// "MM/YYYY", regardless of how much data exists.
func TestCalculatePortfolioHistory_Shape(t *testing.T) {
	now := day(2024, 6, 15)

	t.Run("empty inputs still produce every point", func(t *testing.T) {
		history := service.CalculatePortfolioHistory(nil, nil, 6, now)

		if len(history) != 6 {
			t.Fatalf("Expected 6 points, got %d", len(history))
		}
		for i, point := range history {
			if point.Value != 0 {
				t.Errorf("point %d: expected zero value, got %v", i, point.Value)
			}
		}
		if history[0].Date != "01/2024" {
			t.Errorf("Expected oldest label 01/2024, got %s", history[0].Date)
		}
		if history[5].Date != "06/2024" {
			t.Errorf("Expected newest label 06/2024, got %s", history[5].Date)
		}
	})

	t.Run("labels cross the year boundary", func(t *testing.T) {
		history := service.CalculatePortfolioHistory(nil, nil, 3, day(2024, 1, 20))

		want := []string{"11/2023", "12/2023", "01/2024"}
		for i, label := range want {
			if history[i].Date != label {
				t.Errorf("point %d: expected label %s, got %s", i, label, history[i].Date)
			}
		}
	})
}

// TestCalculatePortfolioHistory_Valuation tests boundary valuation.
//
// WHY: Each point values the quantities held at the month-end boundary
// using the strict as-of price; symbols not yet quoted contribute
// nothing, with no forward or backward fill.
func TestCalculatePortfolioHistory_Valuation(t *testing.T) {
	now := day(2024, 3, 15)

	t.Run("holdings appear from their purchase month onward", func(t *testing.T) {
		transactions := []model.Transaction{
			buyTxn(day(2024, 2, 10), "AAA", "stock", 10, 1000),
		}
		prices := []model.MarketPrice{
			pricePoint(day(2024, 2, 20), "AAA", "stock", 110),
		}

		history := service.CalculatePortfolioHistory(transactions, prices, 3, now)

		// January: nothing bought yet.
		if history[0].Value != 0 {
			t.Errorf("Expected January value 0, got %v", history[0].Value)
		}
		// February onward: 10 @ 110.
		if !almostEqual(history[1].Value, 1100) {
			t.Errorf("Expected February value 1100, got %v", history[1].Value)
		}
		if !almostEqual(history[2].Value, 1100) {
			t.Errorf("Expected March value 1100, got %v", history[2].Value)
		}
	})

	t.Run("no observation by the boundary values at zero", func(t *testing.T) {
		transactions := []model.Transaction{
			buyTxn(day(2024, 1, 10), "BBB", "stock", 10, 1000),
		}
		prices := []model.MarketPrice{
			pricePoint(day(2024, 3, 1), "BBB", "stock", 120),
		}

		history := service.CalculatePortfolioHistory(transactions, prices, 3, now)

		if history[0].Value != 0 {
			t.Errorf("Expected January value 0 before first quote, got %v", history[0].Value)
		}
		if history[1].Value != 0 {
			t.Errorf("Expected February value 0 before first quote, got %v", history[1].Value)
		}
		if !almostEqual(history[2].Value, 1200) {
			t.Errorf("Expected March value 1200, got %v", history[2].Value)
		}
	})

	t.Run("as-of price is the most recent on or before the boundary", func(t *testing.T) {
		transactions := []model.Transaction{
			buyTxn(day(2024, 1, 10), "CCC", "stock", 10, 1000),
		}
		prices := []model.MarketPrice{
			pricePoint(day(2024, 1, 15), "CCC", "stock", 100),
			pricePoint(day(2024, 2, 15), "CCC", "stock", 130),
		}

		history := service.CalculatePortfolioHistory(transactions, prices, 3, now)

		if !almostEqual(history[0].Value, 1000) {
			t.Errorf("Expected January valued at 100, got %v", history[0].Value)
		}
		if !almostEqual(history[1].Value, 1300) {
			t.Errorf("Expected February valued at 130, got %v", history[1].Value)
		}
	})
}

// TestCalculatePortfolioHistory_SellClamping tests the quantity replay.
//
// WHY: Unlike the summary folding, the history replay floors quantities
// at zero on sells: a negative holding would distort every later point.
func TestCalculatePortfolioHistory_SellClamping(t *testing.T) {
	now := day(2024, 3, 15)
	transactions := []model.Transaction{
		buyTxn(day(2024, 1, 10), "DDD", "stock", 10, 1000),
		sellTxn(day(2024, 2, 10), "DDD", "stock", 25, 2500),
	}
	prices := []model.MarketPrice{
		pricePoint(day(2024, 1, 20), "DDD", "stock", 100),
	}

	history := service.CalculatePortfolioHistory(transactions, prices, 3, now)

	if !almostEqual(history[0].Value, 1000) {
		t.Errorf("Expected January value 1000, got %v", history[0].Value)
	}
	// Over-sell floors at zero rather than going negative.
	if history[1].Value != 0 {
		t.Errorf("Expected February value 0 after over-sell, got %v", history[1].Value)
	}
	if history[2].Value != 0 {
		t.Errorf("Expected March value 0, got %v", history[2].Value)
	}
}

// TestMonthEndBoundaries tests the boundary placement via labels.
//
// WHY: The newest point must never reach past now even though the other
// boundaries are true calendar month ends.
func TestMonthEndBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	transactions := []model.Transaction{
		buyTxn(day(2024, 6, 1), "EEE", "stock", 10, 1000),
	}
	prices := []model.MarketPrice{
		// Dated after "now": must not be visible to the newest point.
		pricePoint(day(2024, 6, 20), "EEE", "stock", 999),
		pricePoint(day(2024, 6, 10), "EEE", "stock", 100),
	}

	history := service.CalculatePortfolioHistory(transactions, prices, 1, now)

	if len(history) != 1 {
		t.Fatalf("Expected 1 point, got %d", len(history))
	}
	if !almostEqual(history[0].Value, 1000) {
		t.Errorf("Expected newest point clamped to now (valued at 100), got %v", history[0].Value)
	}
}
