package repository_test

import (
	"testing"
	"time"

	"github.com/minhdq/portfolio-tracker/internal/model"
	"github.com/minhdq/portfolio-tracker/internal/repository"
	"github.com/minhdq/portfolio-tracker/internal/testutil"
)

// TestMarketPriceRepository_Upsert tests the conflict handling.
//
// WHY: The unique (user, symbol, date) key plus the upsert is what
// guarantees at most one observation per symbol per day; a second write
// for the same day must update in place.
func TestMarketPriceRepository_Upsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewMarketPriceRepository(db)
	userID := testutil.MakeUserID()
	date := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	first := model.MarketPrice{
		ID: testutil.MakeID(), UserID: userID, Date: date,
		Category: "stock", Symbol: "VNM", Price: 65000,
	}
	if err := repo.Upsert(first); err != nil {
		t.Fatalf("First Upsert() failed: %v", err)
	}

	second := model.MarketPrice{
		ID: testutil.MakeID(), UserID: userID, Date: date,
		Category: "equity", Symbol: "VNM", Price: 66000,
	}
	if err := repo.Upsert(second); err != nil {
		t.Fatalf("Second Upsert() failed: %v", err)
	}

	testutil.AssertRowCount(t, db, "market_prices", 1)

	prices, err := repo.GetMarketPricesBySymbol(userID, "VNM")
	if err != nil {
		t.Fatalf("GetMarketPricesBySymbol() failed: %v", err)
	}
	if len(prices) != 1 {
		t.Fatalf("Expected 1 observation, got %d", len(prices))
	}
	if prices[0].Price != 66000 || prices[0].Category != "equity" {
		t.Errorf("Expected updated price and category, got %+v", prices[0])
	}
	// The original row ID survives an update.
	if prices[0].ID != first.ID {
		t.Errorf("Expected original row ID %s to survive, got %s", first.ID, prices[0].ID)
	}
}

// TestMarketPriceRepository_Ordering tests the read ordering.
//
// WHY: The engines break same-day ties by input position, so reads must
// order by date then created_at ascending for the most recently written
// observation to win.
func TestMarketPriceRepository_Ordering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewMarketPriceRepository(db)
	userID := testutil.MakeUserID()

	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	testutil.NewMarketPrice(userID).
		WithSymbol("VNM").
		WithDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).
		WithPrice(300).
		WithCreatedAt(base).
		Build(t, db)
	testutil.NewMarketPrice(userID).
		WithSymbol("VNM").
		WithDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		WithPrice(100).
		WithCreatedAt(base.Add(time.Minute)).
		Build(t, db)
	testutil.NewMarketPrice(userID).
		WithSymbol("VNM").
		WithDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		WithPrice(110).
		WithCreatedAt(base.Add(2 * time.Minute)).
		Build(t, db)

	prices, err := repo.GetMarketPrices(userID)
	if err != nil {
		t.Fatalf("GetMarketPrices() failed: %v", err)
	}
	if len(prices) != 3 {
		t.Fatalf("Expected 3 observations, got %d", len(prices))
	}

	want := []float64{100, 110, 300}
	for i, price := range want {
		if prices[i].Price != price {
			t.Errorf("prices[%d]: expected %v, got %v", i, price, prices[i].Price)
		}
	}
}

// TestMarketPriceRepository_UserScoping tests isolation.
//
// WHY: Reads must never leak another user's observations even for the
// same symbol and date.
func TestMarketPriceRepository_UserScoping(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewMarketPriceRepository(db)
	alice := testutil.MakeUserID()
	bob := testutil.MakeUserID()

	testutil.NewMarketPrice(alice).WithSymbol("VNM").Build(t, db)
	testutil.NewMarketPrice(bob).WithSymbol("VNM").Build(t, db)

	prices, err := repo.GetMarketPrices(alice)
	if err != nil {
		t.Fatalf("GetMarketPrices() failed: %v", err)
	}
	if len(prices) != 1 || prices[0].UserID != alice {
		t.Errorf("Expected only alice's observation, got %v", prices)
	}
}
