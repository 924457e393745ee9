package service_test

import (
	"testing"

	"github.com/minhdq/portfolio-tracker/internal/testutil"
)

// TestPortfolioService_GetPortfolioSummary tests the store-backed
// summary path.
//
// WHY: The engines are covered by their own tests; this verifies the
// service feeds them the user's full record sets and nothing more.
func TestPortfolioService_GetPortfolioSummary(t *testing.T) {
	t.Run("computes the summary from stored records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		userID := testutil.MakeUserID()

		testutil.CreateBuy(t, db, userID, "VNM", 100, 6500000)
		testutil.CreateMarketPrice(t, db, userID, "VNM", 70000)

		summary, err := svc.GetPortfolioSummary(userID, 0)
		if err != nil {
			t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
		}

		if summary.TotalInvested != 6500000 {
			t.Errorf("Expected invested 6500000, got %v", summary.TotalInvested)
		}
		if summary.TotalCurrentValue != 7000000 {
			t.Errorf("Expected current value 7000000, got %v", summary.TotalCurrentValue)
		}
		if len(summary.Items) != 1 || summary.Items[0].Symbol != "VNM" {
			t.Errorf("Expected one VNM item, got %v", summary.Items)
		}
	})

	t.Run("never sees other users' records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		alice := testutil.MakeUserID()
		bob := testutil.MakeUserID()

		testutil.CreateBuy(t, db, alice, "VNM", 100, 6500000)
		testutil.CreateBuy(t, db, bob, "HPG", 50, 1500000)

		summary, err := svc.GetPortfolioSummary(alice, 0)
		if err != nil {
			t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
		}
		if len(summary.Items) != 1 || summary.Items[0].Symbol != "VNM" {
			t.Errorf("Expected only alice's VNM item, got %v", summary.Items)
		}
	})

	t.Run("handles closed database connection", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		db.Close()

		_, err := svc.GetPortfolioSummary(testutil.MakeUserID(), 0)
		if err == nil {
			t.Error("Expected error when database is closed, got nil")
		}
	})
}

// TestPortfolioService_GetSymbolDetail tests the store-backed detail
// path.
//
// WHY: Lookups must match the write-side uppercasing, so a lowercase
// request still finds the canonical symbol.
func TestPortfolioService_GetSymbolDetail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)
	userID := testutil.MakeUserID()

	testutil.CreateBuy(t, db, userID, "VNM", 100, 6500000)
	testutil.CreateMarketPrice(t, db, userID, "VNM", 70000)

	detail, err := svc.GetSymbolDetail(userID, "vnm", 0)
	if err != nil {
		t.Fatalf("GetSymbolDetail() returned unexpected error: %v", err)
	}

	if detail.Symbol != "VNM" {
		t.Errorf("Expected canonical symbol VNM, got %s", detail.Symbol)
	}
	if detail.Quantity != 100 {
		t.Errorf("Expected quantity 100, got %v", detail.Quantity)
	}
	if detail.LatestPrice != 70000 {
		t.Errorf("Expected latest price 70000, got %v", detail.LatestPrice)
	}
}

// TestPortfolioService_GetPortfolioHistory tests the on-demand history
// path.
//
// WHY: The on-demand route must deliver the exact point count even for
// users with no data.
func TestPortfolioService_GetPortfolioHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)

	history, err := svc.GetPortfolioHistory(testutil.MakeUserID(), 12)
	if err != nil {
		t.Fatalf("GetPortfolioHistory() returned unexpected error: %v", err)
	}
	if len(history) != 12 {
		t.Errorf("Expected 12 points, got %d", len(history))
	}
}

// TestPortfolioService_GetPeriodPerformance tests the store-backed
// performance path.
//
// WHY: With a nil start date the period view must equal the plain
// summary; this pins the delegation through the service layer.
func TestPortfolioService_GetPeriodPerformance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)
	userID := testutil.MakeUserID()

	testutil.CreateBuy(t, db, userID, "VNM", 100, 6500000)
	testutil.CreateMarketPrice(t, db, userID, "VNM", 70000)

	performance, err := svc.GetPeriodPerformance(userID, nil)
	if err != nil {
		t.Fatalf("GetPeriodPerformance() returned unexpected error: %v", err)
	}
	summary, err := svc.GetPortfolioSummary(userID, 0)
	if err != nil {
		t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
	}

	if performance.TotalProfitLoss != summary.TotalProfitLoss ||
		performance.TotalInvested != summary.TotalInvested {
		t.Errorf("Expected nil-start performance to equal the summary:\nperformance=%+v\nsummary=%+v",
			performance, summary)
	}
}
