package service_test

import (
	"errors"
	"testing"

	"github.com/minhdq/portfolio-tracker/internal/api/request"
	"github.com/minhdq/portfolio-tracker/internal/apperrors"
	"github.com/minhdq/portfolio-tracker/internal/testutil"
	"github.com/minhdq/portfolio-tracker/internal/validation"
)

// TestTransactionService_CreateTransaction tests validated writes.
//
// WHY: The write boundary is the only place malformed records can be
// rejected, and symbols must be case-normalized there so every later
// fold sees one canonical spelling.
func TestTransactionService_CreateTransaction(t *testing.T) {
	t.Run("creates a valid transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeUserID()

		created, err := svc.CreateTransaction(userID, request.CreateTransactionRequest{
			Date:       "2024-01-15",
			Type:       "buy",
			Category:   "stock",
			Symbol:     "vnm",
			Quantity:   100,
			Price:      65000,
			TotalMoney: 6500000,
		})
		if err != nil {
			t.Fatalf("CreateTransaction() returned unexpected error: %v", err)
		}

		if created.ID == "" {
			t.Error("Expected generated ID")
		}
		if created.Symbol != "VNM" {
			t.Errorf("Expected symbol uppercased to VNM, got %s", created.Symbol)
		}
		testutil.AssertRowCount(t, db, "transactions", 1)
	})

	t.Run("rejects invalid payloads with field errors", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(testutil.MakeUserID(), request.CreateTransactionRequest{
			Date:       "not-a-date",
			Type:       "short",
			Quantity:   -1,
			TotalMoney: 100,
		})

		var validationErr *validation.Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		for _, field := range []string{"date", "transactionType", "category", "symbol", "quantity"} {
			if _, ok := validationErr.Fields[field]; !ok {
				t.Errorf("Expected field error for %s, got %v", field, validationErr.Fields)
			}
		}
		testutil.AssertRowCount(t, db, "transactions", 0)
	})
}

// TestTransactionService_UpdateTransaction tests partial updates.
//
// WHY: Only provided fields may change; everything else must survive the
// round trip untouched, and unknown IDs must surface the not-found
// sentinel.
func TestTransactionService_UpdateTransaction(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeUserID()

		original := testutil.NewTransaction(userID).
			WithSymbol("VNM").
			WithQuantity(100).
			WithTotalMoney(6500000).
			WithNotes("initial").
			Build(t, db)

		newQuantity := 150.0
		updated, err := svc.UpdateTransaction(userID, original.ID, request.UpdateTransactionRequest{
			Quantity: &newQuantity,
		})
		if err != nil {
			t.Fatalf("UpdateTransaction() returned unexpected error: %v", err)
		}

		if updated.Quantity != 150 {
			t.Errorf("Expected quantity 150, got %v", updated.Quantity)
		}
		if updated.Symbol != "VNM" || updated.TotalMoney != 6500000 || updated.Notes != "initial" {
			t.Errorf("Expected untouched fields to survive, got %+v", updated)
		}
	})

	t.Run("uppercases an updated symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeUserID()

		original := testutil.NewTransaction(userID).Build(t, db)

		newSymbol := "hpg"
		updated, err := svc.UpdateTransaction(userID, original.ID, request.UpdateTransactionRequest{
			Symbol: &newSymbol,
		})
		if err != nil {
			t.Fatalf("UpdateTransaction() returned unexpected error: %v", err)
		}
		if updated.Symbol != "HPG" {
			t.Errorf("Expected HPG, got %s", updated.Symbol)
		}
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.UpdateTransaction(testutil.MakeUserID(), testutil.MakeID(), request.UpdateTransactionRequest{})

		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("rejects invalid updated values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeUserID()

		original := testutil.NewTransaction(userID).Build(t, db)

		badQuantity := -5.0
		_, err := svc.UpdateTransaction(userID, original.ID, request.UpdateTransactionRequest{
			Quantity: &badQuantity,
		})

		var validationErr *validation.Error
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})
}

// TestTransactionService_Reads tests the user-scoped read paths.
//
// WHY: Every read must be scoped to the requesting user; a filter by
// symbol must also match case-insensitively, consistent with the
// write-side normalization.
func TestTransactionService_Reads(t *testing.T) {
	t.Run("lists only the user's transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		alice := testutil.MakeUserID()
		bob := testutil.MakeUserID()

		testutil.NewTransaction(alice).Build(t, db)
		testutil.NewTransaction(alice).Build(t, db)
		testutil.NewTransaction(bob).Build(t, db)

		transactions, err := svc.GetTransactions(alice)
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}
		if len(transactions) != 2 {
			t.Errorf("Expected 2 transactions for alice, got %d", len(transactions))
		}
	})

	t.Run("filters by symbol case-insensitively", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeUserID()

		testutil.NewTransaction(userID).WithSymbol("VNM").Build(t, db)
		testutil.NewTransaction(userID).WithSymbol("HPG").Build(t, db)

		transactions, err := svc.GetTransactionsBySymbol(userID, "vnm")
		if err != nil {
			t.Fatalf("GetTransactionsBySymbol() returned unexpected error: %v", err)
		}
		if len(transactions) != 1 || transactions[0].Symbol != "VNM" {
			t.Errorf("Expected one VNM transaction, got %v", transactions)
		}
	})

	t.Run("filters by calendar year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeUserID()

		testutil.NewTransaction(userID).WithDate(day(2023, 6, 1)).Build(t, db)
		testutil.NewTransaction(userID).WithDate(day(2024, 6, 1)).Build(t, db)
		testutil.NewTransaction(userID).WithDate(day(2024, 12, 31)).Build(t, db)

		transactions, err := svc.GetTransactionsByYear(userID, 2024)
		if err != nil {
			t.Fatalf("GetTransactionsByYear() returned unexpected error: %v", err)
		}
		if len(transactions) != 2 {
			t.Errorf("Expected 2 transactions in 2024, got %d", len(transactions))
		}
	})
}

// TestTransactionService_DeleteTransaction tests removal.
//
// WHY: Deletes must be user-scoped: one user must not be able to remove
// another's records by guessing IDs.
func TestTransactionService_DeleteTransaction(t *testing.T) {
	t.Run("deletes an owned transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		userID := testutil.MakeUserID()

		created := testutil.NewTransaction(userID).Build(t, db)

		if err := svc.DeleteTransaction(userID, created.ID); err != nil {
			t.Fatalf("DeleteTransaction() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "transactions", 0)
	})

	t.Run("cannot delete another user's transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		owner := testutil.MakeUserID()

		created := testutil.NewTransaction(owner).Build(t, db)

		err := svc.DeleteTransaction(testutil.MakeUserID(), created.ID)
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound for foreign ID, got %v", err)
		}
		testutil.AssertRowCount(t, db, "transactions", 1)
	})
}
