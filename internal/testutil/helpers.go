package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/minhdq/portfolio-tracker/internal/repository"
	"github.com/minhdq/portfolio-tracker/internal/service"
)

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	return service.NewTransactionService(transactionRepo)
}

func NewTestMarketPriceService(t *testing.T, db *sql.DB) *service.MarketPriceService {
	t.Helper()

	marketPriceRepo := repository.NewMarketPriceRepository(db)
	return service.NewMarketPriceService(marketPriceRepo)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	marketPriceRepo := repository.NewMarketPriceRepository(db)
	return service.NewPortfolioService(transactionRepo, marketPriceRepo)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	marketPriceRepo := repository.NewMarketPriceRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	return service.NewSnapshotService(transactionRepo, marketPriceRepo, snapshotRepo)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeUserID generates a unique user ID for test isolation.
func MakeUserID() string {
	return uuid.New().String()
}

// MakeSymbol generates a ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("VNM")
//	// Returns: "VNM1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
