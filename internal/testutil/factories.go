package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/minhdq/portfolio-tracker/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction(userID).Build(t, db)
//
//	// Customized transaction
//	tx := testutil.NewTransaction(userID).
//	    WithSymbol("VNM").
//	    WithType("sell").
//	    WithTotalMoney(1500).
//	    Build(t, db)
type TransactionBuilder struct {
	ID         string
	UserID     string
	Date       time.Time
	Type       string
	Category   string
	Symbol     string
	Quantity   float64
	Price      float64
	Fee        float64
	TotalMoney float64
	Notes      string
	CreatedAt  time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction(userID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:         MakeID(),
		UserID:     userID,
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Type:       model.TransactionBuy,
		Category:   "stock",
		Symbol:     "TEST",
		Quantity:   10,
		Price:      100,
		Fee:        0,
		TotalMoney: 1000,
		CreatedAt:  time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets the transaction date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(txType string) *TransactionBuilder {
	b.Type = txType
	return b
}

// WithCategory sets the category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.Category = category
	return b
}

// WithSymbol sets the symbol.
func (b *TransactionBuilder) WithSymbol(symbol string) *TransactionBuilder {
	b.Symbol = symbol
	return b
}

// WithQuantity sets the quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithPrice sets the per-unit price.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.Price = price
	return b
}

// WithFee sets the fee.
func (b *TransactionBuilder) WithFee(fee float64) *TransactionBuilder {
	b.Fee = fee
	return b
}

// WithTotalMoney sets the total cash amount.
func (b *TransactionBuilder) WithTotalMoney(total float64) *TransactionBuilder {
	b.TotalMoney = total
	return b
}

// WithNotes sets the free-form notes.
func (b *TransactionBuilder) WithNotes(notes string) *TransactionBuilder {
	b.Notes = notes
	return b
}

// WithCreatedAt sets an explicit created_at. Tests that depend on
// insertion order within a single day use this to keep ordering
// deterministic.
func (b *TransactionBuilder) WithCreatedAt(createdAt time.Time) *TransactionBuilder {
	b.CreatedAt = createdAt
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO transactions (id, user_id, date, type, category, symbol, quantity, price, fee, total_money, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := b.CreatedAt.Format("2006-01-02 15:04:05")
	_, err := db.Exec(query,
		b.ID, b.UserID, b.Date.Format("2006-01-02"), b.Type, b.Category, b.Symbol,
		b.Quantity, b.Price, b.Fee, b.TotalMoney, b.Notes, createdAt, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:         b.ID,
		UserID:     b.UserID,
		Date:       b.Date,
		Type:       b.Type,
		Category:   b.Category,
		Symbol:     b.Symbol,
		Quantity:   b.Quantity,
		Price:      b.Price,
		Fee:        b.Fee,
		TotalMoney: b.TotalMoney,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	}
}

// CreateBuy creates a buy transaction for the given symbol.
func CreateBuy(t *testing.T, db *sql.DB, userID, symbol string, quantity, totalMoney float64) model.Transaction {
	t.Helper()
	return NewTransaction(userID).
		WithSymbol(symbol).
		WithQuantity(quantity).
		WithTotalMoney(totalMoney).
		Build(t, db)
}

// CreateSell creates a sell transaction for the given symbol.
func CreateSell(t *testing.T, db *sql.DB, userID, symbol string, quantity, totalMoney float64) model.Transaction {
	t.Helper()
	return NewTransaction(userID).
		WithType(model.TransactionSell).
		WithSymbol(symbol).
		WithQuantity(quantity).
		WithTotalMoney(totalMoney).
		Build(t, db)
}

// MarketPriceBuilder provides a fluent interface for creating test price observations.
//
// Example usage:
//
//	price := testutil.NewMarketPrice(userID).
//	    WithSymbol("VNM").
//	    WithPrice(65000).
//	    Build(t, db)
type MarketPriceBuilder struct {
	ID        string
	UserID    string
	Date      time.Time
	Category  string
	Symbol    string
	Price     float64
	CreatedAt time.Time
}

// NewMarketPrice creates a MarketPriceBuilder with sensible defaults.
func NewMarketPrice(userID string) *MarketPriceBuilder {
	return &MarketPriceBuilder{
		ID:        MakeID(),
		UserID:    userID,
		Date:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Category:  "stock",
		Symbol:    "TEST",
		Price:     110,
		CreatedAt: time.Now().UTC(),
	}
}

// WithDate sets the observation date.
func (b *MarketPriceBuilder) WithDate(date time.Time) *MarketPriceBuilder {
	b.Date = date
	return b
}

// WithCategory sets the category.
func (b *MarketPriceBuilder) WithCategory(category string) *MarketPriceBuilder {
	b.Category = category
	return b
}

// WithSymbol sets the symbol.
func (b *MarketPriceBuilder) WithSymbol(symbol string) *MarketPriceBuilder {
	b.Symbol = symbol
	return b
}

// WithPrice sets the price.
func (b *MarketPriceBuilder) WithPrice(price float64) *MarketPriceBuilder {
	b.Price = price
	return b
}

// WithCreatedAt sets an explicit created_at for deterministic same-day
// tie-breaking in tests.
func (b *MarketPriceBuilder) WithCreatedAt(createdAt time.Time) *MarketPriceBuilder {
	b.CreatedAt = createdAt
	return b
}

// Build creates the market price in the database and returns it.
func (b *MarketPriceBuilder) Build(t *testing.T, db *sql.DB) model.MarketPrice {
	t.Helper()

	query := `
		INSERT INTO market_prices (id, user_id, date, category, symbol, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := b.CreatedAt.Format("2006-01-02 15:04:05")
	_, err := db.Exec(query,
		b.ID, b.UserID, b.Date.Format("2006-01-02"), b.Category, b.Symbol, b.Price, createdAt, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test market price: %v", err)
	}

	return model.MarketPrice{
		ID:        b.ID,
		UserID:    b.UserID,
		Date:      b.Date,
		Category:  b.Category,
		Symbol:    b.Symbol,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

// CreateMarketPrice creates a price observation with the given symbol and price.
func CreateMarketPrice(t *testing.T, db *sql.DB, userID, symbol string, price float64) model.MarketPrice {
	t.Helper()
	return NewMarketPrice(userID).WithSymbol(symbol).WithPrice(price).Build(t, db)
}
