package repository

import (
	"database/sql"
	"fmt"

	"github.com/minhdq/portfolio-tracker/internal/apperrors"
	"github.com/minhdq/portfolio-tracker/internal/model"
)

// MarketPriceRepository provides data access methods for the market_prices table.
// Every read and write is scoped to a single user.
type MarketPriceRepository struct {
	db *sql.DB
}

// NewMarketPriceRepository creates a new MarketPriceRepository with the provided database connection.
func NewMarketPriceRepository(db *sql.DB) *MarketPriceRepository {
	return &MarketPriceRepository{db: db}
}

const marketPriceColumns = `id, user_id, date, category, symbol, price, created_at, updated_at`

// GetMarketPrices retrieves all price observations for the user,
// ordered by date then created_at ascending. That ordering is what
// makes the engines' same-day tie-break (latest written wins)
// deterministic.
func (r *MarketPriceRepository) GetMarketPrices(userID string) ([]model.MarketPrice, error) {
	query := `
		SELECT ` + marketPriceColumns + `
		FROM market_prices
		WHERE user_id = ?
		ORDER BY date ASC, created_at ASC
	`
	return r.queryMarketPrices(query, userID)
}

// GetMarketPricesBySymbol retrieves the user's observations for one symbol,
// ordered by date then created_at ascending.
func (r *MarketPriceRepository) GetMarketPricesBySymbol(userID, symbol string) ([]model.MarketPrice, error) {
	query := `
		SELECT ` + marketPriceColumns + `
		FROM market_prices
		WHERE user_id = ? AND symbol = ?
		ORDER BY date ASC, created_at ASC
	`
	return r.queryMarketPrices(query, userID, symbol)
}

// Upsert inserts a price observation, replacing any existing row with
// the same (user, symbol, date). The replacement keeps one observation
// per symbol per day, which is what rules out genuine same-day
// duplicates at the write boundary.
func (r *MarketPriceRepository) Upsert(p model.MarketPrice) error {
	query := `
		INSERT INTO market_prices (id, user_id, date, category, symbol, price)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, symbol, date) DO UPDATE SET
			category = excluded.category,
			price = excluded.price,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.db.Exec(query,
		p.ID,
		p.UserID,
		p.Date.Format("2006-01-02"),
		p.Category,
		p.Symbol,
		p.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert market price: %w", err)
	}
	return nil
}

// Delete removes a price observation by ID, scoped to the user.
// Returns apperrors.ErrMarketPriceNotFound when no row matches.
func (r *MarketPriceRepository) Delete(userID, id string) error {
	result, err := r.db.Exec(`DELETE FROM market_prices WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete market price: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrMarketPriceNotFound
	}
	return nil
}

func (r *MarketPriceRepository) queryMarketPrices(query string, args ...any) ([]model.MarketPrice, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query market_prices table: %w", err)
	}
	defer rows.Close()

	prices := []model.MarketPrice{}
	for rows.Next() {
		var p model.MarketPrice
		var dateStr, createdAtStr, updatedAtStr string

		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&dateStr,
			&p.Category,
			&p.Symbol,
			&p.Price,
			&createdAtStr,
			&updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market_prices table results: %w", err)
		}
		p.Date, err = ParseTime(dateStr)
		if err != nil || p.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		p.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		p.UpdatedAt, err = ParseTime(updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating market_prices table: %w", err)
	}

	return prices, nil
}
