package repository

import (
	"database/sql"
	"fmt"

	"github.com/minhdq/portfolio-tracker/internal/apperrors"
	"github.com/minhdq/portfolio-tracker/internal/model"
)

// TransactionRepository provides data access methods for the transactions table.
// Every read and write is scoped to a single user.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, user_id, date, type, category, symbol, quantity, price, fee, total_money, notes, created_at, updated_at`

// GetTransactions retrieves all transactions for the user, ordered by
// date then created_at ascending. The engines tolerate any ordering;
// the deterministic order keeps output stable across calls.
func (r *TransactionRepository) GetTransactions(userID string) ([]model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = ?
		ORDER BY date ASC, created_at ASC
	`
	return r.queryTransactions(query, userID)
}

// GetTransactionsBySymbol retrieves the user's transactions for one symbol,
// ordered by date then created_at ascending.
func (r *TransactionRepository) GetTransactionsBySymbol(userID, symbol string) ([]model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = ? AND symbol = ?
		ORDER BY date ASC, created_at ASC
	`
	return r.queryTransactions(query, userID, symbol)
}

// GetTransactionsByYear retrieves the user's transactions dated within
// the given calendar year.
func (r *TransactionRepository) GetTransactionsByYear(userID string, year int) ([]model.Transaction, error) {
	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-12-31", year)

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, created_at ASC
	`
	return r.queryTransactions(query, userID, start, end)
}

// GetTransaction retrieves a single transaction by ID, scoped to the user.
// Returns apperrors.ErrTransactionNotFound when no row matches.
func (r *TransactionRepository) GetTransaction(userID, id string) (model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = ? AND id = ?
	`
	rows, err := r.queryTransactions(query, userID, id)
	if err != nil {
		return model.Transaction{}, err
	}
	if len(rows) == 0 {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	return rows[0], nil
}

// Insert stores a new transaction row.
func (r *TransactionRepository) Insert(t model.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, date, type, category, symbol, quantity, price, fee, total_money, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		t.ID,
		t.UserID,
		t.Date.Format("2006-01-02"),
		t.Type,
		t.Category,
		t.Symbol,
		t.Quantity,
		t.Price,
		t.Fee,
		t.TotalMoney,
		t.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields of an existing transaction.
// Returns apperrors.ErrTransactionNotFound when no row matches.
func (r *TransactionRepository) Update(t model.Transaction) error {
	query := `
		UPDATE transactions
		SET date = ?, type = ?, category = ?, symbol = ?, quantity = ?, price = ?, fee = ?, total_money = ?, notes = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND id = ?
	`
	result, err := r.db.Exec(query,
		t.Date.Format("2006-01-02"),
		t.Type,
		t.Category,
		t.Symbol,
		t.Quantity,
		t.Price,
		t.Fee,
		t.TotalMoney,
		t.Notes,
		t.UserID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by ID, scoped to the user.
// Returns apperrors.ErrTransactionNotFound when no row matches.
func (r *TransactionRepository) Delete(userID, id string) error {
	result, err := r.db.Exec(`DELETE FROM transactions WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// ListUserIDs returns the distinct user IDs that have recorded
// transactions. Used by the snapshot job to know whose history to
// rebuild.
func (r *TransactionRepository) ListUserIDs() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT user_id FROM transactions ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query user IDs: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user ID: %w", err)
		}
		userIDs = append(userIDs, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user IDs: %w", err)
	}
	return userIDs, nil
}

func (r *TransactionRepository) queryTransactions(query string, args ...any) ([]model.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		var dateStr, createdAtStr, updatedAtStr string
		var notes sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&dateStr,
			&t.Type,
			&t.Category,
			&t.Symbol,
			&t.Quantity,
			&t.Price,
			&t.Fee,
			&t.TotalMoney,
			&notes,
			&createdAtStr,
			&updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transactions table results: %w", err)
		}
		t.Date, err = ParseTime(dateStr)
		if err != nil || t.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		t.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		t.UpdatedAt, err = ParseTime(updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}
		if notes.Valid {
			t.Notes = notes.String
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions table: %w", err)
	}

	return transactions, nil
}
