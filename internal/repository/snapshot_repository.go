package repository

import (
	"database/sql"
	"fmt"

	"github.com/minhdq/portfolio-tracker/internal/model"
)

// SnapshotRepository provides data access methods for the
// portfolio_snapshots table, the materialized month-end net-worth
// series rebuilt by the scheduled job.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Replace atomically swaps the user's snapshot series for the given
// points. Runs in a transaction so readers never observe a partially
// rebuilt series.
func (r *SnapshotRepository) Replace(userID string, snapshots []model.PortfolioSnapshot) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(`DELETE FROM portfolio_snapshots WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO portfolio_snapshots (id, user_id, label, snapshot_date, value)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range snapshots {
		if _, err := stmt.Exec(s.ID, userID, s.Label, s.SnapshotDate.Format("2006-01-02"), s.Value); err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshots: %w", err)
	}
	return nil
}

// GetLatest returns the user's most recent months snapshot points,
// oldest first. Returns an empty slice when the series has not been
// materialized yet.
func (r *SnapshotRepository) GetLatest(userID string, months int) ([]model.PortfolioSnapshot, error) {
	query := `
		SELECT id, user_id, label, snapshot_date, value, generated_at
		FROM portfolio_snapshots
		WHERE user_id = ?
		ORDER BY snapshot_date DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_snapshots table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PortfolioSnapshot{}
	for rows.Next() {
		var s model.PortfolioSnapshot
		var dateStr, generatedAtStr string

		if err := rows.Scan(&s.ID, &s.UserID, &s.Label, &dateStr, &s.Value, &generatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_snapshots results: %w", err)
		}
		s.SnapshotDate, err = ParseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse snapshot_date: %w", err)
		}
		s.GeneratedAt, err = ParseTime(generatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse generated_at: %w", err)
		}

		snapshots = append(snapshots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_snapshots table: %w", err)
	}

	// Query is newest-first for the LIMIT; flip to oldest-first.
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	return snapshots, nil
}
