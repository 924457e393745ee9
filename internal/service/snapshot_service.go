package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/minhdq/portfolio-tracker/internal/model"
	"github.com/minhdq/portfolio-tracker/internal/repository"
)

// snapshotMonths is how far back the materialized series reaches.
// History requests for longer windows fall back to on-demand
// calculation.
const snapshotMonths = 24

// SnapshotService maintains the materialized month-end net-worth
// series. Reading from the snapshot table avoids replaying every
// transaction on each history request; the scheduled job keeps the
// table current and reads fall back to on-demand calculation whenever
// the materialized series cannot satisfy a request.
type SnapshotService struct {
	transactionRepo *repository.TransactionRepository
	marketPriceRepo *repository.MarketPriceRepository
	snapshotRepo    *repository.SnapshotRepository
}

// NewSnapshotService creates a new SnapshotService with the provided
// repository dependencies.
func NewSnapshotService(
	transactionRepo *repository.TransactionRepository,
	marketPriceRepo *repository.MarketPriceRepository,
	snapshotRepo *repository.SnapshotRepository,
) *SnapshotService {
	return &SnapshotService{
		transactionRepo: transactionRepo,
		marketPriceRepo: marketPriceRepo,
		snapshotRepo:    snapshotRepo,
	}
}

// RebuildUser recomputes and stores the user's snapshot series from
// scratch. Rebuilding is idempotent: the series is derived entirely
// from the current transaction and price sets.
func (s *SnapshotService) RebuildUser(userID string) error {
	transactions, err := s.transactionRepo.GetTransactions(userID)
	if err != nil {
		return err
	}
	prices, err := s.marketPriceRepo.GetMarketPrices(userID)
	if err != nil {
		return err
	}

	now := time.Now()
	points := CalculatePortfolioHistory(transactions, prices, snapshotMonths, now)

	snapshots := make([]model.PortfolioSnapshot, len(points))
	for idx, point := range points {
		snapshots[idx] = model.PortfolioSnapshot{
			ID:           uuid.New().String(),
			UserID:       userID,
			Label:        point.Date,
			SnapshotDate: monthEndBoundary(now, len(points)-1-idx),
			Value:        point.Value,
		}
	}

	return s.snapshotRepo.Replace(userID, snapshots)
}

// RebuildAll rebuilds the snapshot series for every user with recorded
// transactions. A failure for one user does not stop the others; all
// failures are reported together.
func (s *SnapshotService) RebuildAll() error {
	userIDs, err := s.transactionRepo.ListUserIDs()
	if err != nil {
		return err
	}

	var errs []error
	for _, userID := range userIDs {
		if err := s.RebuildUser(userID); err != nil {
			log.Printf("Failed to rebuild snapshots for user %s: %v", userID, err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GetHistory serves the trailing months net-worth series, preferring
// the materialized table and computing on demand when the table cannot
// cover the request (never built, being rebuilt, or a longer window
// than materialized).
func (s *SnapshotService) GetHistory(userID string, months int) ([]model.HistoryPoint, error) {
	snapshots, err := s.snapshotRepo.GetLatest(userID, months)
	if err == nil && len(snapshots) == months {
		points := make([]model.HistoryPoint, len(snapshots))
		for i, snapshot := range snapshots {
			points[i] = model.HistoryPoint{Date: snapshot.Label, Value: snapshot.Value}
		}
		return points, nil
	}

	transactions, err := s.transactionRepo.GetTransactions(userID)
	if err != nil {
		return nil, err
	}
	prices, err := s.marketPriceRepo.GetMarketPrices(userID)
	if err != nil {
		return nil, err
	}
	return CalculatePortfolioHistory(transactions, prices, months, time.Now()), nil
}
