package service

import (
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/minhdq/portfolio-tracker/internal/model"
	"github.com/minhdq/portfolio-tracker/internal/repository"
)

// PortfolioService runs the portfolio calculation engines over a user's
// recorded transactions and market prices. The engines are pure
// functions of their inputs; this service only materializes the inputs
// from the store and supplies the current time where an engine needs
// one.
type PortfolioService struct {
	transactionRepo *repository.TransactionRepository
	marketPriceRepo *repository.MarketPriceRepository
}

// NewPortfolioService creates a new PortfolioService with the provided
// repository dependencies.
func NewPortfolioService(
	transactionRepo *repository.TransactionRepository,
	marketPriceRepo *repository.MarketPriceRepository,
) *PortfolioService {
	return &PortfolioService{
		transactionRepo: transactionRepo,
		marketPriceRepo: marketPriceRepo,
	}
}

// GetPortfolioSummary computes the user's current holdings, cost basis
// and lifetime P&L. filterYear of zero means no year filtering; when
// set, only that calendar year's activity is replayed while valuation
// still uses the full price set.
func (s *PortfolioService) GetPortfolioSummary(userID string, filterYear int) (model.PortfolioSummary, error) {
	transactions, prices, err := s.loadRecords(userID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}
	return CalculatePortfolio(transactions, prices, filterYear), nil
}

// GetSymbolDetail computes the position view for one symbol. The symbol
// is case-normalized to match the write-side uppercasing.
func (s *PortfolioService) GetSymbolDetail(userID, symbol string, filterYear int) (model.SymbolDetail, error) {
	transactions, prices, err := s.loadRecords(userID)
	if err != nil {
		return model.SymbolDetail{}, err
	}
	return CalculateSymbolDetail(strings.ToUpper(symbol), transactions, prices, filterYear, time.Now()), nil
}

// GetPortfolioHistory computes the trailing months month-end net-worth
// series on demand.
func (s *PortfolioService) GetPortfolioHistory(userID string, months int) ([]model.HistoryPoint, error) {
	transactions, prices, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}
	return CalculatePortfolioHistory(transactions, prices, months, time.Now()), nil
}

// GetPeriodPerformance isolates the profit generated within the window
// opening at startDate. A nil startDate yields the whole-history view,
// identical to GetPortfolioSummary without a year filter.
func (s *PortfolioService) GetPeriodPerformance(userID string, startDate *time.Time) (model.PortfolioSummary, error) {
	transactions, prices, err := s.loadRecords(userID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}
	return CalculatePeriodPerformance(transactions, prices, startDate), nil
}

// loadRecords fetches the user's full transaction and price sets
// concurrently. The engines re-sort and filter internally, so the only
// contract here is completeness.
func (s *PortfolioService) loadRecords(userID string) ([]model.Transaction, []model.MarketPrice, error) {
	var (
		g            errgroup.Group
		transactions []model.Transaction
		prices       []model.MarketPrice
	)

	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetTransactions(userID)
		return err
	})
	g.Go(func() error {
		var err error
		prices, err = s.marketPriceRepo.GetMarketPrices(userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return transactions, prices, nil
}
