package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhdq/portfolio-tracker/internal/api/request"
	"github.com/minhdq/portfolio-tracker/internal/model"
	"github.com/minhdq/portfolio-tracker/internal/repository"
	"github.com/minhdq/portfolio-tracker/internal/validation"
)

// TransactionService handles transaction record operations: validated
// writes and user-scoped reads. Symbols are case-normalized to
// uppercase at write time so every later lookup and fold sees one
// canonical spelling.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository.
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// GetTransactions retrieves all of the user's transactions.
func (s *TransactionService) GetTransactions(userID string) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactions(userID)
}

// GetTransactionsBySymbol retrieves the user's transactions for one symbol.
func (s *TransactionService) GetTransactionsBySymbol(userID, symbol string) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactionsBySymbol(userID, strings.ToUpper(symbol))
}

// GetTransactionsByYear retrieves the user's transactions within a calendar year.
func (s *TransactionService) GetTransactionsByYear(userID string, year int) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactionsByYear(userID, year)
}

// CreateTransaction validates and stores a new transaction record.
func (s *TransactionService) CreateTransaction(userID string, req request.CreateTransactionRequest) (model.Transaction, error) {
	if err := validation.ValidateCreateTransaction(req); err != nil {
		return model.Transaction{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.Transaction{}, err
	}

	transaction := model.Transaction{
		ID:         uuid.New().String(),
		UserID:     userID,
		Date:       date,
		Type:       req.Type,
		Category:   req.Category,
		Symbol:     strings.ToUpper(req.Symbol),
		Quantity:   req.Quantity,
		Price:      req.Price,
		Fee:        req.Fee,
		TotalMoney: req.TotalMoney,
		Notes:      req.Notes,
	}

	if err := s.transactionRepo.Insert(transaction); err != nil {
		return model.Transaction{}, err
	}
	return transaction, nil
}

// UpdateTransaction validates and applies a partial update to an
// existing transaction record.
func (s *TransactionService) UpdateTransaction(userID, id string, req request.UpdateTransactionRequest) (model.Transaction, error) {
	if err := validation.ValidateUpdateTransaction(req); err != nil {
		return model.Transaction{}, err
	}

	transaction, err := s.transactionRepo.GetTransaction(userID, id)
	if err != nil {
		return model.Transaction{}, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return model.Transaction{}, err
		}
		transaction.Date = date
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Symbol != nil {
		transaction.Symbol = strings.ToUpper(*req.Symbol)
	}
	if req.Quantity != nil {
		transaction.Quantity = *req.Quantity
	}
	if req.Price != nil {
		transaction.Price = *req.Price
	}
	if req.Fee != nil {
		transaction.Fee = *req.Fee
	}
	if req.TotalMoney != nil {
		transaction.TotalMoney = *req.TotalMoney
	}
	if req.Notes != nil {
		transaction.Notes = *req.Notes
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return model.Transaction{}, err
	}
	return transaction, nil
}

// DeleteTransaction removes a transaction record.
func (s *TransactionService) DeleteTransaction(userID, id string) error {
	return s.transactionRepo.Delete(userID, id)
}
