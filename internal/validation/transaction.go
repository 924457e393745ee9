package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/minhdq/portfolio-tracker/internal/api/request"
	"github.com/minhdq/portfolio-tracker/internal/model"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	model.TransactionBuy: true, model.TransactionSell: true, model.TransactionClose: true,
}

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - date: YYYY-MM-DD
//   - type: one of buy, sell, close
//   - category, symbol: non-empty
//   - quantity, fee, totalMoney: non-negative
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	validateDate(errors, req.Date)
	validateType(errors, req.Type)

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}
	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if req.Quantity < 0 {
		errors["quantity"] = "quantity must be non-negative"
	}
	if req.Fee < 0 {
		errors["fee"] = "fee must be non-negative"
	}
	if req.TotalMoney < 0 {
		errors["totalMoney"] = "totalMoney must be non-negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but if provided they must meet the same
// constraints as create.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		validateDate(errors, *req.Date)
	}
	if req.Type != nil {
		validateType(errors, *req.Type)
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		errors["category"] = "category is required"
	}
	if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errors["quantity"] = "quantity must be non-negative"
	}
	if req.Fee != nil && *req.Fee < 0 {
		errors["fee"] = "fee must be non-negative"
	}
	if req.TotalMoney != nil && *req.TotalMoney < 0 {
		errors["totalMoney"] = "totalMoney must be non-negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateDate(errors map[string]string, date string) {
	if strings.TrimSpace(date) == "" {
		errors["date"] = "date is required"
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		errors["date"] = err.Error()
	}
}

func validateType(errors map[string]string, transactionType string) {
	if strings.TrimSpace(transactionType) == "" {
		errors["transactionType"] = "type is required"
	} else if !ValidTransactionType[transactionType] {
		errors["transactionType"] = fmt.Sprintf("invalid type: %s", transactionType)
	}
}
