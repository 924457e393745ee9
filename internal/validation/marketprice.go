package validation

import (
	"strings"
	"time"

	"github.com/minhdq/portfolio-tracker/internal/api/request"
)

// ValidateUpsertMarketPrice validates a market price upsert request.
//
// Required fields:
//   - date: YYYY-MM-DD
//   - category, symbol: non-empty
//   - price: non-negative
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateUpsertMarketPrice(req request.UpsertMarketPriceRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}
	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if req.Price < 0 {
		errors["price"] = "price must be non-negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
