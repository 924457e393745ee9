package validation_test

import (
	"errors"
	"testing"

	"github.com/minhdq/portfolio-tracker/internal/api/request"
	"github.com/minhdq/portfolio-tracker/internal/validation"
)

// TestValidateUpsertMarketPrice tests the price write rules.
//
// WHY: A zero price is a legitimate observation (delisted assets) but a
// negative one never is, and the upsert key needs a well-formed date.
func TestValidateUpsertMarketPrice(t *testing.T) {
	valid := request.UpsertMarketPriceRequest{
		Date:     "2024-01-31",
		Category: "stock",
		Symbol:   "VNM",
		Price:    65000,
	}

	tests := []struct {
		name      string
		mutate    func(*request.UpsertMarketPriceRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *request.UpsertMarketPriceRequest) {},
		},
		{
			name:   "zero price is accepted",
			mutate: func(r *request.UpsertMarketPriceRequest) { r.Price = 0 },
		},
		{
			name:      "missing date",
			mutate:    func(r *request.UpsertMarketPriceRequest) { r.Date = "" },
			wantField: "date",
		},
		{
			name:      "malformed date",
			mutate:    func(r *request.UpsertMarketPriceRequest) { r.Date = "31-01-2024" },
			wantField: "date",
		},
		{
			name:      "blank category",
			mutate:    func(r *request.UpsertMarketPriceRequest) { r.Category = "" },
			wantField: "category",
		},
		{
			name:      "blank symbol",
			mutate:    func(r *request.UpsertMarketPriceRequest) { r.Symbol = " " },
			wantField: "symbol",
		},
		{
			name:      "negative price",
			mutate:    func(r *request.UpsertMarketPriceRequest) { r.Price = -1 },
			wantField: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validation.ValidateUpsertMarketPrice(req)

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Expected valid request, got %v", err)
				}
				return
			}

			var validationErr *validation.Error
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if _, ok := validationErr.Fields[tt.wantField]; !ok {
				t.Errorf("Expected field error for %s, got %v", tt.wantField, validationErr.Fields)
			}
		})
	}
}
