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

// MarketPriceService handles price observation operations. Writes are
// upserts keyed by (user, symbol, date), so recording a corrected price
// for a day replaces the earlier observation.
type MarketPriceService struct {
	marketPriceRepo *repository.MarketPriceRepository
}

// NewMarketPriceService creates a new MarketPriceService with the provided repository.
func NewMarketPriceService(marketPriceRepo *repository.MarketPriceRepository) *MarketPriceService {
	return &MarketPriceService{marketPriceRepo: marketPriceRepo}
}

// GetMarketPrices retrieves all of the user's price observations.
func (s *MarketPriceService) GetMarketPrices(userID string) ([]model.MarketPrice, error) {
	return s.marketPriceRepo.GetMarketPrices(userID)
}

// GetMarketPricesBySymbol retrieves the user's observations for one symbol.
func (s *MarketPriceService) GetMarketPricesBySymbol(userID, symbol string) ([]model.MarketPrice, error) {
	return s.marketPriceRepo.GetMarketPricesBySymbol(userID, strings.ToUpper(symbol))
}

// UpsertMarketPrice validates and stores a price observation, replacing
// any existing observation for the same symbol and date.
func (s *MarketPriceService) UpsertMarketPrice(userID string, req request.UpsertMarketPriceRequest) (model.MarketPrice, error) {
	if err := validation.ValidateUpsertMarketPrice(req); err != nil {
		return model.MarketPrice{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.MarketPrice{}, err
	}

	price := model.MarketPrice{
		ID:       uuid.New().String(),
		UserID:   userID,
		Date:     date,
		Category: req.Category,
		Symbol:   strings.ToUpper(req.Symbol),
		Price:    req.Price,
	}

	if err := s.marketPriceRepo.Upsert(price); err != nil {
		return model.MarketPrice{}, err
	}
	return price, nil
}

// DeleteMarketPrice removes a price observation.
func (s *MarketPriceService) DeleteMarketPrice(userID, id string) error {
	return s.marketPriceRepo.Delete(userID, id)
}
