package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhdq/portfolio-tracker/internal/api/request"
	"github.com/minhdq/portfolio-tracker/internal/api/response"
	"github.com/minhdq/portfolio-tracker/internal/apperrors"
	"github.com/minhdq/portfolio-tracker/internal/service"
	"github.com/minhdq/portfolio-tracker/internal/validation"
)

// MarketPriceHandler handles market price observation HTTP requests.
type MarketPriceHandler struct {
	marketPriceService *service.MarketPriceService
}

// NewMarketPriceHandler creates a new MarketPriceHandler
func NewMarketPriceHandler(marketPriceService *service.MarketPriceService) *MarketPriceHandler {
	return &MarketPriceHandler{marketPriceService: marketPriceService}
}

// List returns the user's price observations, optionally filtered by symbol.
//
// Endpoint: GET /api/prices?symbol=VNM
func (h *MarketPriceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if symbol := r.URL.Query().Get("symbol"); symbol != "" {
		prices, err := h.marketPriceService.GetMarketPricesBySymbol(userID, symbol)
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve market prices", err.Error())
			return
		}
		response.RespondJSON(w, http.StatusOK, prices)
		return
	}

	prices, err := h.marketPriceService.GetMarketPrices(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve market prices", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, prices)
}

// Upsert records a price observation, replacing any existing one for
// the same symbol and date.
//
// Endpoint: PUT /api/prices
func (h *MarketPriceHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.UpsertMarketPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	price, err := h.marketPriceService.UpsertMarketPrice(userID, req)
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Failed to save market price", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, price)
}

// Delete removes a price observation.
//
// Endpoint: DELETE /api/prices/{id}
func (h *MarketPriceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.marketPriceService.DeleteMarketPrice(userID, id); err != nil {
		if errors.Is(err, apperrors.ErrMarketPriceNotFound) {
			response.RespondError(w, http.StatusNotFound, "Market price not found", id)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Failed to delete market price", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
