package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/minhdq/portfolio-tracker/internal/api/request"
	"github.com/minhdq/portfolio-tracker/internal/api/response"
	"github.com/minhdq/portfolio-tracker/internal/apperrors"
	"github.com/minhdq/portfolio-tracker/internal/service"
	"github.com/minhdq/portfolio-tracker/internal/validation"
)

// TransactionHandler handles transaction record HTTP requests.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List returns the user's transactions, optionally filtered by symbol
// or calendar year.
//
// Endpoint: GET /api/transactions?symbol=VNM&year=2024
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if symbol := r.URL.Query().Get("symbol"); symbol != "" {
		transactions, err := h.transactionService.GetTransactionsBySymbol(userID, symbol)
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve transactions", err.Error())
			return
		}
		response.RespondJSON(w, http.StatusOK, transactions)
		return
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			response.RespondError(w, http.StatusBadRequest, "year must be a positive integer", raw)
			return
		}
		transactions, err := h.transactionService.GetTransactionsByYear(userID, year)
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve transactions", err.Error())
			return
		}
		response.RespondJSON(w, http.StatusOK, transactions)
		return
	}

	transactions, err := h.transactionService.GetTransactions(userID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve transactions", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, transactions)
}

// Create records a new transaction.
//
// Endpoint: POST /api/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req request.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(userID, req)
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Failed to create transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// Update edits an existing transaction.
//
// Endpoint: PUT /api/transactions/{id}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")

	var req request.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, id, req)
	if err != nil {
		var validationErr *validation.Error
		switch {
		case errors.As(err, &validationErr):
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
		case errors.Is(err, apperrors.ErrTransactionNotFound):
			response.RespondError(w, http.StatusNotFound, "Transaction not found", id)
		default:
			response.RespondError(w, http.StatusInternalServerError, "Failed to update transaction", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// Delete removes a transaction.
//
// Endpoint: DELETE /api/transactions/{id}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.transactionService.DeleteTransaction(userID, id); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, "Transaction not found", id)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Failed to delete transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
