package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/minhdq/portfolio-tracker/internal/api/response"
	"github.com/minhdq/portfolio-tracker/internal/service"
)

// defaultHistoryMonths is the history window served when the client
// does not ask for a specific one.
const defaultHistoryMonths = 12

// PortfolioHandler exposes the derived portfolio views: summary,
// per-symbol detail, net-worth history and period performance.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	snapshotService  *service.SnapshotService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService, snapshotService *service.SnapshotService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		snapshotService:  snapshotService,
	}
}

// Summary returns current holdings, cost basis and lifetime P&L.
//
// Endpoint: GET /api/portfolio/summary?year=2024
// The optional year restricts which transactions are replayed; prices
// are never year-filtered.
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	filterYear, ok := parseYear(w, r)
	if !ok {
		return
	}

	summary, err := h.portfolioService.GetPortfolioSummary(userID, filterYear)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to get portfolio summary", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// SymbolDetail returns the position view for one symbol.
//
// Endpoint: GET /api/portfolio/symbol/{symbol}?year=2024
func (h *PortfolioHandler) SymbolDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		response.RespondError(w, http.StatusBadRequest, "symbol is required", nil)
		return
	}

	filterYear, ok := parseYear(w, r)
	if !ok {
		return
	}

	detail, err := h.portfolioService.GetSymbolDetail(userID, symbol, filterYear)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to get symbol detail", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, detail)
}

// History returns the trailing month-end net-worth series, served from
// the materialized snapshots when possible.
//
// Endpoint: GET /api/portfolio/history?months=12
func (h *PortfolioHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	months := defaultHistoryMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.RespondError(w, http.StatusBadRequest, "months must be a positive integer", raw)
			return
		}
		months = parsed
	}

	history, err := h.snapshotService.GetHistory(userID, months)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to get portfolio history", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}

// Performance returns the period-scoped P&L view. Without a start_date
// it is the whole-history summary.
//
// Endpoint: GET /api/portfolio/performance?start_date=2024-01-01
func (h *PortfolioHandler) Performance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var startDate *time.Time
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, raw)
			if err != nil {
				response.RespondError(w, http.StatusBadRequest, "Failed to parse start_date", err.Error())
				return
			}
		}
		startDate = &parsed
	}

	performance, err := h.portfolioService.GetPeriodPerformance(userID, startDate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to get period performance", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, performance)
}

// parseYear reads the optional year query parameter; zero means no
// filtering. Writes the error response itself when the value is
// malformed.
func parseYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		response.RespondError(w, http.StatusBadRequest, "year must be a positive integer", raw)
		return 0, false
	}
	return year, true
}
