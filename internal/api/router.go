package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/minhdq/portfolio-tracker/internal/api/handlers"
	custommiddleware "github.com/minhdq/portfolio-tracker/internal/api/middleware"
	"github.com/minhdq/portfolio-tracker/internal/config"
	"github.com/minhdq/portfolio-tracker/internal/service"
)

// NewRouter creates and configures the HTTP router. System routes are
// open; everything touching user records sits behind the auth
// middleware.
func NewRouter(
	systemService *service.SystemService,
	portfolioService *service.PortfolioService,
	snapshotService *service.SnapshotService,
	transactionService *service.TransactionService,
	marketPriceService *service.MarketPriceService,
	verifier custommiddleware.TokenVerifier,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		// User-scoped data routes
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.Auth(verifier))

			r.Route("/portfolio", func(r chi.Router) {
				portfolioHandler := handlers.NewPortfolioHandler(portfolioService, snapshotService)
				r.Get("/summary", portfolioHandler.Summary)
				r.Get("/symbol/{symbol}", portfolioHandler.SymbolDetail)
				r.Get("/history", portfolioHandler.History)
				r.Get("/performance", portfolioHandler.Performance)
			})

			r.Route("/transactions", func(r chi.Router) {
				transactionHandler := handlers.NewTransactionHandler(transactionService)
				r.Get("/", transactionHandler.List)
				r.Post("/", transactionHandler.Create)
				r.Put("/{id}", transactionHandler.Update)
				r.Delete("/{id}", transactionHandler.Delete)
			})

			r.Route("/prices", func(r chi.Router) {
				marketPriceHandler := handlers.NewMarketPriceHandler(marketPriceService)
				r.Get("/", marketPriceHandler.List)
				r.Put("/", marketPriceHandler.Upsert)
				r.Delete("/{id}", marketPriceHandler.Delete)
			})
		})
	})

	return r
}
