package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minhdq/portfolio-tracker/internal/api"
	"github.com/minhdq/portfolio-tracker/internal/auth"
	"github.com/minhdq/portfolio-tracker/internal/config"
	"github.com/minhdq/portfolio-tracker/internal/database"
	"github.com/minhdq/portfolio-tracker/internal/repository"
	"github.com/minhdq/portfolio-tracker/internal/scheduler"
	"github.com/minhdq/portfolio-tracker/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Token auth
	authManager, err := auth.NewManager(cfg.Auth.TokenKey, auth.DefaultTTL)
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	marketPriceRepo := repository.NewMarketPriceRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	transactionService := service.NewTransactionService(transactionRepo)
	marketPriceService := service.NewMarketPriceService(marketPriceRepo)
	portfolioService := service.NewPortfolioService(transactionRepo, marketPriceRepo)
	snapshotService := service.NewSnapshotService(transactionRepo, marketPriceRepo, snapshotRepo)

	// Background snapshot rebuilds
	jobs := scheduler.New()
	if err := jobs.AddJob(cfg.Scheduler.SnapshotSchedule, scheduler.NewSnapshotJob(snapshotService)); err != nil {
		log.Fatalf("Failed to schedule snapshot job: %v", err)
	}
	jobs.Start()
	defer jobs.Stop()

	// Create router
	router := api.NewRouter(systemService, portfolioService, snapshotService, transactionService, marketPriceService, authManager, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
