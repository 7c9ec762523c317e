package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "fixerhub-backend/internal/api/http"
	"fixerhub-backend/internal/config"
	"fixerhub-backend/internal/logger"
	"fixerhub-backend/internal/repository/postgres"
	"fixerhub-backend/internal/security"
	"fixerhub-backend/internal/service"
	"fixerhub-backend/internal/utils"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting FixerHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.From,
		cfg.SendGrid.FromName,
	)

	// Initialize Services
	commissionRate, err := utils.ParseCommissionRate(cfg.Billing.CommissionRate)
	if err != nil {
		log.Fatalf("Invalid commission rate: %v", err)
	}
	logger.Info("Billing configuration", "commission_rate", cfg.Billing.CommissionRate)

	walletSvc := service.NewWalletService(
		store,
		store.WalletRepository,
		store.LedgerRepository,
		store.TopUpRepository,
		store.ProviderRepository,
		emailSvc,
		commissionRate,
	)
	providerSvc := service.NewProviderService(store.ProviderRepository, store.JobRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(walletSvc, providerSvc, tokenManager)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
