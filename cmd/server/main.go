package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/insiderpocket/backend/internal/api"
	"github.com/insiderpocket/backend/internal/config"
	"github.com/insiderpocket/backend/internal/database"
	"github.com/insiderpocket/backend/internal/finnhub"
	"github.com/insiderpocket/backend/internal/repository"
	"github.com/insiderpocket/backend/internal/scraper"
	"github.com/insiderpocket/backend/internal/service"
	"github.com/insiderpocket/backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and run migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	storageRepo := repository.NewStorageRepository(db)

	var settingsRepo *repository.SettingsRepository
	if cfg.Security.SecretKey != "" {
		settingsRepo, err = repository.NewSettingsRepository(db, cfg.Security.SecretKey)
		if err != nil {
			log.Fatalf("Failed to initialize settings repository: %v", err)
		}
	} else {
		log.Println("SECRET_KEY not set; settings storage disabled")
	}

	// Create upstream clients. The env API key wins; otherwise the
	// stored one is used. May legitimately be empty: Nordic quotes work
	// without it and the affected endpoints degrade explicitly.
	finnhubClient := finnhub.NewClient(cfg.Finnhub.BaseURL, "")
	settingsService := service.NewSettingsService(settingsRepo, finnhubClient)
	if key := settingsService.ResolveAPIKey(cfg.Finnhub.APIKey); key != "" {
		finnhubClient.SetAPIKey(key)
	} else {
		log.Println("FINNHUB_API_KEY not configured; US quotes and news will be unavailable")
	}

	yahooClient := yahoo.NewClient()
	fiScraper := scraper.NewScraper()

	// Create caches and services
	quoteCache := service.NewQuoteCache()
	generalNewsCache := service.NewNewsCache()
	portfolioNewsCache := service.NewNewsCache()

	quoteService := service.NewQuoteService(finnhubClient, yahooClient, quoteCache, cfg.Finnhub.DemoFallback)
	detailsService := service.NewDetailsService(finnhubClient, yahooClient, fiScraper, cfg.Finnhub.DemoFallback)
	searchService := service.NewSearchService(yahooClient)
	newsService := service.NewNewsService(finnhubClient, generalNewsCache, portfolioNewsCache)

	portfolioService, err := service.NewPortfolioService(storageRepo, quoteService)
	if err != nil {
		log.Fatalf("Failed to load portfolio: %v", err)
	}

	// Background cache refresh for held tickers
	if cfg.Refresh.Enabled {
		refresher := service.NewRefresher(portfolioService)
		if err := refresher.Start(cfg.Refresh.Schedule); err != nil {
			log.Fatalf("Failed to start refresh job: %v", err)
		}
		defer refresher.Stop()
	}

	// Create router
	router := api.NewRouter(db, api.Services{
		Quote:     quoteService,
		Details:   detailsService,
		Search:    searchService,
		News:      newsService,
		Portfolio: portfolioService,
		Settings:  settingsService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
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
