package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/insiderpocket/backend/internal/api/handlers"
	custommiddleware "github.com/insiderpocket/backend/internal/api/middleware"
	"github.com/insiderpocket/backend/internal/config"
	"github.com/insiderpocket/backend/internal/service"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Quote     *service.QuoteService
	Details   *service.DetailsService
	Search    *service.SearchService
	News      *service.NewsService
	Portfolio *service.PortfolioService
	Settings  *service.SettingsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(db *sql.DB, services Services, cfg *config.Config) http.Handler {
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
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(db)
			r.Get("/health", systemHandler.Health)
		})

		quoteHandler := handlers.NewQuoteHandler(services.Quote)
		r.Get("/quote", quoteHandler.Quote)

		detailsHandler := handlers.NewDetailsHandler(services.Details)
		r.Get("/details", detailsHandler.Details)

		searchHandler := handlers.NewSearchHandler(services.Search)
		r.Get("/search", searchHandler.Search)

		newsHandler := handlers.NewNewsHandler(services.News)
		r.Get("/news", newsHandler.News)

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(services.Portfolio)
			r.Get("/", portfolioHandler.Holdings)
			r.Post("/", portfolioHandler.AddHolding)
			r.Delete("/{id}", portfolioHandler.RemoveHolding)
			r.Get("/summary", portfolioHandler.Summary)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(services.Settings)
			r.Put("/api-key", settingsHandler.SetAPIKey)
		})
	})

	return r
}
