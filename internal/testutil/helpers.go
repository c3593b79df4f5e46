package testutil

import (
	"database/sql"
	"testing"

	"github.com/insiderpocket/backend/internal/cache"
	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/repository"
	"github.com/insiderpocket/backend/internal/service"
)

// TestFernetKey is a fixed base64 fernet key for settings tests.
// Not used anywhere outside tests.
const TestFernetKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

// NewTestQuoteService creates a QuoteService backed by the provided mocks
// and a fresh cache.
func NewTestQuoteService(t *testing.T, us *MockUSFetcher, nordic *MockNordicFetcher) (*service.QuoteService, *cache.Cache[model.Quote]) {
	t.Helper()

	quoteCache := service.NewQuoteCache()
	return service.NewQuoteService(us, nordic, quoteCache, true), quoteCache
}

// NewTestNewsService creates a NewsService backed by the provided mock
// and fresh caches.
func NewTestNewsService(t *testing.T, fetcher *MockUSFetcher) *service.NewsService {
	t.Helper()

	return service.NewNewsService(fetcher, service.NewNewsCache(), service.NewNewsCache())
}

// NewTestPortfolioService creates a PortfolioService on top of a real
// storage repository and a QuoteService built from the provided mocks.
func NewTestPortfolioService(t *testing.T, db *sql.DB, us *MockUSFetcher, nordic *MockNordicFetcher) *service.PortfolioService {
	t.Helper()

	storageRepo := repository.NewStorageRepository(db)
	quoteService, _ := NewTestQuoteService(t, us, nordic)

	portfolioService, err := service.NewPortfolioService(storageRepo, quoteService)
	if err != nil {
		t.Fatalf("Failed to create portfolio service: %v", err)
	}
	return portfolioService
}

// NewTestSettingsRepository creates a SettingsRepository with the fixed
// test fernet key.
func NewTestSettingsRepository(t *testing.T, db *sql.DB) *repository.SettingsRepository {
	t.Helper()

	repo, err := repository.NewSettingsRepository(db, TestFernetKey)
	if err != nil {
		t.Fatalf("Failed to create settings repository: %v", err)
	}
	return repo
}
