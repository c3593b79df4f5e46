package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/insiderpocket/backend/internal/api/handlers"
	"github.com/insiderpocket/backend/internal/testutil"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports ok with a live database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(db)

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if body["status"] != "ok" {
			t.Errorf("Expected status ok, got %q", body["status"])
		}
	})

	t.Run("reports degraded with a closed database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		db.Close()
		handler := handlers.NewSystemHandler(db)

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected status 503, got %d", rec.Code)
		}
	})
}
