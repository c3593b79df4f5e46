package handlers

import (
	"database/sql"
	"net/http"

	"github.com/insiderpocket/backend/internal/database"
)

// SystemHandler handles system HTTP requests
type SystemHandler struct {
	db *sql.DB
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *sql.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health handles GET /api/system/health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := database.HealthCheck(h.db); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, code, map[string]string{"status": status})
}
