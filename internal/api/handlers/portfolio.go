package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/api/response"
	"github.com/insiderpocket/backend/internal/service"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// AddHoldingRequest represents the request body for adding a holding
type AddHoldingRequest struct {
	Ticker   string  `json:"ticker"`
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
	AvgPrice float64 `json:"avgPrice"`
}

// Holdings handles GET /api/portfolio, returning the raw holdings list.
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.GetHoldings())
}

// AddHolding handles POST /api/portfolio.
//
// Response: 201 Created with the stored holding.
// Error: 400 on validation failure, 500 when persisting fails.
func (h *PortfolioHandler) AddHolding(w http.ResponseWriter, r *http.Request) {
	var req AddHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Type == "" {
		req.Type = "stock"
	}

	item, err := h.portfolioService.AddHolding(req.Ticker, req.Type, req.Quantity, req.AvgPrice)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTickerRequired),
			errors.Is(err, apperrors.ErrInvalidQuantity),
			errors.Is(err, apperrors.ErrInvalidHoldingType):
			response.RespondError(w, http.StatusBadRequest, "Invalid holding", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "Failed to save holding", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// RemoveHolding handles DELETE /api/portfolio/{id}.
func (h *PortfolioHandler) RemoveHolding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.portfolioService.RemoveHolding(id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidUUID):
			response.RespondError(w, http.StatusBadRequest, "Invalid holding ID", id)
		case errors.Is(err, apperrors.ErrHoldingNotFound):
			response.RespondError(w, http.StatusNotFound, "Holding not found", id)
		default:
			response.RespondError(w, http.StatusInternalServerError, "Failed to remove holding", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Summary handles GET /api/portfolio/summary, returning enriched
// holdings and the aggregate totals segmented by holding type.
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.portfolioService.GetSummary(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to get portfolio summary", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
