package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/match-features-service/internal/models"
	"github.com/cypherlabdev/match-features-service/internal/service"
)

const dateFormat = "2006-01-02"

// FeaturesHandler handles HTTP requests for match features
type FeaturesHandler struct {
	service *service.FeatureService
	logger  zerolog.Logger
}

// NewFeaturesHandler creates a new features HTTP handler
func NewFeaturesHandler(service *service.FeatureService, logger zerolog.Logger) *FeaturesHandler {
	return &FeaturesHandler{
		service: service,
		logger:  logger.With().Str("component", "features_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *FeaturesHandler) RegisterRoutes(mux *http.ServeMux) {
	// POST /api/v1/features/compute - Compute features for a match table
	// GET  /api/v1/features/:date/:home/:away - Get features for a specific match
	mux.HandleFunc("/api/v1/features/", h.handleFeatures)

	// GET /api/v1/dates/:date/features - Get all features for a date
	mux.HandleFunc("/api/v1/dates/", h.handleGetDateFeatures)
}

// ComputeRequest is the body of a feature computation request.
type ComputeRequest struct {
	Matches []models.MatchRecord `json:"matches"`
}

// ComputeResponse carries the computed feature rows.
type ComputeResponse struct {
	ComputationID uuid.UUID           `json:"computation_id"`
	Count         int                 `json:"count"`
	Features      []models.FeatureRow `json:"features"`
}

// handleFeatures dispatches /api/v1/features/ requests
func (h *FeaturesHandler) handleFeatures(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/features/")

	if path == "compute" {
		h.handleCompute(w, r)
		return
	}

	h.handleGetFeatures(w, r, path)
}

// handleCompute handles POST /api/v1/features/compute
func (h *FeaturesHandler) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rows, err := h.service.ComputeFeatures(r.Context(), req.Matches)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int("match_count", len(req.Matches)).
			Msg("feature computation failed")
		h.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.jsonResponse(w, http.StatusOK, ComputeResponse{
		ComputationID: uuid.New(),
		Count:         len(rows),
		Features:      rows,
	})
}

// handleGetFeatures handles GET /api/v1/features/:date/:home/:away
func (h *FeaturesHandler) handleGetFeatures(w http.ResponseWriter, r *http.Request, path string) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	parts := strings.Split(path, "/")
	if len(parts) != 3 {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/features/:date/:home/:away")
		return
	}

	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid date: expected YYYY-MM-DD")
		return
	}

	homeTeam := parts[1]
	awayTeam := parts[2]
	if homeTeam == "" || awayTeam == "" {
		h.errorResponse(w, http.StatusBadRequest, "home and away teams are required")
		return
	}

	row, err := h.service.GetFeatures(r.Context(), date, homeTeam, awayTeam)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("date", parts[0]).
			Str("home_team", homeTeam).
			Str("away_team", awayTeam).
			Msg("features not found")
		h.errorResponse(w, http.StatusNotFound, "features not found")
		return
	}

	h.jsonResponse(w, http.StatusOK, row)
}

// handleGetDateFeatures handles GET /api/v1/dates/:date/features
func (h *FeaturesHandler) handleGetDateFeatures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/dates/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[1] != "features" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/dates/:date/features")
		return
	}

	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid date: expected YYYY-MM-DD")
		return
	}

	rows, err := h.service.GetFeaturesByDate(r.Context(), date)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("date", parts[0]).
			Msg("failed to retrieve features for date")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve features")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"date":     parts[0],
		"count":    len(rows),
		"features": rows,
	})
}

// jsonResponse writes a JSON response
func (h *FeaturesHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *FeaturesHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
