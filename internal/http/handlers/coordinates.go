package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"jadwalkajian/backend/internal/models"
)

// extractCoordinatesRequest represents extract coordinates request.
type extractCoordinatesRequest struct {
	URL string `json:"url"`
}

// extractCoordinatesResponse represents extract coordinates response.
type extractCoordinatesResponse struct {
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	OK          bool                `json:"ok"`
	Reason      string              `json:"reason,omitempty"`
}

// backfillResponse represents backfill response.
type backfillResponse struct {
	Results []models.BackfillResult `json:"results"`
	Total   int                     `json:"total"`
	Filled  int                     `json:"filled"`
}

// ExtractCoordinates resolves one map URL and reports the extracted pair or
// the failure reason. Extraction failure is a regular response, not an HTTP
// error.
func (h *Handler) ExtractCoordinates(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	var req extractCoordinatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "url required")
		return
	}

	coords, err := h.extractor.ResolveAndExtract(r.Context(), rawURL)
	if err != nil {
		logger.Info("action", "action", "extract_coordinates", "status", "failed", "reason", err.Error())
		writeJSON(w, http.StatusOK, extractCoordinatesResponse{OK: false, Reason: err.Error()})
		return
	}
	logger.Info("action", "action", "extract_coordinates", "status", "ok", "lat", coords.Lat, "lng", coords.Lng)
	writeJSON(w, http.StatusOK, extractCoordinatesResponse{Coordinates: &coords, OK: true})
}

// BackfillCoordinates runs one backfill batch over stored schedules missing
// coordinates and returns the per-record report.
func (h *Handler) BackfillCoordinates(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	if !h.requireAdmin(logger, w, r, "backfill_coordinates") {
		return
	}

	results, err := h.backfiller.Run(r.Context(), h.cfg.Resolver.BackfillSize)
	if err != nil {
		logger.Error("action", "action", "backfill_coordinates", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	filled := 0
	for _, result := range results {
		if result.OK {
			filled++
		}
	}
	logger.Info("action", "action", "backfill_coordinates", "status", "ok", "total", len(results), "filled", filled)
	writeJSON(w, http.StatusOK, backfillResponse{Results: results, Total: len(results), Filled: filled})
}
