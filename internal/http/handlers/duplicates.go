package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"jadwalkajian/backend/internal/match"
	"jadwalkajian/backend/internal/models"
)

// duplicateGroupsResponse represents duplicate groups response.
type duplicateGroupsResponse struct {
	Field  string             `json:"field"`
	Groups []models.NameGroup `json:"groups"`
}

// mergeVenuesRequest represents merge venues request.
type mergeVenuesRequest struct {
	Canonical string   `json:"canonical"`
	Variants  []string `json:"variants"`
}

// DuplicateGroups clusters every stored venue (or speaker) name by
// similarity and proposes canonical spellings for bulk merge.
func (h *Handler) DuplicateGroups(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	if !h.requireAdmin(logger, w, r, "duplicate_groups") {
		return
	}
	field := strings.TrimSpace(r.URL.Query().Get("field"))
	if field == "" {
		field = "venue"
	}
	if field != "venue" && field != "speaker" {
		writeError(w, http.StatusBadRequest, "field must be venue or speaker")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()
	var names []string
	var err error
	if field == "venue" {
		names, err = h.repo.ListVenueNames(ctx)
	} else {
		names, err = h.repo.ListSpeakerNames(ctx)
	}
	if err != nil {
		logger.Error("action", "action", "duplicate_groups", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}

	groups := match.GroupVariants(names)
	logger.Info("action", "action", "duplicate_groups", "field", field, "groups", len(groups))
	writeJSON(w, http.StatusOK, duplicateGroupsResponse{Field: field, Groups: groups})
}

// MergeVenues applies an operator-approved canonical venue spelling.
func (h *Handler) MergeVenues(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	if !h.requireAdmin(logger, w, r, "merge_venues") {
		return
	}
	var req mergeVenuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	canonical := strings.TrimSpace(req.Canonical)
	if canonical == "" || len(req.Variants) == 0 {
		writeError(w, http.StatusBadRequest, "canonical and variants required")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()
	updated, err := h.repo.RenameVenue(ctx, canonical, req.Variants)
	if err != nil {
		logger.Error("action", "action", "merge_venues", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	logger.Info("action", "action", "merge_venues", "status", "ok", "updated", updated)
	writeJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}
