package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"jadwalkajian/backend/internal/match"
	"jadwalkajian/backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// schedulesResponse represents schedules response.
type schedulesResponse struct {
	Items []models.Schedule `json:"items"`
	Total int               `json:"total"`
}

// createScheduleRequest represents create schedule request.
type createScheduleRequest struct {
	Entry models.ScheduleEntry `json:"entry"`
	// Force skips the duplicate gate after an operator reviewed the matches.
	Force bool `json:"force"`
}

// createScheduleResponse represents create schedule response.
type createScheduleResponse struct {
	Item       *models.Schedule        `json:"item,omitempty"`
	Duplicates []models.DuplicateMatch `json:"duplicates,omitempty"`
}

// checkDuplicatesResponse represents check duplicates response.
type checkDuplicatesResponse struct {
	IsDuplicate bool                    `json:"isDuplicate"`
	Matches     []models.DuplicateMatch `json:"matches"`
}

// ListSchedules lists schedules.
func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	limit := 50
	offset := 0
	if val := strings.TrimSpace(r.URL.Query().Get("limit")); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}
	if val := strings.TrimSpace(r.URL.Query().Get("offset")); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()
	items, total, err := h.repo.ListSchedules(ctx, limit, offset)
	if err != nil {
		logger.Error("action", "action", "list_schedules", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, schedulesResponse{Items: items, Total: total})
}

// GetSchedule returns one schedule.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()
	item, err := h.repo.GetSchedule(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		logger.Error("action", "action", "get_schedule", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// CreateSchedule persists a reviewed entry. Unless forced, a candidate that
// collides with same-date rows is returned to the operator for review instead
// of being inserted.
func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	var req createScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Entry.VenueName) == "" {
		writeError(w, http.StatusBadRequest, "venueName required")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	if !req.Force {
		existing, err := h.repo.ListByDate(ctx, req.Entry.Date)
		if err != nil {
			logger.Error("action", "action", "create_schedule", "status", "db_error", "error", err)
			writeError(w, http.StatusInternalServerError, "db error")
			return
		}
		if dup, matches := match.IsDuplicate(req.Entry, existing); dup {
			logger.Info("action", "action", "create_schedule", "status", "duplicate", "matches", len(matches))
			writeJSON(w, http.StatusConflict, createScheduleResponse{Duplicates: matches})
			return
		}
	}

	item, err := h.repo.InsertSchedule(ctx, req.Entry)
	if err != nil {
		logger.Error("action", "action", "create_schedule", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	logger.Info("action", "action", "create_schedule", "status", "ok", "schedule_id", item.ID)
	writeJSON(w, http.StatusCreated, createScheduleResponse{Item: &item})
}

// CheckDuplicates runs the duplicate detector for a candidate entry without
// persisting anything.
func (h *Handler) CheckDuplicates(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	var entry models.ScheduleEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()
	existing, err := h.repo.ListByDate(ctx, entry.Date)
	if err != nil {
		logger.Error("action", "action", "check_duplicates", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	dup, matches := match.IsDuplicate(entry, existing)
	writeJSON(w, http.StatusOK, checkDuplicatesResponse{IsDuplicate: dup, Matches: matches})
}

// DeleteSchedule deletes one schedule.
func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	if !h.requireAdmin(logger, w, r, "delete_schedule") {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()
	if err := h.repo.DeleteSchedule(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		logger.Error("action", "action", "delete_schedule", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	logger.Info("action", "action", "delete_schedule", "status", "ok", "schedule_id", id)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
