package handlers

import (
	"encoding/json"
	"io"
	"net"
	"net/http"

	"jadwalkajian/backend/internal/broadcast/extract"
	"jadwalkajian/backend/internal/models"
)

const maxBroadcastBytes = 256 << 10

// parseRequest represents parse request.
type parseRequest struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}

// parseResponse represents parse response.
type parseResponse struct {
	Format string                 `json:"format"`
	Items  []models.ScheduleEntry `json:"items"`
	Total  int                    `json:"total"`
}

// ParseBroadcast turns one pasted broadcast (plain text or an HTML export)
// into schedule entries. An unrecognized format is a valid empty result, not
// an error.
func (h *Handler) ParseBroadcast(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	if !h.parseLimiter.Allow(clientKey(r)) {
		logger.Warn("action", "action", "parse_broadcast", "status", "rate_limited")
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req parseRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBroadcastBytes)).Decode(&req); err != nil {
		logger.Warn("action", "action", "parse_broadcast", "status", "invalid_json")
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	text := req.Text
	if text == "" && req.HTML != "" {
		reduced, err := extract.TextFromHTML(req.HTML)
		if err != nil {
			logger.Warn("action", "action", "parse_broadcast", "status", "invalid_html", "error", err)
			writeError(w, http.StatusBadRequest, "invalid html")
			return
		}
		text = reduced
	}
	if text == "" {
		writeError(w, http.StatusBadRequest, "text or html required")
		return
	}

	format := h.classifier.Detect(text)
	entries := h.classifier.Parse(text)

	if h.s3 != nil && len(entries) > 0 {
		ctx, cancel := h.withTimeout(r.Context())
		defer cancel()
		if _, err := h.s3.ArchiveBroadcast(ctx, text); err != nil {
			logger.Warn("action", "action", "parse_broadcast", "status", "archive_failed", "error", err)
		}
	}

	logger.Info("action", "action", "parse_broadcast", "format", string(format), "entries", len(entries))
	writeJSON(w, http.StatusOK, parseResponse{
		Format: string(format),
		Items:  entries,
		Total:  len(entries),
	})
}

// ParsePreextracted validates and post-processes structured entries produced
// upstream by the vision model.
func (h *Handler) ParsePreextracted(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBroadcastBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	entries, err := h.sanitizer.Sanitize(body)
	if err != nil {
		logger.Warn("action", "action", "parse_preextracted", "status", "invalid_json", "error", err)
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	logger.Info("action", "action", "parse_preextracted", "entries", len(entries))
	writeJSON(w, http.StatusOK, parseResponse{
		Format: "preextracted",
		Items:  entries,
		Total:  len(entries),
	})
}

// clientKey handles client key behavior.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
