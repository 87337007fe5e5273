package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// presignUploadRequest represents presign upload request.
type presignUploadRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

// presignUploadResponse represents presign upload response.
type presignUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
}

// PresignUpload hands the operator console a URL for uploading a broadcast
// screenshot destined for model pre-extraction.
func (h *Handler) PresignUpload(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)
	if h.s3 == nil {
		writeError(w, http.StatusServiceUnavailable, "uploads disabled")
		return
	}
	var req presignUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	fileName := strings.TrimSpace(req.FileName)
	contentType := strings.TrimSpace(req.ContentType)
	if fileName == "" || contentType == "" {
		writeError(w, http.StatusBadRequest, "fileName and contentType required")
		return
	}
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()
	uploadURL, fileURL, err := h.s3.PresignPutObject(ctx, fileName, contentType)
	if err != nil {
		logger.Error("action", "action", "presign_upload", "status", "s3_error", "error", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, presignUploadResponse{UploadURL: uploadURL, FileURL: fileURL})
}
