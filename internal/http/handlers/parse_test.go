package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"jadwalkajian/backend/internal/config"
	"jadwalkajian/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminLogin:    "admin",
		AdminPassHash: string(hash),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(nil, nil, cfg, logger)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestParseBroadcastRekapan(t *testing.T) {
	h := newTestHandler(t)
	payload, _ := json.Marshal(map[string]string{
		"text": "🕌 Masjid Al-Ikhlas\nPemateri: Ustadz Ahmad\n***\n",
	})
	rec := postJSON(t, h.ParseBroadcast, string(payload))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Format string                 `json:"format"`
		Items  []models.ScheduleEntry `json:"items"`
		Total  int                    `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Format != "rekapan" {
		t.Fatalf("format = %q", resp.Format)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("total = %d, items %+v", resp.Total, resp.Items)
	}
	if resp.Items[0].VenueName != "Masjid Al-Ikhlas" {
		t.Fatalf("venue = %q", resp.Items[0].VenueName)
	}
}

func TestParseBroadcastUnknownFormat(t *testing.T) {
	h := newTestHandler(t)
	rec := postJSON(t, h.ParseBroadcast, `{"text": "halo, jadi jam berapa?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Format string                 `json:"format"`
		Items  []models.ScheduleEntry `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Format != "unknown" {
		t.Fatalf("format = %q", resp.Format)
	}
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Fatalf("items = %+v", resp.Items)
	}
}

func TestParseBroadcastRejectsEmptyBody(t *testing.T) {
	h := newTestHandler(t)
	if rec := postJSON(t, h.ParseBroadcast, `{}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec := postJSON(t, h.ParseBroadcast, `not json`); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestParseBroadcastHTMLInput(t *testing.T) {
	h := newTestHandler(t)
	payload, _ := json.Marshal(map[string]string{
		"html": "<p>🕌 Masjid An-Nur</p><p>Tema: Sabar</p><p>***</p>",
	})
	rec := postJSON(t, h.ParseBroadcast, string(payload))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Items []models.ScheduleEntry `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Topic != "Sabar" {
		t.Fatalf("items = %+v", resp.Items)
	}
}

func TestParsePreextracted(t *testing.T) {
	h := newTestHandler(t)
	rec := postJSON(t, h.ParsePreextracted, `[{"venueName": "Masjid Al-Ikhlas"}, {"venueName": "X"}]`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Format string                 `json:"format"`
		Items  []models.ScheduleEntry `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Format != "preextracted" || len(resp.Items) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestAuthAdmin(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.AuthAdmin, `{"username": "admin", "password": "rahasia"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["accessToken"] == "" || resp["username"] != "admin" {
		t.Fatalf("resp = %+v", resp)
	}

	if rec := postJSON(t, h.AuthAdmin, `{"username": "admin", "password": "salah"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec := postJSON(t, h.AuthAdmin, `{"username": "admin"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
