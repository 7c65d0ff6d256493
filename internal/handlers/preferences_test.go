package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestUpdatePreferencesStoresSystem(t *testing.T) {
	sm := withTestSessionManager(t)

	var stored string
	handler := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		UpdatePreferences(w, r)
		stored = sm.GetString(r.Context(), sessionSystemKey)
	}))

	req := httptest.NewRequest(http.MethodPost, "/preferences", strings.NewReader(url.Values{"system": {"Imperial"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp preferencesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.System != "imperial" {
		t.Fatalf("expected imperial, got %q", resp.System)
	}
	if stored != "imperial" {
		t.Fatalf("expected session to hold imperial, got %q", stored)
	}
}

func TestUpdatePreferencesRejectsUnknownSystem(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/preferences", strings.NewReader("system=cubits"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	UpdatePreferences(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUpdatePreferencesRejectsGet(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	w := httptest.NewRecorder()
	UpdatePreferences(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}
