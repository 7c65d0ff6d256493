package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	applog "hydromix/internal/log"
	"hydromix/internal/mixture"
)

type preferencesResponse struct {
	System string `json:"system"`
}

// UpdatePreferences remembers the measurement system for the current session.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "preferences update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	value := strings.TrimSpace(r.FormValue(fieldSystem))
	system := mixture.ParseSystem(value)
	if system == "" {
		applog.Debug(r.Context(), "received invalid measurement system", "value", value)
		http.Error(w, "invalid measurement system", http.StatusBadRequest)
		return
	}

	if sessionManager == nil {
		applog.Debug(r.Context(), "session manager not configured; preference not remembered")
	}
	setPreferredSystem(r, system)

	response := preferencesResponse{System: string(system)}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		applog.Error(r.Context(), "failed to encode preferences response", "error", err)
	}
}
