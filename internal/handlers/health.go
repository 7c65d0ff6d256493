package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	applog "hydromix/internal/log"
)

const healthPingTimeout = 2 * time.Second

type healthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// Health is a simple readiness handler suitable for infrastructure probes.
// The calculator works without a database, so a failed ping only degrades
// the reported status.
func Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)
	resp := healthResponse{
		Status:   "ok",
		Database: databaseStatus(r.Context()),
		Time:     time.Now().UTC(),
	}
	if resp.Database == "unavailable" {
		resp.Status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	applog.Debug(r.Context(), "health check responded successfully", "database", resp.Database)
}

func databaseStatus(ctx context.Context) string {
	if database == nil {
		return "disabled"
	}
	sqlDB, err := database.DB()
	if err != nil {
		applog.Error(ctx, "failed to access database handle", "error", err)
		return "unavailable"
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		applog.Error(ctx, "database ping failed", "error", err)
		return "unavailable"
	}
	return "ok"
}
