package server

import (
	"context"
	"net/http"

	"hydromix/internal/handlers"
	applog "hydromix/internal/log"
	"hydromix/web"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/calculate", handlers.Calculate)
	applog.Debug(context.Background(), "route registered", "path", "/calculate")
	mux.HandleFunc("/preferences", handlers.UpdatePreferences)
	applog.Debug(context.Background(), "route registered", "path", "/preferences")
	mux.HandleFunc("/api/calculate", handlers.APICalculate)
	mux.HandleFunc("/api/units", handlers.APIUnits)
	mux.HandleFunc("/api/presets", handlers.APIPresets)
	applog.Debug(context.Background(), "route registered", "path", "/api/", "json", true)
	mux.HandleFunc("/", handlers.Home)
	applog.Debug(context.Background(), "route registered", "path", "/")
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(web.Static()))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)
	return mux
}
