package handlers

import (
	"net/http"

	"hydromix/internal/mixture"
	"hydromix/internal/views/components"
)

const sessionSystemKey = "calculator:system"

// preferredSystem returns the visitor's measurement system from the
// session, or the configured default.
func preferredSystem(r *http.Request) mixture.System {
	if sessionManager == nil {
		return defaults.System
	}
	return components.ResolveSystem(sessionManager.GetString(r.Context(), sessionSystemKey), defaults.System)
}

func setPreferredSystem(r *http.Request, system mixture.System) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionSystemKey, string(system))
}
