package handlers

import (
	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"hydromix/internal/mixture"
	"hydromix/internal/presets"
)

// Defaults controls how the calculator page starts for a new visitor.
type Defaults struct {
	System  mixture.System
	Variant mixture.Variant
}

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	presetStore    *presets.Store
	defaults       = Defaults{System: mixture.Metric, Variant: mixture.FullVariant}
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB) {
	sessionManager = sm
	database = db
	if db == nil {
		presetStore = nil
		return
	}
	presetStore = presets.NewStore(db)
}

// ConfigureDefaults sets the starting measurement system and form variant.
func ConfigureDefaults(d Defaults) {
	if d.System == "" {
		d.System = mixture.Metric
	}
	if d.Variant.Name == "" {
		d.Variant = mixture.FullVariant
	}
	defaults = d
}
