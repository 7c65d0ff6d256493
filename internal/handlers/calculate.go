package handlers

import (
	"net/http"

	templpkg "github.com/a-h/templ"

	applog "hydromix/internal/log"
	"hydromix/internal/views/pages"
)

// Calculate handles form submissions. HTMX requests receive only the results
// partial; plain form posts get the whole page back.
func Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse calculator form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	input, variant := inputFromValues(r, r.PostForm)
	view := pages.NewCalculatorView(input, variant)
	if input.System != "" {
		setPreferredSystem(r, input.System)
	}

	applog.Debug(r.Context(), "calculator form submitted",
		"size", input.ContainerSize,
		"unit", string(input.Unit),
		"system", string(input.System),
		"error", view.Error,
	)

	var component templpkg.Component
	if isHTMX(r) {
		component = pages.ResultsPartial(view)
	} else {
		view.Presets = presetLinks(r.Context(), variant)
		component = pages.CalculatorPage(view)
	}
	renderComponent(w, r, component)
}
