package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	applog "hydromix/internal/log"
	"hydromix/internal/mixture"
	"hydromix/internal/presets"
	"hydromix/internal/views/components"
	"hydromix/internal/views/pages"
	"hydromix/models"
)

// Home renders the calculator page. Query parameters prefill the form and a
// preset parameter loads a container from the catalogue.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	input, variant := inputFromValues(r, query)

	if slug := strings.TrimSpace(query.Get(fieldPreset)); slug != "" {
		preset, err := findPreset(r.Context(), slug)
		switch {
		case err == nil && variant.Supports(mixture.ParseUnit(preset.Unit)):
			input = presets.Input(*preset)
		case err == nil:
			applog.Debug(r.Context(), "preset unit not offered by variant", "preset", slug, "variant", variant.Name)
		case errors.Is(err, presets.ErrNotFound):
			applog.Debug(r.Context(), "unknown preset requested", "preset", slug)
		default:
			applog.Error(r.Context(), "failed to load preset", "error", err, "preset", slug)
		}
	}

	view := pages.NewCalculatorView(input, variant)
	view.Presets = presetLinks(r.Context(), variant)

	applog.Debug(r.Context(), "rendering calculator page", "unit", string(input.Unit), "system", string(input.System), "valid", view.Error == "")
	renderComponent(w, r, pages.CalculatorPage(view))
}

func findPreset(ctx context.Context, slug string) (*models.ContainerPreset, error) {
	if presetStore == nil {
		return nil, presets.ErrNotFound
	}
	return presetStore.FindBySlug(ctx, slug)
}

func presetLinks(ctx context.Context, variant mixture.Variant) []components.PresetLink {
	if presetStore == nil {
		return nil
	}
	catalogue, err := presetStore.List(ctx, "")
	if err != nil {
		applog.Error(ctx, "failed to list presets", "error", err)
		return nil
	}

	links := make([]components.PresetLink, 0, len(catalogue))
	for _, p := range catalogue {
		unit := mixture.ParseUnit(p.Unit)
		if !variant.Supports(unit) {
			continue
		}
		links = append(links, components.PresetLink{
			Slug:  p.Slug,
			Label: p.Name,
			Hint:  strconv.FormatFloat(p.Size, 'f', -1, 64) + " " + mixture.DisplayName(unit),
		})
	}
	return links
}
