package handlers

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hydromix/internal/mixture"
)

const (
	fieldContainerSize = "container_size"
	fieldUnit          = "unit"
	fieldSystem        = "system"
	fieldVariant       = "variant"
	fieldPreset        = "preset"
	fieldSlider        = "slider"
)

// parseSize mirrors a number input: anything unparsable becomes NaN so
// validation reports it.
func parseSize(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// inputFromValues builds calculator input from form or query values,
// falling back to the system's default unit and slider default.
func inputFromValues(r *http.Request, values url.Values) (mixture.CalculationInput, mixture.Variant) {
	variant := defaults.Variant
	if name := strings.TrimSpace(values.Get(fieldVariant)); name != "" {
		variant = mixture.VariantByName(name)
	}

	system := mixture.ParseSystem(values.Get(fieldSystem))
	if system == "" {
		system = preferredSystem(r)
	}

	unit := mixture.ParseUnit(values.Get(fieldUnit))
	if strings.TrimSpace(values.Get(fieldUnit)) == "" {
		unit = defaultUnit(system, variant)
	}

	size := mixture.RangeFor(unit).Default
	if _, ok := values[fieldContainerSize]; ok {
		size = parseSize(values.Get(fieldContainerSize))
	}

	// A slider reports a raw value in the system's base unit; it wins over
	// the size and unit fields and never lands on a unit the variant rejects.
	if _, ok := values[fieldSlider]; ok {
		size, unit = variant.SliderValue(system, parseSize(values.Get(fieldSlider)))
	}

	return mixture.CalculationInput{ContainerSize: size, Unit: unit, System: system}, variant
}

func defaultUnit(system mixture.System, variant mixture.Variant) mixture.Unit {
	for _, u := range mixture.SystemUnits(system) {
		if variant.Supports(u) {
			return u
		}
	}
	return variant.Units[0]
}
