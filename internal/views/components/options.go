package components

import (
	"strings"

	"hydromix/internal/mixture"
)

// Option represents a selectable value exposed to a form control.
type Option struct {
	Value string
	Label string
}

var systemOptions = []Option{
	{Value: string(mixture.Metric), Label: "Metric"},
	{Value: string(mixture.Imperial), Label: "Imperial"},
}

var unitLabels = map[mixture.Unit]string{
	mixture.Milliliter: "ml",
	mixture.Liter:      "Liters",
	mixture.FluidOunce: "Fluid ounces",
	mixture.Gallon:     "Gallon",
	mixture.FiveGallon: "5 Gallons",
}

// SystemOptions exposes the measurement systems for a toggle.
func SystemOptions() []Option {
	return systemOptions
}

// ResolveSystem returns the option for key, falling back to fallback when
// key is not a known system.
func ResolveSystem(key string, fallback mixture.System) mixture.System {
	if system := mixture.ParseSystem(key); system != "" {
		return system
	}
	return fallback
}

// UnitOptions builds select options for units.
func UnitOptions(units []mixture.Unit) []Option {
	out := make([]Option, 0, len(units))
	for _, u := range units {
		label, ok := unitLabels[u]
		if !ok {
			label = strings.TrimSpace(mixture.DisplayName(u))
		}
		out = append(out, Option{Value: string(u), Label: label})
	}
	return out
}
