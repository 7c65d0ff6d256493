package mixture

import (
	"context"
	"strings"

	applog "hydromix/internal/log"
)

// Unit tags the volume unit a container size is expressed in.
type Unit string

const (
	Milliliter Unit = "ml"
	Liter      Unit = "liter"
	FluidOunce Unit = "floz"
	Gallon     Unit = "gallon"
	FiveGallon Unit = "5gallon"
)

// US liquid measures.
const (
	gallonToML  = 3785.41
	fluidOzToML = 29.5735
	literToML   = 1000
)

// System groups units into metric or imperial. The zero value means unspecified.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

var factors = map[Unit]float64{
	Milliliter: 1,
	Liter:      literToML,
	FluidOunce: fluidOzToML,
	Gallon:     gallonToML,
	FiveGallon: 5 * gallonToML,
}

var displayNames = map[Unit]string{
	Milliliter: "ml",
	Liter:      "L",
	FluidOunce: "fl oz",
	Gallon:     "gal",
	FiveGallon: "5-gal",
}

var aliases = map[string]Unit{
	"ml":          Milliliter,
	"milliliter":  Milliliter,
	"millilitre":  Milliliter,
	"l":           Liter,
	"liter":       Liter,
	"litre":       Liter,
	"floz":        FluidOunce,
	"fl-oz":       FluidOunce,
	"fl oz":       FluidOunce,
	"fluid-ounce": FluidOunce,
	"gal":         Gallon,
	"gallon":      Gallon,
	"5gallon":     FiveGallon,
	"5-gal":       FiveGallon,
	"5-gallon":    FiveGallon,
	"five-gallon": FiveGallon,
}

// Units lists every supported unit in display order.
func Units() []Unit {
	return []Unit{Milliliter, Liter, FluidOunce, Gallon, FiveGallon}
}

// ParseUnit maps a user supplied unit name to its tag. Unrecognised values
// are returned verbatim so validation can reject them.
func ParseUnit(raw string) Unit {
	key := strings.ToLower(strings.TrimSpace(raw))
	if u, ok := aliases[key]; ok {
		return u
	}
	return Unit(strings.TrimSpace(raw))
}

// ParseSystem normalises a measurement system name. Anything other than
// metric or imperial yields the unspecified zero value.
func ParseSystem(raw string) System {
	switch System(strings.ToLower(strings.TrimSpace(raw))) {
	case Metric:
		return Metric
	case Imperial:
		return Imperial
	default:
		return ""
	}
}

// Factor returns the millilitre conversion factor for unit.
func Factor(unit Unit) (float64, bool) {
	f, ok := factors[unit]
	return f, ok
}

// ToMilliliters converts size to millilitres. An unknown unit is logged and
// size is returned unchanged, as if it were already in millilitres.
func ToMilliliters(size float64, unit Unit) float64 {
	f, ok := factors[unit]
	if !ok {
		applog.Error(context.Background(), "unknown unit selected", "unit", string(unit))
		return size
	}
	return size * f
}

// DisplayName returns the short label for unit, or the raw tag when unknown.
func DisplayName(unit Unit) string {
	if name, ok := displayNames[unit]; ok {
		return name
	}
	return string(unit)
}

// SystemUnits returns the units offered for a measurement system.
func SystemUnits(system System) []Unit {
	if system == Metric {
		return []Unit{Milliliter, Liter}
	}
	return []Unit{FluidOunce, Gallon}
}
