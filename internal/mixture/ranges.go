package mixture

// Range configures a slider for a unit.
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

var ranges = map[Unit]Range{
	Milliliter: {Min: 50, Max: 20000, Step: 25, Default: 500},
	Liter:      {Min: 0.1, Max: 50, Step: 0.1, Default: 0.5},
	FluidOunce: {Min: 1, Max: 640, Step: 1, Default: 17},
	Gallon:     {Min: 0.1, Max: 15, Step: 0.1, Default: 0.13},
	FiveGallon: {Min: 0.1, Max: 2, Step: 0.1, Default: 1},
}

// Dynamic unit breakpoints, in the system's small unit.
const (
	literBreakpointML   = 1000
	gallonBreakpointOz  = 128
	fluidOuncesInGallon = 128
)

// RangeFor returns the slider range for unit. Unknown units get the
// millilitre range.
func RangeFor(unit Unit) Range {
	if r, ok := ranges[unit]; ok {
		return r
	}
	return ranges[Milliliter]
}

// SystemRange returns the slider range for a measurement system. Metric
// sliders move in millilitres, imperial sliders in fluid ounces.
func SystemRange(system System) Range {
	if system == Imperial {
		return ranges[FluidOunce]
	}
	return ranges[Milliliter]
}

// SystemBaseUnit is the unit a system slider reports raw values in.
func SystemBaseUnit(system System) Unit {
	if system == Imperial {
		return FluidOunce
	}
	return Milliliter
}

// DynamicUnit converts a raw slider value into the unit it should be shown
// in: millilitres switch to litres at 1000ml, fluid ounces to gallons at
// 128 fl oz.
func DynamicUnit(system System, raw float64) (float64, Unit) {
	if system == Imperial {
		if raw < gallonBreakpointOz {
			return raw, FluidOunce
		}
		return raw / fluidOuncesInGallon, Gallon
	}
	if raw < literBreakpointML {
		return raw, Milliliter
	}
	return raw / literToML, Liter
}

// SliderValue places a raw slider value in a unit the variant accepts. The
// dynamic unit wins when allowed, then the system's base unit, then the
// system's other units, then the variant's own units in order.
func (v Variant) SliderValue(system System, raw float64) (float64, Unit) {
	value, unit := DynamicUnit(system, raw)
	if v.Supports(unit) {
		return value, unit
	}

	base := SystemBaseUnit(system)
	candidates := append([]Unit{base}, SystemUnits(system)...)
	candidates = append(candidates, v.Units...)
	for _, u := range candidates {
		if v.Supports(u) {
			return convertUnit(raw, base, u), u
		}
	}
	return value, unit
}

func convertUnit(value float64, from, to Unit) float64 {
	switch {
	case from == to:
		return value
	case from == FluidOunce && to == Gallon:
		return value / fluidOuncesInGallon
	case from == Milliliter && to == Liter:
		return value / literToML
	}
	return value * factors[from] / factors[to]
}
