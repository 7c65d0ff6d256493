package pages

import (
	"errors"
	"math"
	"strconv"

	"hydromix/internal/mixture"
	"hydromix/internal/views/components"
)

// CalculatorView is everything the calculator page and its results partial
// need to render one state of the form.
type CalculatorView struct {
	Size    float64
	Unit    mixture.Unit
	System  mixture.System
	Variant mixture.Variant
	Range   mixture.Range
	Presets []components.PresetLink
	Result  *mixture.CalculationResult
	Error   string
}

// NewCalculatorView validates input against variant and calculates the
// mixture. Only the first validation message is kept; results are
// suppressed whenever validation fails.
func NewCalculatorView(input mixture.CalculationInput, variant mixture.Variant) CalculatorView {
	view := CalculatorView{
		Size:    input.ContainerSize,
		Unit:    input.Unit,
		System:  input.System,
		Variant: variant,
		Range:   mixture.RangeFor(input.Unit),
	}

	result, err := variant.Calculate(input)
	if err != nil {
		view.Error = errorMessage(err)
		return view
	}
	view.Result = &result
	return view
}

func errorMessage(err error) string {
	var invalid *mixture.InvalidInputError
	if errors.As(err, &invalid) {
		return invalid.First()
	}
	return "Calculation failed"
}

// SizeValue renders the container size for the number input.
func (v CalculatorView) SizeValue() string {
	if math.IsNaN(v.Size) || math.IsInf(v.Size, 0) {
		return ""
	}
	return strconv.FormatFloat(v.Size, 'f', -1, 64)
}

// VolumeLabel describes the total volume in the visitor's measurement system.
func (v CalculatorView) VolumeLabel() string {
	if v.Result == nil {
		return ""
	}
	return mixture.FormatVolume(v.Result.TotalVolumeML, v.System)
}

// ScalingLabel renders the scaling factor relative to the reference formula.
func (v CalculatorView) ScalingLabel() string {
	if v.Result == nil {
		return ""
	}
	return mixture.Fixed(v.Result.ScalingFactor, 3) + "x"
}

func referenceSummary() string {
	f := mixture.DefaultFormula
	return mixture.Fixed(f.MasterBlendGrams, 0) + "g Master Blend, " +
		mixture.Fixed(f.EpsomSaltGrams, 0) + "g Epsom Salt, and " +
		mixture.Fixed(f.CalciumNitrateGrams, 0) + "g Calcium Nitrate per " +
		mixture.FormatVolume(f.ReferenceVolumeML, mixture.Metric)
}
