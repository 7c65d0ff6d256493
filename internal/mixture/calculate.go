package mixture

import (
	"fmt"
	"strings"
)

// InvalidInputError carries the validation messages that stopped a calculation.
type InvalidInputError struct {
	Errors []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Errors, ", "))
}

// First returns the message callers display, or "" when there is none.
func (e *InvalidInputError) First() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0]
}

// CalculationResult holds ingredient weights in grams, rounded to two
// decimals, alongside the unrounded scaling factor.
type CalculationResult struct {
	MasterBlend    float64 `json:"masterBlend"`
	EpsomSalt      float64 `json:"epsomSalt"`
	CalciumNitrate float64 `json:"calciumNitrate"`
	TotalVolumeML  float64 `json:"totalVolumeML"`
	ScalingFactor  float64 `json:"scalingFactor"`
}

// Calculate scales DefaultFormula to the requested container.
func Calculate(input CalculationInput) (CalculationResult, error) {
	return FullVariant.CalculateWith(input, DefaultFormula)
}

// CalculateWith scales formula to the requested container.
func CalculateWith(input CalculationInput, formula Formula) (CalculationResult, error) {
	return FullVariant.CalculateWith(input, formula)
}

// Calculate scales DefaultFormula using the variant's validation rules.
func (v Variant) Calculate(input CalculationInput) (CalculationResult, error) {
	return v.CalculateWith(input, DefaultFormula)
}

// CalculateWith validates input against the variant and scales formula
// linearly to the container volume. It returns *InvalidInputError when
// validation fails.
func (v Variant) CalculateWith(input CalculationInput, formula Formula) (CalculationResult, error) {
	if res := v.Validate(input); !res.IsValid {
		return CalculationResult{}, &InvalidInputError{Errors: res.Errors}
	}
	if err := formula.Validate(); err != nil {
		return CalculationResult{}, err
	}

	volumeML := ToMilliliters(input.ContainerSize, input.Unit)
	factor := volumeML / formula.ReferenceVolumeML

	result := CalculationResult{
		MasterBlend:    Round2(formula.MasterBlendGrams * factor),
		EpsomSalt:      Round2(formula.EpsomSaltGrams * factor),
		CalciumNitrate: Round2(formula.CalciumNitrateGrams * factor),
		TotalVolumeML:  volumeML,
		ScalingFactor:  factor,
	}
	if !result.finite() {
		return CalculationResult{}, &InvalidInputError{Errors: []string{MsgSizeTooLarge}}
	}
	return result, nil
}

// finite reports whether every field can be represented in JSON.
func (r CalculationResult) finite() bool {
	return finite(r.MasterBlend) && finite(r.EpsomSalt) && finite(r.CalciumNitrate) &&
		finite(r.TotalVolumeML) && finite(r.ScalingFactor)
}
