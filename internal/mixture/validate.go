package mixture

import (
	"math"
	"slices"
)

// Validation messages shown to the user.
const (
	MsgInvalidSize  = "Container size must be a positive number"
	MsgInvalidUnit  = "Invalid unit selected"
	MsgSizeTooLarge = "Container size is too large to calculate"
)

// CalculationInput describes the container a mixture is prepared for.
type CalculationInput struct {
	ContainerSize float64
	Unit          Unit
	System        System
}

// ValidationResult lists every rule the input failed, in evaluation order.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Variant restricts the units a particular form accepts.
type Variant struct {
	Name  string
	Units []Unit
}

var (
	// FullVariant accepts every supported unit.
	FullVariant = Variant{Name: "full", Units: Units()}
	// ContainerVariant is the single select form offering ml, gallons and
	// five gallon buckets.
	ContainerVariant = Variant{Name: "container", Units: []Unit{Milliliter, Gallon, FiveGallon}}
)

// VariantByName resolves a variant, falling back to FullVariant.
func VariantByName(name string) Variant {
	if name == ContainerVariant.Name {
		return ContainerVariant
	}
	return FullVariant
}

// Supports reports whether unit is selectable in the variant.
func (v Variant) Supports(unit Unit) bool {
	return slices.Contains(v.Units, unit)
}

// Validate checks input against the variant's unit set. All failing rules
// are reported.
func (v Variant) Validate(input CalculationInput) ValidationResult {
	var errs []string

	size := input.ContainerSize
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		errs = append(errs, MsgInvalidSize)
	}
	if !v.Supports(input.Unit) {
		errs = append(errs, MsgInvalidUnit)
	} else if len(errs) == 0 && !finite(ToMilliliters(size, input.Unit)) {
		errs = append(errs, MsgSizeTooLarge)
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// Validate checks input against the full unit set.
func Validate(input CalculationInput) ValidationResult {
	return FullVariant.Validate(input)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
