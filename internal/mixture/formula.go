// Package mixture scales the reference nutrient concentrate formula to an
// arbitrary container volume and formats the results for display.
package mixture

import (
	"errors"
	"math"
)

// ErrInvalidFormula is returned when a formula carries a non-positive quantity.
var ErrInvalidFormula = errors.New("mixture: formula quantities must be positive")

// Formula holds the reference quantities every calculation is scaled against.
type Formula struct {
	ReferenceVolumeML   float64
	MasterBlendGrams    float64
	EpsomSaltGrams      float64
	CalciumNitrateGrams float64
}

// DefaultFormula is 120g Master Blend, 60g Epsom Salt and 120g Calcium
// Nitrate per 500ml of water.
var DefaultFormula = Formula{
	ReferenceVolumeML:   500,
	MasterBlendGrams:    120,
	EpsomSaltGrams:      60,
	CalciumNitrateGrams: 120,
}

// Validate reports ErrInvalidFormula unless every quantity is finite and positive.
func (f Formula) Validate() error {
	for _, v := range []float64{f.ReferenceVolumeML, f.MasterBlendGrams, f.EpsomSaltGrams, f.CalciumNitrateGrams} {
		if !positive(v) {
			return ErrInvalidFormula
		}
	}
	return nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
