package mixture

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Volume thresholds for picking a display unit.
const (
	imperialAutoML = 946
	gallonsFromML  = 3785
	litersFromML   = 1000
)

// FormatWeight renders grams with exactly two decimals.
func FormatWeight(grams float64) string {
	return Fixed(grams, 2)
}

// FormatVolume renders a millilitre volume in the unit a reader expects.
// Imperial, or an unspecified system at 946ml and above, is shown in gallons
// or fluid ounces; everything else in litres or millilitres.
func FormatVolume(ml float64, system System) string {
	if system == Imperial || (system == "" && ml >= imperialAutoML) {
		if ml >= gallonsFromML {
			return Fixed(ml/gallonToML, 2) + " gallons"
		}
		return Fixed(ml/fluidOzToML, 1) + " fl oz"
	}
	if ml >= litersFromML {
		return Fixed(ml/literToML, 2) + " L"
	}
	return Fixed(ml, 0) + " ml"
}

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return r
}

// Fixed formats v with the given number of decimals. Rounding is applied to
// the shortest decimal representation of v, half away from zero, so 1.005
// becomes "1.01" rather than the "1.00" binary rounding would give.
func Fixed(v float64, places int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', places, 64)
	}
	if places < 0 {
		places = 0
	}
	return decimal.NewFromFloat(v).StringFixed(int32(places))
}
