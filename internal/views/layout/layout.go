package layout

// Head carries the document metadata rendered into <head>.
type Head struct {
	Title       string
	Description string
	Keywords    string
}

// DefaultHead describes the calculator page.
var DefaultHead = Head{
	Title:       "Hydroponic Concentrate Calculator",
	Description: "Calculate precise hydroponic concentrate ratios based on Master Blend formula. Enter your container size to get exact measurements for Master Blend, Epsom Salt, and Calcium Nitrate.",
	Keywords:    "hydroponic, concentrate, calculator, Master Blend, Epsom Salt, Calcium Nitrate, hydroponics, nutrition",
}
