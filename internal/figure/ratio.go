package figure

import (
	"fmt"
	"math"
)

// Ratio is the reduced integer frequency ratio of a figure,
// left : right.
type Ratio struct {
	L, R int
}

// Reduce rounds both frequencies to the nearest integer and divides
// out their greatest common divisor.
func Reduce(leftFreq, rightFreq float64) Ratio {
	l := int(math.Round(leftFreq))
	r := int(math.Round(rightFreq))
	if l < 1 {
		l = 1
	}
	if r < 1 {
		r = 1
	}
	d := gcd(l, r)
	return Ratio{L: l / d, R: r / d}
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.L, r.R)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// PeriodCycles reports the figure's period as displayed in the UI: the
// larger of the two reduced ratio terms, in oscillator cycles.
func PeriodCycles(r Ratio) int {
	if r.L > r.R {
		return r.L
	}
	return r.R
}

// Pattern labels the closed shape a parameter set traces.
type Pattern struct {
	Name     string
	Symmetry string
}

// Classify names the figure for the given parameters. Unison figures
// depend on phase (a quarter-cycle lead traces a circle, zero or half
// a line, anything else an ellipse); a 1:2 ratio traces a figure-8;
// other ratios are labeled by their reduced ratio.
func Classify(p Params) Pattern {
	r := Reduce(p.LeftFreq, p.RightFreq)
	phase := math.Mod(p.PhaseDeg, 360)
	if phase < 0 {
		phase += 360
	}

	switch {
	case r.L == 1 && r.R == 1:
		switch phase {
		case 90, 270:
			return Pattern{Name: "Circle", Symmetry: "Circular"}
		case 0, 180:
			return Pattern{Name: "Line", Symmetry: "Linear"}
		default:
			return Pattern{Name: "Ellipse", Symmetry: "Elliptical"}
		}
	case (r.L == 1 && r.R == 2) || (r.L == 2 && r.R == 1):
		return Pattern{Name: "Figure-8", Symmetry: "Figure-8"}
	default:
		return Pattern{Name: "Lissajous " + r.String(), Symmetry: "Lobed"}
	}
}
