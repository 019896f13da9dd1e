package rule

import (
	"math"

	"github.com/san-kum/pixelviz/internal/pixel"
)

// DemoSelectors is the number of demo patterns. Selectors outside
// [0, DemoSelectors) render opaque black.
const DemoSelectors = 7

// Demo is a family of arithmetic test patterns picked by a selector. Modulo is
// real valued (math.Mod) so fractional divisors such as width/4 behave like
// the original formulas.
type Demo struct {
	selector int
}

func NewDemo(selector int) *Demo {
	return &Demo{selector: selector}
}

func (d *Demo) Selector() int { return d.selector }

func (d *Demo) Apply(x, y, width, height int, phase float64) pixel.Color {
	fx, fy := float64(x), float64(y)
	w, h := float64(width), float64(height)
	normX := (fx - w/2) / (w / 2)
	normY := (fy - h/2) / (h / 2)

	switch d.selector {
	case 0:
		// static colors
		return pixel.RGB(math.Mod(fx, 500), math.Mod(fy, 500), math.Mod((fx+fy)/2, 250))
	case 1:
		// static colors without borders
		return pixel.RGB(math.Mod(fx, w/2), 100, math.Mod(fy, w/4))
	case 2:
		// green sweeps with the phase
		return pixel.RGB(math.Mod(fx, w/2), phase*(w/3), math.Mod(fy, w/2))
	case 3:
		return pixel.RGB(0, 0, math.Mod(fx*fy, w/4))
	case 4:
		return pixel.RGB(0, 0, math.Mod(float64(x^y), w/4))
	case 5:
		// normalized diagonal gradient
		return pixel.RGB(0, 0, math.Abs((normX+normY)/2)*255)
	case 6:
		// normY/normX is non-finite on the center column; the NaN is
		// resolved by the write policy.
		return pixel.RGB(0, math.Mod(normY/normX, 0.1)*255, math.Mod(normX*normY, 0.22)*255)
	default:
		return pixel.RGB(0, 0, 0)
	}
}
