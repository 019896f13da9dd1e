package rule

import "github.com/san-kum/pixelviz/internal/pixel"

// Random ignores position and phase and returns a fresh random opaque color.
type Random struct {
	src Source
}

func NewRandom(src Source) *Random {
	return &Random{src: src}
}

func (r *Random) Apply(x, y, width, height int, phase float64) pixel.Color {
	return randomColor(r.src)
}
