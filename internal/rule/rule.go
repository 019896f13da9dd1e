package rule

import "github.com/san-kum/pixelviz/internal/pixel"

// Rule colors a single pixel. Apply must be total over [0,width)×[0,height)
// and phase in [0,1], and must not panic.
type Rule interface {
	Apply(x, y, width, height int, phase float64) pixel.Color
}

// Func adapts a plain function to Rule.
type Func func(x, y, width, height int, phase float64) pixel.Color

func (f Func) Apply(x, y, width, height int, phase float64) pixel.Color {
	return f(x, y, width, height, phase)
}

// Source is the random source shared by rules. *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// randomColor draws each of red, green and blue uniformly from [0,255].
func randomColor(src Source) pixel.Color {
	return pixel.RGB(float64(src.IntN(256)), float64(src.IntN(256)), float64(src.IntN(256)))
}
