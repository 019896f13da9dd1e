package anim

// Phase cycles through variations discrete steps of 1/variations. It starts
// at 0, and each tick first wraps the counter if it already reached 1 and then
// advances it, so after the first cycle it never returns to 0. The value fed
// to a frame is one of step, 2*step, ..., 1.
//
// The counter is integral so the cycle length is exact.
type Phase struct {
	tick       int
	variations int
}

func NewPhase(variations int) *Phase {
	if variations < 1 {
		variations = 1
	}
	return &Phase{variations: variations}
}

// Advance moves one step and reports whether the counter wrapped.
func (p *Phase) Advance() bool {
	wrapped := false
	if p.tick >= p.variations {
		p.tick = 0
		wrapped = true
	}
	p.tick++
	return wrapped
}

func (p *Phase) Value() float64 {
	return float64(p.tick) / float64(p.variations)
}

func (p *Phase) Step() float64 {
	return 1 / float64(p.variations)
}

func (p *Phase) Variations() int { return p.variations }

func (p *Phase) Reset() { p.tick = 0 }
