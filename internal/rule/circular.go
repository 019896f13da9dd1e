package rule

import "github.com/san-kum/pixelviz/internal/pixel"

// Circular draws a ring of random colors around the canvas center. The ring
// radius grows with the phase as Radius*(1+phase). Tolerance is the half width
// of the band as a fraction of the squared radius.
type Circular struct {
	Radius    float64
	Tolerance float64
	src       Source
}

func NewCircular(radius, tolerance float64, src Source) *Circular {
	return &Circular{Radius: radius, Tolerance: tolerance, src: src}
}

// OnRing reports whether (x, y) lies inside the band. Both edges are inclusive.
func (c *Circular) OnRing(x, y, width, height int, phase float64) bool {
	dx := float64(x) - float64(width)/2
	dy := float64(y) - float64(height)/2
	d2 := dx*dx + dy*dy

	r := c.Radius * (1 + phase)
	r2 := r * r
	return d2 >= r2*(1-c.Tolerance) && d2 <= r2*(1+c.Tolerance)
}

func (c *Circular) Apply(x, y, width, height int, phase float64) pixel.Color {
	if c.OnRing(x, y, width, height, phase) {
		return randomColor(c.src)
	}
	return pixel.RGBA(0, 0, 0, 255)
}
