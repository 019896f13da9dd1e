// Package render scans a frame and fills it from a coloring rule.
package render

import (
	"github.com/san-kum/pixelviz/internal/pixel"
	"github.com/san-kum/pixelviz/internal/rule"
)

type Renderer struct {
	policy pixel.Policy
}

func NewRenderer(policy pixel.Policy) *Renderer {
	return &Renderer{policy: policy}
}

func (r *Renderer) Policy() pixel.Policy { return r.policy }

// Draw overwrites every pixel of f with the output of rl at the given phase.
// Each pixel is written exactly once, column by column.
func (r *Renderer) Draw(f *Frame, rl rule.Rule, phase float64) {
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			f.Set(x, y, rl.Apply(x, y, f.Width, f.Height, phase), r.policy)
		}
	}
}
