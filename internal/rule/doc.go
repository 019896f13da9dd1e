// Package rule provides per-pixel coloring rules.
//
// A [Rule] maps a pixel position, the canvas size and the animation phase to a
// [pixel.Color]. Rules are chosen once at startup, usually through a
// [Registry]:
//
//	reg := rule.NewRegistry()
//	r, _ := reg.Get("circular", rule.Params{"radius": 20, "tolerance": 0.2}, src)
//	c := r.Apply(x, y, w, h, phase)
//
// The built-in variants are [Random], [Circular] and [Demo]. Rules that use
// randomness draw from an injected [Source].
package rule
