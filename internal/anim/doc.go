// Package anim drives the animation: on every tick it advances a cyclic
// phase, renders a frame from the active rule and presents it to a surface.
//
//   - [Phase]: counter over a fixed number of variations
//   - [Surface]: display contract (size + present)
//   - [Driver]: owns the frame buffer and runs the tick loop
//
// # Example
//
//	d, _ := anim.New(screen, rule.NewDemo(5), render.NewRenderer(pixel.Clamp),
//		anim.Config{Interval: 100 * time.Millisecond, Variations: 50})
//	err := d.Run(ctx)
//
// # Thread Safety
//
// A Driver is NOT safe for concurrent use. Ticks are serialized by Run or by
// the caller's own timer.
package anim
