// Package pixel defines the color value produced by coloring rules and the
// policy used to store its channels into an RGBA8 buffer.
//
// Channels are real valued. A rule may return negative, fractional, very large
// or non-finite channels; none of that is rejected at construction. The
// conversion to a byte happens in exactly one place, [Policy.Byte]:
//
//   - [Clamp]: NaN becomes 0, the value is rounded half to even and then clamped
//     to [0,255]. This is how canvas clamped byte arrays behave.
//   - [Wrap]: the value is floored and reduced modulo 256. NaN and ±Inf become 0.
package pixel
