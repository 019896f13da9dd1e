package pixel

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Opaque is the default alpha channel.
const Opaque = 255

// ErrUnknownPolicy indicates a policy name that ParsePolicy does not recognize.
var ErrUnknownPolicy = errors.New("pixel: unknown channel policy")

// Color is an immutable RGBA value. Channels are conventionally in [0,255].
type Color struct {
	R, G, B, A float64
}

// Black is opaque black.
var Black = RGB(0, 0, 0)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: Opaque}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Bytes converts every channel with the given policy.
func (c Color) Bytes(p Policy) [4]uint8 {
	return [4]uint8{p.Byte(c.R), p.Byte(c.G), p.Byte(c.B), p.Byte(c.A)}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g,%g,%g,%g)", c.R, c.G, c.B, c.A)
}

// Policy decides how an out-of-range channel is stored into a byte.
type Policy int

const (
	Clamp Policy = iota
	Wrap
)

// ParsePolicy maps "clamp" or "wrap" to a Policy. The empty string is Clamp.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "clamp":
		return Clamp, nil
	case "wrap":
		return Wrap, nil
	default:
		return Clamp, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Byte stores v according to the policy.
func (p Policy) Byte(v float64) uint8 {
	if p == Wrap {
		return wrapByte(v)
	}
	return clampByte(v)
}

func clampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.RoundToEven(v))
}

func wrapByte(v float64) uint8 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Floor(v), 256)
	if m < 0 {
		m += 256
	}
	return uint8(m)
}
