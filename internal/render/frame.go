package render

import (
	"image"

	"github.com/san-kum/pixelviz/internal/pixel"
)

// Frame is a row-major RGBA8 pixel buffer. The byte for channel c of pixel
// (x, y) lives at (y*Width + x)*4 + c.
type Frame struct {
	Width, Height int
	Pix           []byte
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

func (f *Frame) Index(x, y int) int {
	return (y*f.Width + x) * 4
}

// Set stores c at (x, y) through the write policy. Out of bounds writes are
// ignored.
func (f *Frame) Set(x, y int, c pixel.Color, p pixel.Policy) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := f.Index(x, y)
	f.Pix[i] = p.Byte(c.R)
	f.Pix[i+1] = p.Byte(c.G)
	f.Pix[i+2] = p.Byte(c.B)
	f.Pix[i+3] = p.Byte(c.A)
}

// At returns the stored channels of (x, y).
func (f *Frame) At(x, y int) [4]uint8 {
	i := f.Index(x, y)
	return [4]uint8{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}
}

// Fill paints every pixel with c.
func (f *Frame) Fill(c pixel.Color, p pixel.Policy) {
	b := c.Bytes(p)
	for i := 0; i < len(f.Pix); i += 4 {
		copy(f.Pix[i:i+4], b[:])
	}
}

func (f *Frame) Clone() *Frame {
	c := &Frame{Width: f.Width, Height: f.Height, Pix: make([]byte, len(f.Pix))}
	copy(c.Pix, f.Pix)
	return c
}

// Image wraps the buffer as an image.RGBA without copying.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}
