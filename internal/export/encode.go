package export

import (
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/san-kum/pixelviz/internal/render"
	"github.com/setanarut/apng"
	xdraw "golang.org/x/image/draw"
)

var errNoFrames = errors.New("export: no frames")

// Scale upscales a frame by an integer factor with nearest-neighbor sampling.
func Scale(f *render.Frame, factor int) *image.RGBA {
	if factor <= 1 {
		return f.Clone().Image()
	}
	src := f.Image()
	dst := image.NewRGBA(image.Rect(0, 0, f.Width*factor, f.Height*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func WritePNG(w io.Writer, f *render.Frame, scale int) error {
	return errors.Wrap(png.Encode(w, Scale(f, scale)), "encode png")
}

// WriteGIF dithers each frame onto the Plan9 palette. delay is in hundredths
// of a second.
func WriteGIF(w io.Writer, frames []*render.Frame, scale, delay int) error {
	if len(frames) == 0 {
		return errNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		img := Scale(f, scale)
		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		xdraw.FloydSteinberg.Draw(p, p.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return errors.Wrap(gif.EncodeAll(w, &anim), "encode gif")
}

// WriteAPNG encodes the frames as an animated PNG. delay is in hundredths of
// a second and is clamped to what an fcTL chunk can carry.
func WriteAPNG(w io.Writer, frames []*render.Frame, scale, delay int) error {
	if len(frames) == 0 {
		return errNoFrames
	}
	delay = min(max(delay, 1), math.MaxUint16)
	a := apng.APNG{
		Images: make([]image.Image, len(frames)),
		Delays: make([]uint16, len(frames)),
	}
	for i, f := range frames {
		a.Images[i] = Scale(f, scale)
		a.Delays[i] = uint16(delay)
	}
	return errors.Wrap(apng.EncodeAll(w, &a), "encode apng")
}

// SaveAPNG writes the frames as an animated PNG at path.
func SaveAPNG(path string, frames []*render.Frame, scale, delay int) error {
	if len(frames) == 0 {
		return errNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create apng")
	}
	defer f.Close()
	return WriteAPNG(f, frames, scale, delay)
}
