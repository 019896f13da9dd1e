// Package export records presented frames and encodes them as PNG, GIF and
// animated PNG.
package export

import (
	"fmt"

	"github.com/san-kum/pixelviz/internal/render"
)

// Recorder is a surface that keeps a copy of each presented frame. When limit
// is positive the oldest frames are dropped beyond it.
type Recorder struct {
	width, height int
	limit         int
	frames        []*render.Frame
}

func NewRecorder(width, height, limit int) *Recorder {
	return &Recorder{width: width, height: height, limit: limit}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) Present(f *render.Frame) error {
	if f.Width != r.width || f.Height != r.height {
		return fmt.Errorf("export: frame %dx%d does not match recorder %dx%d", f.Width, f.Height, r.width, r.height)
	}
	r.frames = append(r.frames, f.Clone())
	if r.limit > 0 && len(r.frames) > r.limit {
		r.frames = r.frames[len(r.frames)-r.limit:]
	}
	return nil
}

func (r *Recorder) Frames() []*render.Frame { return r.frames }
func (r *Recorder) Len() int                { return len(r.frames) }
func (r *Recorder) Reset()                  { r.frames = nil }
