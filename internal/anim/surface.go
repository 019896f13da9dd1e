package anim

import (
	"errors"

	"github.com/san-kum/pixelviz/internal/render"
)

// Surface is the display the driver presents to. Size is queried once when the
// driver is built.
type Surface interface {
	Size() (width, height int)
	Present(f *render.Frame) error
}

type multi struct {
	surfaces []Surface
}

// Multi presents every frame to each surface in order. Its size is that of the
// first surface.
func Multi(surfaces ...Surface) Surface {
	return &multi{surfaces: surfaces}
}

func (m *multi) Size() (int, int) {
	if len(m.surfaces) == 0 {
		return 0, 0
	}
	return m.surfaces[0].Size()
}

func (m *multi) Present(f *render.Frame) error {
	var errs []error
	for _, s := range m.surfaces {
		if err := s.Present(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
