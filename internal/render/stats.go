package render

import colorful "github.com/lucasb-eyer/go-colorful"

// Stats summarizes a frame for the live panel and the headless report.
type Stats struct {
	// MeanLuminance is the average CIE L* in [0,1].
	MeanLuminance float64
	// Coverage is the fraction of pixels with a non-zero RGB value.
	Coverage float64
}

func Measure(f *Frame) Stats {
	n := f.Width * f.Height
	if n == 0 {
		return Stats{}
	}

	var sumL float64
	lit := 0
	for i := 0; i < len(f.Pix); i += 4 {
		r, g, b := f.Pix[i], f.Pix[i+1], f.Pix[i+2]
		if r|g|b != 0 {
			lit++
		}
		c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		l, _, _ := c.Lab()
		sumL += l
	}

	return Stats{
		MeanLuminance: sumL / float64(n),
		Coverage:      float64(lit) / float64(n),
	}
}
