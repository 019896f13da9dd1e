package anim_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pixelviz/internal/anim"
	"github.com/san-kum/pixelviz/internal/pixel"
	"github.com/san-kum/pixelviz/internal/render"
	"github.com/san-kum/pixelviz/internal/rule"
)

type fakeSurface struct {
	mu       sync.Mutex
	w, h     int
	presents int
	last     *render.Frame
	err      error
}

func (f *fakeSurface) Size() (int, int) { return f.w, f.h }

func (f *fakeSurface) Present(fr *render.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presents++
	f.last = fr
	return f.err
}

func (f *fakeSurface) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

// phaseRule paints every pixel with the phase scaled to a byte and records
// the phases it was asked for.
type phaseRule struct {
	phases []float64
}

func (p *phaseRule) Apply(x, y, w, h int, phase float64) pixel.Color {
	if x == 0 && y == 0 {
		p.phases = append(p.phases, phase)
	}
	return pixel.RGB(phase*100, 0, 0)
}

var _ = Describe("Driver", func() {
	var (
		surface  *fakeSurface
		renderer *render.Renderer
		cfg      anim.Config
	)

	BeforeEach(func() {
		surface = &fakeSurface{w: 8, h: 6}
		renderer = render.NewRenderer(pixel.Clamp)
		cfg = anim.Config{Interval: time.Millisecond, Variations: 2}
	})

	Describe("New", func() {
		It("rejects invalid configuration", func() {
			_, err := anim.New(surface, rule.NewDemo(0), renderer, anim.Config{Interval: time.Second})
			Expect(err).To(MatchError(anim.ErrInvalidVariations))

			_, err = anim.New(surface, rule.NewDemo(0), renderer, anim.Config{Variations: 3})
			Expect(err).To(MatchError(anim.ErrInvalidInterval))

			_, err = anim.New(&fakeSurface{w: 0, h: 4}, rule.NewDemo(0), renderer, cfg)
			Expect(err).To(MatchError(anim.ErrInvalidSize))

			_, err = anim.New(surface, nil, renderer, cfg)
			Expect(err).To(MatchError(anim.ErrNoRule))
		})

		It("sizes the frame to the surface", func() {
			d, err := anim.New(surface, rule.NewDemo(0), renderer, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Frame().Width).To(Equal(8))
			Expect(d.Frame().Height).To(Equal(6))
			Expect(d.Frame().Pix).To(HaveLen(8 * 6 * 4))
			Expect(d.Phase()).To(BeZero())
			Expect(d.Interval()).To(Equal(time.Millisecond))
			Expect(d.Variations()).To(Equal(2))
		})

		It("falls back to a clamping renderer", func() {
			d, err := anim.New(surface, rule.Func(func(x, y, w, h int, phase float64) pixel.Color {
				return pixel.RGB(400, 0, 0)
			}), nil, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Tick()).To(Succeed())
			Expect(d.Frame().At(0, 0)[0]).To(Equal(uint8(255)))
		})
	})

	Describe("Tick", func() {
		It("renders with the advanced phase and presents the frame", func() {
			pr := &phaseRule{}
			d, err := anim.New(surface, pr, renderer, cfg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 5; i++ {
				Expect(d.Tick()).To(Succeed())
			}

			Expect(pr.phases).To(Equal([]float64{0.5, 1, 0.5, 1, 0.5}))
			Expect(d.Ticks()).To(Equal(5))
			Expect(surface.count()).To(Equal(5))
			Expect(surface.last).To(BeIdenticalTo(d.Frame()))
			Expect(d.Frame().At(7, 5)).To(Equal([4]uint8{50, 0, 0, 255}))
		})

		It("reuses the same buffer every tick", func() {
			d, err := anim.New(surface, rule.NewDemo(5), renderer, cfg)
			Expect(err).NotTo(HaveOccurred())

			first := &d.Frame().Pix[0]
			for i := 0; i < 3; i++ {
				Expect(d.Tick()).To(Succeed())
				Expect(&d.Frame().Pix[0]).To(BeIdenticalTo(first))
			}
		})

		It("returns present errors", func() {
			surface.err = errors.New("display gone")
			d, err := anim.New(surface, rule.NewDemo(0), renderer, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Tick()).To(MatchError("display gone"))
		})
	})

	Describe("RestartCycle", func() {
		It("rewinds the phase but keeps the tick count", func() {
			pr := &phaseRule{}
			d, err := anim.New(surface, pr, renderer, anim.Config{Interval: time.Millisecond, Variations: 4})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Step()).To(Equal(0.25))

			Expect(d.Tick()).To(Succeed())
			Expect(d.Tick()).To(Succeed())
			d.RestartCycle()
			Expect(d.Phase()).To(BeZero())
			Expect(d.Tick()).To(Succeed())

			Expect(pr.phases).To(Equal([]float64{0.25, 0.5, 0.25}))
			Expect(d.Ticks()).To(Equal(3))
		})

		It("reports the renderer's channel policy", func() {
			d, err := anim.New(surface, rule.NewDemo(0), render.NewRenderer(pixel.Wrap), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.ChannelPolicy()).To(Equal(pixel.Wrap))
		})
	})

	Describe("Run", func() {
		It("ticks until the context is canceled", func() {
			d, err := anim.New(surface, rule.NewDemo(2), renderer, cfg)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- d.Run(ctx) }()

			Eventually(surface.count).WithTimeout(2 * time.Second).Should(BeNumerically(">=", 3))
			cancel()
			Eventually(done).WithTimeout(time.Second).Should(Receive(MatchError(context.Canceled)))
			Expect(d.Ticks()).To(Equal(surface.count()))
		})

		It("keeps ticking when present fails", func() {
			surface.err = errors.New("flaky")
			d, err := anim.New(surface, rule.NewDemo(0), renderer, cfg)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			done := make(chan error, 1)
			go func() { done <- d.Run(ctx) }()

			Eventually(surface.count).WithTimeout(2 * time.Second).Should(BeNumerically(">=", 3))
			cancel()
			Eventually(done).WithTimeout(time.Second).Should(Receive())
		})
	})
})

var _ = Describe("Multi", func() {
	It("presents to every surface and joins errors", func() {
		a := &fakeSurface{w: 3, h: 2}
		b := &fakeSurface{w: 9, h: 9, err: errors.New("b failed")}
		m := anim.Multi(a, b)

		w, h := m.Size()
		Expect([]int{w, h}).To(Equal([]int{3, 2}))

		err := m.Present(render.NewFrame(3, 2))
		Expect(err).To(MatchError(ContainSubstring("b failed")))
		Expect(a.count()).To(Equal(1))
		Expect(b.count()).To(Equal(1))
	})

	It("has no size without surfaces", func() {
		w, h := anim.Multi().Size()
		Expect(w).To(BeZero())
		Expect(h).To(BeZero())
	})
})
