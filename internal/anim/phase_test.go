package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pixelviz/internal/anim"
)

var _ = Describe("Phase", func() {
	It("starts at zero", func() {
		Expect(anim.NewPhase(50).Value()).To(BeZero())
	})

	It("steps by 1/variations and wraps to the step value", func() {
		p := anim.NewPhase(4)
		var seen []float64
		for i := 0; i < 9; i++ {
			p.Advance()
			seen = append(seen, p.Value())
		}
		Expect(seen).To(Equal([]float64{0.25, 0.5, 0.75, 1, 0.25, 0.5, 0.75, 1, 0.25}))
	})

	It("reports the wrap on the tick after reaching one", func() {
		p := anim.NewPhase(3)
		Expect(p.Advance()).To(BeFalse())
		Expect(p.Advance()).To(BeFalse())
		Expect(p.Advance()).To(BeFalse())
		Expect(p.Advance()).To(BeTrue())
		Expect(p.Value()).To(BeNumerically("~", 1.0/3))
	})

	It("is periodic in variations ticks", func() {
		const variations = 50
		p := anim.NewPhase(variations)
		values := make([]float64, 0, 200)
		for i := 0; i < 200; i++ {
			p.Advance()
			values = append(values, p.Value())
		}
		for t := 0; t+variations < len(values); t++ {
			Expect(values[t+variations]).To(Equal(values[t]), "tick %d", t+1)
		}
	})

	It("never leaves (0,1] once started", func() {
		p := anim.NewPhase(7)
		for i := 0; i < 30; i++ {
			p.Advance()
			Expect(p.Value()).To(And(BeNumerically(">", 0), BeNumerically("<=", 1)))
		}
	})

	It("treats fewer than one variation as one", func() {
		p := anim.NewPhase(0)
		Expect(p.Variations()).To(Equal(1))
		p.Advance()
		Expect(p.Value()).To(Equal(1.0))
		Expect(p.Step()).To(Equal(1.0))
	})

	It("resets to zero", func() {
		p := anim.NewPhase(5)
		p.Advance()
		p.Reset()
		Expect(p.Value()).To(BeZero())
	})
})
