package figure_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lissa/internal/figure"
)

var _ = Describe("Sample", func() {
	var (
		p      figure.Params
		origin time.Time
		now    time.Time
	)

	BeforeEach(func() {
		p = figure.Defaults()
		origin = time.Unix(1700000000, 0)
		now = origin.Add(1500 * time.Millisecond)
	})

	It("returns exactly count points", func() {
		for _, count := range []int{0, 1, 2, 100, 16384} {
			pts := figure.Sample(p, origin, now, count)
			Expect(pts).To(HaveLen(count))
		}
	})

	It("treats negative counts as empty", func() {
		Expect(figure.Sample(p, origin, now, -3)).To(BeEmpty())
	})

	It("is deterministic for fixed inputs", func() {
		a := figure.Sample(p, origin, now, 500)
		b := figure.Sample(p, origin, now, 500)
		Expect(b).To(Equal(a))
	})

	It("keeps every coordinate within the sine range", func() {
		for _, freq := range []float64{100, 733.3, 1000, 4999, 5000} {
			for _, phase := range []float64{0, 45, 90, 359.9} {
				p.LeftFreq, p.RightFreq, p.PhaseDeg = freq, freq*1.7, phase
				for _, pt := range figure.Sample(p, origin, now, 256) {
					Expect(pt.X).To(And(BeNumerically(">=", -1), BeNumerically("<=", 1)))
					Expect(pt.Y).To(And(BeNumerically(">=", -1), BeNumerically("<=", 1)))
				}
			}
		}
	})

	It("is invariant under full phase wraps", func() {
		p.PhaseDeg = 37
		a := figure.Sample(p, origin, now, 300)
		p.PhaseDeg = 37 + 360
		b := figure.Sample(p, origin, now, 300)
		for i := range a {
			Expect(b[i].X).To(BeNumerically("~", a[i].X, 1e-9))
			Expect(b[i].Y).To(BeNumerically("~", a[i].Y, 1e-9))
		}
	})

	It("advances the window as wall-clock time passes", func() {
		a := figure.Sample(p, origin, now, 100)
		b := figure.Sample(p, origin, now.Add(16*time.Millisecond), 100)
		Expect(b).NotTo(Equal(a))
	})

	It("scales the sampling step by the speed multiplier", func() {
		p.Speed = 1.0
		slow := figure.Sample(p, origin, origin, 200)
		p.Speed = 2.0
		fast := figure.Sample(p, origin, origin, 100)
		// with zero elapsed time, point i at double speed lands where
		// point 2i lands at normal speed
		for i := range fast {
			Expect(fast[i].X).To(BeNumerically("~", slow[2*i].X, 1e-9))
			Expect(fast[i].Y).To(BeNumerically("~", slow[2*i].Y, 1e-9))
		}
	})

	It("starts the unison circle at the top of the figure", func() {
		// phase 90 puts y at sin(90°)=1 and x at 0 for t=0
		pts := figure.Sample(p, origin, origin, 1)
		Expect(pts[0].X).To(BeNumerically("~", 0, 1e-9))
		Expect(pts[0].Y).To(BeNumerically("~", 1, 1e-9))
	})
})

var _ = Describe("SampleInto", func() {
	It("reuses the destination buffer when it is large enough", func() {
		p := figure.Defaults()
		origin := time.Unix(0, 0)
		buf := make([]figure.Point, 0, 1024)
		out := figure.SampleInto(buf, p, origin, origin, 512)
		Expect(out).To(HaveLen(512))
		Expect(cap(out)).To(Equal(1024))
	})

	It("grows the destination buffer when it is too small", func() {
		p := figure.Defaults()
		origin := time.Unix(0, 0)
		out := figure.SampleInto(nil, p, origin, origin, 64)
		Expect(out).To(HaveLen(64))
	})
})
