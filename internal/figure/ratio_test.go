package figure_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lissa/internal/figure"
)

var _ = Describe("Reduce", func() {
	It("reduces an octave to 1:2", func() {
		r := figure.Reduce(1000, 2000)
		Expect(r).To(Equal(figure.Ratio{L: 1, R: 2}))
		Expect(r.String()).To(Equal("1:2"))
	})

	It("reduces unison to 1:1", func() {
		Expect(figure.Reduce(1000, 1000)).To(Equal(figure.Ratio{L: 1, R: 1}))
	})

	It("reduces a fourth to 3:4", func() {
		Expect(figure.Reduce(1500, 2000)).To(Equal(figure.Ratio{L: 3, R: 4}))
	})

	It("rounds non-integral frequencies before reducing", func() {
		Expect(figure.Reduce(999.7, 2000.2)).To(Equal(figure.Ratio{L: 1, R: 2}))
	})
})

var _ = Describe("Classify", func() {
	classify := func(left, right, phase float64) figure.Pattern {
		p := figure.Defaults()
		p.LeftFreq, p.RightFreq, p.PhaseDeg = left, right, phase
		return figure.Classify(p)
	}

	It("names the unison quarter-phase figure a circle", func() {
		Expect(classify(1000, 1000, 90)).To(Equal(figure.Pattern{Name: "Circle", Symmetry: "Circular"}))
	})

	It("names the unison zero-phase figure a line", func() {
		Expect(classify(1000, 1000, 0)).To(Equal(figure.Pattern{Name: "Line", Symmetry: "Linear"}))
		Expect(classify(1000, 1000, 180)).To(Equal(figure.Pattern{Name: "Line", Symmetry: "Linear"}))
	})

	It("names other unison phases ellipses", func() {
		Expect(classify(1000, 1000, 45).Name).To(Equal("Ellipse"))
	})

	It("names the octave a figure-8 in either orientation", func() {
		Expect(classify(1000, 2000, 0)).To(Equal(figure.Pattern{Name: "Figure-8", Symmetry: "Figure-8"}))
		Expect(classify(2000, 1000, 0).Name).To(Equal("Figure-8"))
	})

	It("labels remaining ratios by their reduced form", func() {
		got := classify(1500, 2000, 90)
		Expect(got.Name).To(Equal("Lissajous 3:4"))
		Expect(got.Symmetry).To(Equal("Lobed"))
	})

	It("normalizes phase before matching", func() {
		Expect(classify(1000, 1000, 360).Name).To(Equal("Line"))
	})
})

var _ = Describe("PeriodCycles", func() {
	It("reports the larger reduced term", func() {
		Expect(figure.PeriodCycles(figure.Reduce(1000, 2000))).To(Equal(2))
		Expect(figure.PeriodCycles(figure.Reduce(1500, 2000))).To(Equal(4))
		Expect(figure.PeriodCycles(figure.Reduce(1000, 1000))).To(Equal(1))
	})
})
